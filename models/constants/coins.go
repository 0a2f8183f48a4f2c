package constants

// GetCoinAliases maps the most requested tickers to their CoinGecko identifier
// so they resolve without fetching the full coin list.
func GetCoinAliases() map[string]string {
	return map[string]string{
		"btc":  "bitcoin",
		"eth":  "ethereum",
		"bnb":  "binancecoin",
		"ada":  "cardano",
		"doge": "dogecoin",
	}
}
