package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"infobot/models/constants"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

func New(aliases map[string]string, ratePerMinute int) *Impl {
	return NewWithBaseURL(coingeckoBaseAPI, aliases, ratePerMinute)
}

func NewWithBaseURL(baseURL string, aliases map[string]string, ratePerMinute int) *Impl {
	if ratePerMinute <= 0 {
		ratePerMinute = defaultRatePerMinute
	}

	return &Impl{
		baseURL:     baseURL,
		listClient:  &http.Client{Timeout: listHTTPTimeout},
		priceClient: &http.Client{Timeout: priceHTTPTimeout},
		aliases:     aliases,
		cache:       cache.New(cache.NoExpiration, 0),
		limiter:     rate.NewLimiter(rate.Every(time.Minute/time.Duration(ratePerMinute)), ratePerMinute),
	}
}

// Resolve maps a ticker to a CoinGecko identifier. Aliases never hit the
// network. Other tickers are looked up in the full coin list, fetched once
// and kept for the lifetime of the process; it is never refreshed, so coins
// listed afterwards stay unresolvable until restart. A failed fetch caches an
// empty list.
func (service *Impl) Resolve(ctx context.Context, symbol string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(symbol))
	if id, ok := service.aliases[s]; ok {
		return id, nil
	}

	if id, ok := service.coinList(ctx)[s]; ok {
		return id, nil
	}

	return "", ErrCoinNotFound
}

// coinList is not synchronised: two concurrent first misses may both fetch,
// the last write wins.
func (service *Impl) coinList(ctx context.Context) map[string]string {
	if x, found := service.cache.Get(coinListCacheKey); found {
		return x.(map[string]string)
	}

	bySymbol := map[string]string{}
	coins, err := service.fetchCoinList(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch coin list, caching an empty one")
	} else {
		for _, c := range coins {
			s := strings.ToLower(c.Symbol)
			if _, exists := bySymbol[s]; !exists {
				bySymbol[s] = c.ID
			}
		}
		log.Info().Int("coins", len(bySymbol)).Msg("Put coin list in cache")
	}

	service.cache.Set(coinListCacheKey, bySymbol, cache.NoExpiration)
	return bySymbol
}

func (service *Impl) fetchCoinList(ctx context.Context) ([]Coin, error) {
	log.Info().Msg("Start fetching coin list")

	var result []Coin
	endpoint := fmt.Sprintf("%s/api/v3/coins/list", service.baseURL)
	if err := service.getJSON(ctx, service.listClient, endpoint, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (service *Impl) Price(ctx context.Context, coinID string) (float64, error) {
	params := url.Values{}
	params.Set("ids", coinID)
	params.Set("vs_currencies", vsCurrency)
	endpoint := fmt.Sprintf("%s/api/v3/simple/price?%s", service.baseURL, params.Encode())

	var result PriceResponse
	if err := service.getJSON(ctx, service.priceClient, endpoint, &result); err != nil {
		return 0, err
	}

	price := result[coinID][vsCurrency]
	if price == nil {
		log.Debug().Str(constants.LogCoinID, coinID).Msg("No USD price returned")
		return 0, ErrPriceNotAvailable
	}

	return *price, nil
}

func (service *Impl) getJSON(ctx context.Context, client *http.Client, endpoint string, target any) error {
	if err := service.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to prepare request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API request failed with status: %d", resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
