package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	usageWeather      = "Usage: /weather <city>"
	usageCrypto       = "Usage: /crypto <symbol>, e.g. /crypto btc"
	usageAsk          = "Usage: /ask <your question>"
	usageGrantPremium = "Usage: /grant_premium <telegram_id> <days>"

	msgWeatherError    = "Error fetching weather. Try again later."
	msgCityNotFound    = "City not found 🌍"
	msgCoinNotFound    = "Coin not found."
	msgPriceError      = "Error fetching price."
	msgPriceNotFound   = "Price not available."
	msgAskError        = "AI service error. Try again later."
	msgNotAuthorized   = "Not authorized."
	msgUserNotFound    = "User not found."
	msgGenericError    = "Something went wrong. Try again later."
	msgPremiumGranted  = "Granted premium to %d for %d days."
	msgQuotaReached    = "Quota reached (%d requests/day). Buy premium with /buy or ask an admin to grant access."
	msgWeatherReport   = "🌦 Weather in %s: %s, %s°C"
	msgCryptoPrice     = "📈 %s ≈ $%s"
	msgPremiumReceived = "🎉 You now have premium access for %d days (until %s UTC). Enjoy unlimited /ask!"
)

func getMessageFromMessageType(messageType MessageType) string {
	switch messageType {
	case MessageTypeHelp:
		return "Use /weather, /crypto, /ask. Admins: /grant_premium <tg_id> <days>"

	case MessageTypeBuy:
		msg := "To buy Premium (manual):\n\n"
		msg += "1) Send payment to: MPESA PAYBILL 0729696729, account: yourname\n"
		msg += "2) After paying, send proof (screenshot) to this chat and run:\n"
		msg += "/confirm_payment <amount>\n\n"
		msg += "An admin will review and grant you premium access."

		return msg

	case MessageTypePaymentPending:
		return "Thanks — payment confirmation received. Admins will verify and run /grant_premium."

	default:
		msg := "🤖 Welcome to InfoBot!\n\n"
		msg += "Commands:\n"
		msg += "/weather <city>\n"
		msg += "/crypto <symbol>\n"
		msg += "/ask <question>\n"
		msg += "/buy (manual payment instructions)\n"

		return msg
	}
}

// GetPremiumGrantedMessage is sent to a user right after an admin granted them
// premium.
func GetPremiumGrantedMessage(days int, expiresAt time.Time) string {
	return fmt.Sprintf(msgPremiumReceived, days, expiresAt.UTC().Format("2006-01-02 15:04"))
}

func getQuotaReachedMessage(limit int) string {
	return fmt.Sprintf(msgQuotaReached, limit)
}

// formatCelsius always keeps a decimal part:
// 12 becomes "12.0", 12.35 stays "12.35".
func formatCelsius(temp float64) string {
	s := strconv.FormatFloat(temp, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
