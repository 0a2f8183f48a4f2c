package constants

import (
	"github.com/rs/zerolog"
)

const (
	ConfigFileName = ".env"

	ExternalName = "InfoBot"
	Version      = "1.0.0"

	// TELEGRAM BOT
	TelegramBotToken = "BOT_TOKEN"

	// Comma-separated list of Telegram user IDs allowed to run admin commands.
	AdminIDs = "ADMIN_IDS"

	//nolint:gosec // False positive.
	// OpenWeatherMap API key.
	WeatherAPIKey = "WEATHER_API_KEY"

	// Inference provider, one of [groq, openai].
	InferenceProvider = "INFERENCE_PROVIDER"

	// Overrides the provider endpoint; empty means provider default.
	InferenceURL = "INFERENCE_URL"

	// Overrides the provider model; empty means provider default.
	InferenceModel = "INFERENCE_MODEL"

	//nolint:gosec // False positive.
	GroqAPIKey = "GROQ_API_KEY"

	//nolint:gosec // False positive.
	OpenAIAPIKey = "OPENAI_API_KEY"

	// Database URL, sqlite:///path or plain file path.
	DatabaseURL = "DATABASE_URL"

	//nolint:gosec // False positive.
	// Kept for the manual payment flow; nothing reads it yet.
	PaymentProviderToken = "PAYMENT_PROVIDER_TOKEN"

	// Number of /ask requests per day for regular users.
	AskDailyLimit = "ASK_DAILY_LIMIT"

	// Outbound request budget towards CoinGecko.
	CoingeckoRatePerMinute = "COINGECKO_RATE_PER_MINUTE"

	// Zerolog values from [trace, debug, info, warn, error, fatal, panic].
	LogLevel = "LOG_LEVEL"

	// Cron tab to health.
	HealthCronTab = "HEALTH_CRON_TAB"

	// Cron tab to the daily admin report.
	AdminReportCronTab = "ADMIN_REPORT_CRON_TAB"

	defaultTelegramBotToken       = ""
	defaultAdminIDs               = ""
	defaultWeatherAPIKey          = ""
	defaultInferenceProvider      = "groq"
	defaultInferenceURL           = ""
	defaultInferenceModel         = ""
	defaultGroqAPIKey             = ""
	defaultOpenAIAPIKey           = ""
	defaultDatabaseURL            = "sqlite:///infobot.db"
	defaultPaymentProviderToken   = ""
	defaultAskDailyLimit          = 2
	defaultCoingeckoRatePerMinute = 30
	defaultHealthCrontab          = "* * * * *"
	defaultAdminReportCrontab     = "0 14 * * *"
	defaultLogLevel               = zerolog.InfoLevel
)

func GetDefaultConfigValues() map[string]any {
	return map[string]any{
		TelegramBotToken:       defaultTelegramBotToken,
		AdminIDs:               defaultAdminIDs,
		WeatherAPIKey:          defaultWeatherAPIKey,
		InferenceProvider:      defaultInferenceProvider,
		InferenceURL:           defaultInferenceURL,
		InferenceModel:         defaultInferenceModel,
		GroqAPIKey:             defaultGroqAPIKey,
		OpenAIAPIKey:           defaultOpenAIAPIKey,
		DatabaseURL:            defaultDatabaseURL,
		PaymentProviderToken:   defaultPaymentProviderToken,
		AskDailyLimit:          defaultAskDailyLimit,
		CoingeckoRatePerMinute: defaultCoingeckoRatePerMinute,
		LogLevel:               defaultLogLevel.String(),
		HealthCronTab:          defaultHealthCrontab,
		AdminReportCronTab:     defaultAdminReportCrontab,
	}
}
