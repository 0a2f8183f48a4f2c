package constants

import "github.com/rs/zerolog"

const (
	LogFileName      = "fileName"
	LogCommand       = "cmd"
	LogUserID        = "userID"
	LogUsername      = "username"
	LogTargetID      = "targetID"
	LogDecision      = "decision"
	LogCity          = "city"
	LogSymbol        = "symbol"
	LogCoinID        = "coinID"
	LogProvider      = "provider"
	LogStatusCode    = "statusCode"
	LogLevelFallback = zerolog.InfoLevel
)
