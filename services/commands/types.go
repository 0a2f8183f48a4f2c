package commands

import (
	"context"
	"time"

	"infobot/pkg/observer"
	usersRepo "infobot/repositories/users"
	"infobot/services/coingecko"
	"infobot/services/inference"
	"infobot/services/quota"
	"infobot/services/weather"
)

type MessageType int

const (
	MessageTypeUnknown        MessageType = -1
	MessageTypeWelcome        MessageType = 1
	MessageTypeHelp           MessageType = 2
	MessageTypeBuy            MessageType = 3
	MessageTypePaymentPending MessageType = 4
)

const (
	CmdStart          = "start"
	CmdHelp           = "help"
	CmdWeather        = "weather"
	CmdCrypto         = "crypto"
	CmdAsk            = "ask"
	CmdBuy            = "buy"
	CmdConfirmPayment = "confirm_payment"
	CmdGrantPremium   = "grant_premium"
)

// Request is one command invocation, independent of the chat transport.
type Request struct {
	UserID   int64
	Username string
	Args     []string
}

// Replier sends one plain-text message back to the caller.
type Replier interface {
	Reply(text string) error
}

type HandlerFunc func(ctx context.Context, req Request, replier Replier) error

type Service interface {
	Routes() map[string]HandlerFunc
	Dispatch(ctx context.Context, command string, req Request, replier Replier) (bool, error)
	RegisterObserver(o observer.Observer)
}

// Deps groups the collaborators shared by every command handler.
type Deps struct {
	Users     usersRepo.Repository
	Gate      quota.Service
	Weather   weather.Service
	Crypto    coingecko.Service
	Inference inference.Service
	AskLimit  int
	Now       func() time.Time
}

type Impl struct {
	users     usersRepo.Repository
	gate      quota.Service
	weather   weather.Service
	crypto    coingecko.Service
	inference inference.Service
	askLimit  int
	now       func() time.Time
	routes    map[string]HandlerFunc
	observers map[observer.Observer]struct{}
}
