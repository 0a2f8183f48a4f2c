package telegram

import (
	"errors"

	usersRepo "infobot/repositories/users"
	"infobot/services/commands"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
)

var (
	ErrTokenIsMissing         = errors.New("telegram token is missing")
	ErrBotNotInitialized      = errors.New("telegram bot  is not ready yet")
	ErrFailedToStartListening = errors.New("telegram bot can't start to listen command")
)

type Service interface {
	ListenAndDispatch() error
	Shutdown()
}

type Impl struct {
	bot             *gotgbot.Bot
	updater         *ext.Updater
	usersRepo       usersRepo.Repository
	commandsService commands.Service
	admins          map[int64]struct{}
}

// chatReplier answers in the chat the command came from.
type chatReplier struct {
	bot *gotgbot.Bot
	ctx *ext.Context
}
