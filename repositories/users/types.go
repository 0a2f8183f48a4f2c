package users

import (
	"errors"
	"time"

	"infobot/models/entities"
	"infobot/utils/databases"
)

var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	GetOrCreate(telegramID int64, username string) (entities.User, error)
	FindByTelegramID(telegramID int64) (entities.User, error)
	SetPremium(telegramID int64, expiresAt time.Time) (entities.User, error)
	RecordRequest(telegramID int64, now time.Time) (entities.User, error)
	Save(user entities.User) error
	Count() int64
	CountPremium() int64
}

type Impl struct {
	db databases.SqlConnection
}
