package databases

import (
	"errors"

	"gorm.io/gorm"
)

var ErrNotConnected = errors.New("database is not connected")

type SqlConnection interface {
	GetDB() *gorm.DB
	IsConnected() bool
	Run() error
	Migrate(models ...any) error
	Shutdown()
}
