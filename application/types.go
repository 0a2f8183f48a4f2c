package application

import (
	"infobot/services/health"
	"infobot/services/telegram"
	databases "infobot/utils/databases"

	"github.com/go-co-op/gocron/v2"
)

type Application interface {
	Run()
	Shutdown()
}

type Impl struct {
	scheduler       gocron.Scheduler
	healthService   health.Service
	telegramService telegram.Service
	db              databases.SqlConnection
}
