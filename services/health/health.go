package health

import (
	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

// New schedules a heartbeat that logs whether the database still answers.
func New(scheduler gocron.Scheduler, cronTab string, isConnected func() bool) (*Impl, error) {
	service := Impl{isConnected: isConnected}

	_, errJob := scheduler.NewJob(
		gocron.CronJob(cronTab, false),
		gocron.NewTask(func() { service.echo() }),
		gocron.WithName("Check app running"),
	)
	if errJob != nil {
		return nil, errJob
	}

	return &service, nil
}

func (service *Impl) IsHealthy() bool {
	return service.isConnected()
}

func (service *Impl) echo() {
	if !service.IsHealthy() {
		log.Error().Msg("Application is running but the database is unreachable")
		return
	}
	log.Info().Msgf("Application is running")
}
