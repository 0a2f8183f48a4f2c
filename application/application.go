package application

import (
	"strings"

	"infobot/models/constants"
	"infobot/models/entities"
	usersRepo "infobot/repositories/users"
	"infobot/services/coingecko"
	"infobot/services/commands"
	"infobot/services/health"
	"infobot/services/inference"
	"infobot/services/quota"
	"infobot/services/telegram"
	"infobot/services/weather"
	databases "infobot/utils/databases"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func New() (*Impl, error) {
	db := databases.New()
	if errDB := db.Run(); errDB != nil {
		return nil, errDB
	}

	errMigration := db.Migrate(&entities.User{}, &entities.Transaction{})
	if errMigration != nil {
		return nil, errMigration
	}

	scheduler, errScheduler := gocron.NewScheduler()
	if errScheduler != nil {
		return nil, errScheduler
	}

	healthService, errHealth := health.New(scheduler, viper.GetString(constants.HealthCronTab), db.IsConnected)
	if errHealth != nil {
		return nil, errHealth
	}

	// Repositories
	userRepo := usersRepo.New(db)

	admins := constants.GetAdminIDs()
	gate := quota.New(userRepo, admins)

	generator, errInference := inference.New(
		viper.GetString(constants.InferenceProvider),
		viper.GetString(constants.InferenceURL),
		viper.GetString(constants.InferenceModel),
		getInferenceAPIKey(),
	)
	if errInference != nil {
		return nil, errInference
	}

	commandsService := commands.New(commands.Deps{
		Users:     userRepo,
		Gate:      gate,
		Weather:   weather.New(viper.GetString(constants.WeatherAPIKey)),
		Crypto:    coingecko.New(constants.GetCoinAliases(), viper.GetInt(constants.CoingeckoRatePerMinute)),
		Inference: generator,
		AskLimit:  viper.GetInt(constants.AskDailyLimit),
	})

	telegramService, errTg := telegram.New(scheduler, viper.GetString(constants.TelegramBotToken),
		viper.GetString(constants.AdminReportCronTab), admins, userRepo, commandsService)
	if errTg != nil {
		return nil, errTg
	}

	commandsService.RegisterObserver(telegramService)

	return &Impl{
		scheduler:       scheduler,
		healthService:   healthService,
		telegramService: telegramService,
		db:              db,
	}, nil
}

func getInferenceAPIKey() string {
	if strings.EqualFold(strings.TrimSpace(viper.GetString(constants.InferenceProvider)), inference.ProviderOpenAI) {
		return viper.GetString(constants.OpenAIAPIKey)
	}
	return viper.GetString(constants.GroqAPIKey)
}

func (app *Impl) Run() {
	app.scheduler.Start()
	go func() {
		if err := app.telegramService.ListenAndDispatch(); err != nil {
			log.Error().Err(err).Msg("Telegram service stopped")
		}
	}()

	for _, job := range app.scheduler.Jobs() {
		scheduledTime, err := job.NextRun()
		if err == nil {
			log.Info().Msgf("%v scheduled at %v", job.Name(), scheduledTime)
		}
	}
}

func (app *Impl) Shutdown() {
	app.telegramService.Shutdown()
	if err := app.scheduler.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Cannot shutdown scheduler, continuing...")
	}
	app.db.Shutdown()
	log.Info().Msgf("Application is no longer running")
}
