package telegram

import (
	"context"
	"fmt"
	"time"

	"infobot/models/constants"
	"infobot/pkg/observer"
	usersRepo "infobot/repositories/users"
	"infobot/services/commands"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers"
	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

const commandTimeout = 45 * time.Second

func New(scheduler gocron.Scheduler, token string, adminReportCronTab string, admins map[int64]struct{},
	repo usersRepo.Repository, commandsService commands.Service) (*Impl, error) {
	if token == "" {
		return &Impl{}, ErrTokenIsMissing
	}

	b, err := gotgbot.NewBot(token, nil)
	if err != nil {
		return &Impl{}, fmt.Errorf("%w: %w", ErrBotNotInitialized, err)
	}

	dispatcher := ext.NewDispatcher(&ext.DispatcherOpts{
		Error: func(b *gotgbot.Bot, ctx *ext.Context, err error) ext.DispatcherAction {
			log.Warn().Err(err).Msg("an error occurred while handling update")
			return ext.DispatcherActionNoop
		},
		MaxRoutines: ext.DefaultMaxRoutines,
	})

	service := Impl{bot: b, usersRepo: repo, commandsService: commandsService, admins: admins}
	for name := range commandsService.Routes() {
		dispatcher.AddHandler(handlers.NewCommand(name, service.handle(name)))
	}

	service.updater = ext.NewUpdater(dispatcher, nil)

	_, errAdminJob := scheduler.NewJob(
		gocron.CronJob(adminReportCronTab, false),
		gocron.NewTask(func() { service.dailyAdminReport() }),
		gocron.WithName("Send daily report to admin"),
	)
	if errAdminJob != nil {
		return nil, errAdminJob
	}

	return &service, nil
}

func (service *Impl) ListenAndDispatch() error {
	err := service.updater.StartPolling(service.bot, &ext.PollingOpts{
		DropPendingUpdates: true,
		GetUpdatesOpts: &gotgbot.GetUpdatesOpts{
			Timeout: 9,
			RequestOpts: &gotgbot.RequestOpts{
				Timeout: time.Second * 10,
			},
		},
	})
	if err != nil {
		return ErrFailedToStartListening
	}

	log.Info().Str(constants.LogUsername, service.bot.User.Username).Msg("Telegram bot is polling")
	service.updater.Idle()
	return nil
}

func (service *Impl) Shutdown() {
	if service.updater == nil {
		return
	}

	if err := service.updater.Stop(); err != nil {
		log.Error().Err(err).Msg("Cannot stop telegram updater, continuing...")
	}
}

// handle adapts a gotgbot update to the transport-agnostic command handlers.
// Each update runs in its own dispatcher goroutine, so a slow upstream call
// only blocks the update it belongs to.
func (service *Impl) handle(command string) handlers.Response {
	return func(b *gotgbot.Bot, ctx *ext.Context) error {
		if ctx.EffectiveUser == nil || ctx.EffectiveMessage == nil {
			return nil
		}

		req := commands.Request{
			UserID:   ctx.EffectiveUser.Id,
			Username: ctx.EffectiveUser.Username,
		}
		if args := ctx.Args(); len(args) > 1 {
			req.Args = args[1:]
		}

		reqCtx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		_, err := service.commandsService.Dispatch(reqCtx, command, req, &chatReplier{bot: b, ctx: ctx})
		return err
	}
}

func (r *chatReplier) Reply(text string) error {
	_, err := r.ctx.EffectiveMessage.Reply(r.bot, text, nil)
	return err
}

func (service *Impl) OnNotify(e observer.Event) {
	log.Info().Msg("Received internal notification")
	if e.E == observer.PremiumGrantedEvent {
		service.notifyPremiumGranted(e)
	}
}

func (service *Impl) notifyPremiumGranted(e observer.Event) {
	msg := commands.GetPremiumGrantedMessage(e.Days, e.ExpiresAt)
	if _, err := service.bot.SendMessage(e.UserID, msg, nil); err != nil {
		log.Warn().Err(err).Int64(constants.LogTargetID, e.UserID).Msg("Cannot notify premium user")
	}
}

func (service *Impl) dailyAdminReport() {
	total := service.usersRepo.Count()
	premium := service.usersRepo.CountPremium()

	msg := "📢 Daily users report 📊\n\n"
	msg += fmt.Sprintf("👥 Total users: %d\n", total)
	msg += fmt.Sprintf("⭐ Premium users: %d\n", premium)

	for adminID := range service.admins {
		log.Info().Int64(constants.LogUserID, adminID).Msg("send admin report")
		if _, err := service.bot.SendMessage(adminID, msg, nil); err != nil {
			log.Error().Err(err).Int64(constants.LogUserID, adminID).Msg("Cannot send admin report")
		}
	}
}
