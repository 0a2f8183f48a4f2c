package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"infobot/models/constants"
	"infobot/pkg/observer"
	usersRepo "infobot/repositories/users"
	"infobot/services/coingecko"
	"infobot/services/inference"
	"infobot/services/weather"
	"infobot/utils/dates"
	"infobot/utils/texts"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func New(deps Deps) *Impl {
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	service := &Impl{
		users:     deps.Users,
		gate:      deps.Gate,
		weather:   deps.Weather,
		crypto:    deps.Crypto,
		inference: deps.Inference,
		askLimit:  deps.AskLimit,
		now:       now,
		observers: map[observer.Observer]struct{}{},
	}

	service.routes = map[string]HandlerFunc{
		CmdStart:          service.startCmd,
		CmdHelp:           service.helpCmd,
		CmdWeather:        RequireArgs(1, usageWeather, service.weatherCmd),
		CmdCrypto:         RequireArgs(1, usageCrypto, service.cryptoCmd),
		CmdAsk:            RequireArgs(1, usageAsk, RequireQuota(service.gate, service.askLimit, service.askCmd)),
		CmdBuy:            service.buyCmd,
		CmdConfirmPayment: service.confirmPaymentCmd,
		CmdGrantPremium:   RequireAdmin(service.gate, RequireArgs(2, usageGrantPremium, service.grantPremiumCmd)),
	}

	return service
}

func (service *Impl) RegisterObserver(o observer.Observer) {
	service.observers[o] = struct{}{}
}

func (service *Impl) notify(e observer.Event) {
	for o := range service.observers {
		o.OnNotify(e)
	}
}

func (service *Impl) Routes() map[string]HandlerFunc {
	return service.routes
}

// Dispatch runs the handler registered for command. It reports false when no
// handler matches; unknown commands are left to the transport.
func (service *Impl) Dispatch(ctx context.Context, command string, req Request, replier Replier) (bool, error) {
	handler, ok := service.routes[command]
	if !ok {
		return false, nil
	}

	log.Info().
		Str(constants.LogCommand, command).
		Str(constants.LogUsername, req.Username).
		Int64(constants.LogUserID, req.UserID).
		Msg("command received")

	return true, handler(ctx, req, replier)
}

func (service *Impl) startCmd(_ context.Context, req Request, replier Replier) error {
	if _, err := service.users.GetOrCreate(req.UserID, req.Username); err != nil {
		log.Error().Err(err).Int64(constants.LogUserID, req.UserID).Msg("Failed to register user")
	}

	return replier.Reply(getMessageFromMessageType(MessageTypeWelcome))
}

func (service *Impl) helpCmd(_ context.Context, _ Request, replier Replier) error {
	return replier.Reply(getMessageFromMessageType(MessageTypeHelp))
}

func (service *Impl) buyCmd(_ context.Context, _ Request, replier Replier) error {
	return replier.Reply(getMessageFromMessageType(MessageTypeBuy))
}

// confirmPaymentCmd only acknowledges; the proof is checked by an admin.
func (service *Impl) confirmPaymentCmd(_ context.Context, _ Request, replier Replier) error {
	return replier.Reply(getMessageFromMessageType(MessageTypePaymentPending))
}

func (service *Impl) weatherCmd(ctx context.Context, req Request, replier Replier) error {
	city := strings.Join(req.Args, " ")

	conditions, err := service.weather.Current(ctx, city)
	if err != nil {
		if errors.Is(err, weather.ErrCityNotFound) {
			log.Info().Str(constants.LogCity, city).Msg("City not found")
			return replier.Reply(msgCityNotFound)
		}
		log.Error().Err(err).Str(constants.LogCity, city).Msg("Failed to fetch weather")
		return replier.Reply(msgWeatherError)
	}

	title := cases.Title(language.Und).String(city)
	return replier.Reply(fmt.Sprintf(msgWeatherReport, title, conditions.Description, formatCelsius(conditions.Temperature)))
}

func (service *Impl) cryptoCmd(ctx context.Context, req Request, replier Replier) error {
	symbol := req.Args[0]

	coinID, err := service.crypto.Resolve(ctx, symbol)
	if err != nil {
		log.Info().Err(err).Str(constants.LogSymbol, symbol).Msg("Coin not resolved")
		return replier.Reply(msgCoinNotFound)
	}

	price, err := service.crypto.Price(ctx, coinID)
	if err != nil {
		if errors.Is(err, coingecko.ErrPriceNotAvailable) {
			return replier.Reply(msgPriceNotFound)
		}
		log.Error().Err(err).Str(constants.LogCoinID, coinID).Msg("Failed to fetch price")
		return replier.Reply(msgPriceError)
	}

	return replier.Reply(fmt.Sprintf(msgCryptoPrice, strings.ToUpper(symbol), humanize.Commaf(price)))
}

func (service *Impl) askCmd(ctx context.Context, req Request, replier Replier) error {
	question := strings.Join(req.Args, " ")

	answer, err := service.inference.Generate(ctx, question)
	if err != nil {
		log.Error().Err(err).Int64(constants.LogUserID, req.UserID).Msg("Failed to generate answer")
		return replier.Reply(msgAskError)
	}

	return replyChunked(replier, answer)
}

func (service *Impl) grantPremiumCmd(_ context.Context, req Request, replier Replier) error {
	targetID, errID := strconv.ParseInt(req.Args[0], 10, 64)
	days, errDays := strconv.Atoi(req.Args[1])
	if errID != nil || errDays != nil || days <= 0 {
		return replier.Reply(usageGrantPremium)
	}

	expiresAt := dates.AddDays(service.now().UTC(), days)
	if _, err := service.users.SetPremium(targetID, expiresAt); err != nil {
		if errors.Is(err, usersRepo.ErrUserNotFound) {
			return replier.Reply(msgUserNotFound)
		}
		log.Error().Err(err).Int64(constants.LogTargetID, targetID).Msg("Failed to grant premium")
		return replier.Reply(msgGenericError)
	}

	log.Info().
		Int64(constants.LogUserID, req.UserID).
		Int64(constants.LogTargetID, targetID).
		Int("days", days).
		Msg("Premium granted")
	service.notify(observer.NewPremiumGrantedEvent(targetID, days, expiresAt))

	return replier.Reply(fmt.Sprintf(msgPremiumGranted, targetID, days))
}

func replyChunked(replier Replier, text string) error {
	if text == "" {
		text = inference.NoAnswer
	}

	for _, chunk := range texts.Split(text, texts.MaxMessageLength) {
		if err := replier.Reply(chunk); err != nil {
			return err
		}
	}
	return nil
}
