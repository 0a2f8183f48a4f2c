package quota

import (
	"time"

	"infobot/models/constants"
	usersRepo "infobot/repositories/users"

	"github.com/rs/zerolog/log"
)

func New(repo usersRepo.Repository, admins map[int64]struct{}) *Impl {
	return NewWithClock(repo, admins, time.Now)
}

func NewWithClock(repo usersRepo.Repository, admins map[int64]struct{}, now func() time.Time) *Impl {
	if admins == nil {
		admins = map[int64]struct{}{}
	}

	return &Impl{repo: repo, admins: admins, now: now}
}

func (service *Impl) IsAdmin(telegramID int64) bool {
	_, ok := service.admins[telegramID]
	return ok
}

// Check decides whether one quota-limited request may proceed. The stale
// counter is reset before any bypass is considered, and the reset is stored
// even when the request is bypassed or denied. Premium expiry is not
// consulted: the flag alone grants the bypass.
func (service *Impl) Check(telegramID int64, username string, limit int) (Decision, error) {
	now := service.now()

	user, err := service.repo.GetOrCreate(telegramID, username)
	if err != nil {
		return DecisionUnknown, err
	}

	reset := usersRepo.ResetIfNewDay(&user, now)

	var decision Decision
	switch {
	case service.IsAdmin(telegramID):
		decision = DecisionAdminBypass
	case user.IsPremium:
		decision = DecisionPremiumBypass
	case user.RequestsToday >= limit:
		decision = DecisionExceeded
	default:
		decision = DecisionWithinLimit
	}

	if decision == DecisionWithinLimit {
		user, err = service.repo.RecordRequest(telegramID, now)
		if err != nil {
			return DecisionUnknown, err
		}
	} else if reset {
		if errSave := service.repo.Save(user); errSave != nil {
			return DecisionUnknown, errSave
		}
	}

	log.Debug().
		Int64(constants.LogUserID, telegramID).
		Str(constants.LogDecision, decision.String()).
		Int("requestsToday", user.RequestsToday).
		Int("limit", limit).
		Msg("Quota checked")

	return decision, nil
}
