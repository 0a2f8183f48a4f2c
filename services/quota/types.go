package quota

import (
	"time"

	usersRepo "infobot/repositories/users"
)

type Decision int

const (
	DecisionUnknown Decision = iota
	DecisionAdminBypass
	DecisionPremiumBypass
	DecisionWithinLimit
	DecisionExceeded
)

func (d Decision) String() string {
	switch d {
	case DecisionAdminBypass:
		return "ADMIN_BYPASS"
	case DecisionPremiumBypass:
		return "PREMIUM_BYPASS"
	case DecisionWithinLimit:
		return "WITHIN_LIMIT"
	case DecisionExceeded:
		return "EXCEEDED"
	default:
		return "UNKNOWN"
	}
}

func (d Decision) Allowed() bool {
	return d == DecisionAdminBypass || d == DecisionPremiumBypass || d == DecisionWithinLimit
}

type Service interface {
	Check(telegramID int64, username string, limit int) (Decision, error)
	IsAdmin(telegramID int64) bool
}

type Impl struct {
	repo   usersRepo.Repository
	admins map[int64]struct{}
	now    func() time.Time
}
