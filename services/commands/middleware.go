package commands

import (
	"context"

	"infobot/models/constants"
	"infobot/services/quota"

	"github.com/rs/zerolog/log"
)

// RequireArgs replies with usage, and stops, when fewer than n arguments were
// given.
func RequireArgs(n int, usage string, next HandlerFunc) HandlerFunc {
	return func(ctx context.Context, req Request, replier Replier) error {
		if len(req.Args) < n {
			return replier.Reply(usage)
		}
		return next(ctx, req, replier)
	}
}

func RequireAdmin(gate quota.Service, next HandlerFunc) HandlerFunc {
	return func(ctx context.Context, req Request, replier Replier) error {
		if !gate.IsAdmin(req.UserID) {
			log.Warn().Int64(constants.LogUserID, req.UserID).Msg("forbidden usage")
			return replier.Reply(msgNotAuthorized)
		}
		return next(ctx, req, replier)
	}
}

// RequireQuota consults the daily quota gate with limit before running next.
// Admins and premium users always pass.
func RequireQuota(gate quota.Service, limit int, next HandlerFunc) HandlerFunc {
	return func(ctx context.Context, req Request, replier Replier) error {
		decision, err := gate.Check(req.UserID, req.Username, limit)
		if err != nil {
			log.Error().Err(err).Int64(constants.LogUserID, req.UserID).Msg("Quota check failed")
			return replier.Reply(msgGenericError)
		}

		if !decision.Allowed() {
			log.Info().
				Int64(constants.LogUserID, req.UserID).
				Str(constants.LogDecision, decision.String()).
				Msg("Quota exceeded")
			return replier.Reply(getQuotaReachedMessage(limit))
		}

		return next(ctx, req, replier)
	}
}
