package constants

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// GetAdminIDs parses the configured admin list. Malformed entries are skipped.
func GetAdminIDs() map[int64]struct{} {
	return ParseAdminIDs(viper.GetString(AdminIDs))
}

func ParseAdminIDs(raw string) map[int64]struct{} {
	admins := make(map[int64]struct{})
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		id, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			log.Warn().Err(err).Str(AdminIDs, field).Msg("Ignoring malformed admin ID")
			continue
		}
		admins[id] = struct{}{}
	}

	return admins
}
