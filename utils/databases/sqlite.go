package databases

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"infobot/models/constants"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const sqliteScheme = "sqlite:///"

type sqliteConnection struct {
	dsn string
	db  *gorm.DB
}

func New() SqlConnection {
	return NewFromURL(viper.GetString(constants.DatabaseURL))
}

// NewFromURL accepts either a sqlite:///path URL or a bare file path.
func NewFromURL(url string) SqlConnection {
	return &sqliteConnection{
		dsn: DSNFromURL(url),
	}
}

func DSNFromURL(url string) string {
	return strings.TrimPrefix(strings.TrimSpace(url), sqliteScheme)
}

func (c *sqliteConnection) GetDB() *gorm.DB {
	return c.db
}

func (c *sqliteConnection) IsConnected() bool {
	if c.db == nil {
		return false
	}

	dbSQL, errSQL := c.db.DB()
	if errSQL != nil {
		return false
	}

	if errPing := dbSQL.Ping(); errPing != nil {
		return false
	}

	return true
}

func (c *sqliteConnection) Run() error {
	if err := ensureDirForSQLite(c.dsn); err != nil {
		return err
	}

	db, err := gorm.Open(sqlite.Open(c.dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return fmt.Errorf("open sqlite %q: %w", c.dsn, err)
	}

	c.db = db
	log.Info().Str(constants.LogFileName, c.dsn).Msg("Connected to Sqlite")
	return nil
}

func (c *sqliteConnection) Migrate(models ...any) error {
	if c.db == nil {
		return ErrNotConnected
	}

	return c.db.AutoMigrate(models...)
}

func (c *sqliteConnection) Shutdown() {
	log.Info().Msg("Shutdown the connection to Sqlite")
	if c.db == nil {
		return
	}

	dbSQL, err := c.db.DB()
	if err != nil {
		log.Error().Err(err).Msgf("Failed to shutdown database connection")
		return
	}

	if errClose := dbSQL.Close(); errClose != nil {
		log.Error().Err(errClose).Msgf("Failed to shutdown database connection")
	}
}

// ensureDirForSQLite creates the parent directory of a file-backed database.
func ensureDirForSQLite(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}

	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}
