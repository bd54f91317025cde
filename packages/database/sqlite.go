package database

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// SqliteConfig SQLite settings for local runs and tests
type SqliteConfig struct {
	ServiceName string
	// Path is a file path or a full DSN such as "file:x?mode=memory&cache=shared".
	Path     string
	LogLevel string
}

// InitSqlite opens a SQLite database with foreign keys enforced.
// A single connection is kept so in-memory databases survive between queries.
func InitSqlite(config *SqliteConfig) (*gorm.DB, error) {
	if config == nil {
		return nil, fmt.Errorf("sqlite config is nil")
	}
	if config.Path == "" {
		config.Path = "yamdb.sqlite3"
	}
	if config.LogLevel == "" {
		config.LogLevel = "silent"
	}

	db, err := gorm.Open(sqlite.Open(withForeignKeys(config.Path)), gormConfig(config.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	slog.Debug("sqlite opened", "service", serviceName(config.ServiceName), "path", config.Path)
	return db, nil
}

func withForeignKeys(dsn string) string {
	const pragma = "_pragma=foreign_keys(1)"
	if strings.Contains(dsn, "?") {
		return dsn + "&" + pragma
	}
	return dsn + "?" + pragma
}
