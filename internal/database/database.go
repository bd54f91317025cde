package database

import (
	"fmt"
	"time"

	"github.com/SergSukh/api-yamdb-33-all/config"
	"github.com/SergSukh/api-yamdb-33-all/packages/database"

	"gorm.io/gorm"
)

const serviceName = "yamdb"

var (
	DB *gorm.DB
	// RedisDB stays nil when redis is disabled.
	RedisDB *database.RedisClient
)

// InitDatabase opens the configured store and, when enabled, Redis.
func InitDatabase() error {
	db, err := Open(config.Conf.Database)
	if err != nil {
		return err
	}
	DB = db

	redisConf := config.Conf.Redis
	if !redisConf.Enabled {
		return nil
	}

	RedisDB, err = database.InitRedis(&database.RedisConfig{
		ServiceName: serviceName,
		Host:        redisConf.Host,
		Port:        redisConf.Port,
		Password:    redisConf.Password,
		DB:          redisConf.DB,
		PoolSize:    redisConf.PoolSize,
	})
	return err
}

// Open connects to the store selected by conf.Driver.
func Open(conf config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := conf.LogLevel
	if logLevel == "" {
		logLevel = "silent"
	}

	switch conf.Driver {
	case "", "postgres":
		return database.InitPostgres(&database.PostgresConfig{
			ServiceName:     serviceName,
			Username:        conf.Username,
			Password:        conf.Password,
			Host:            conf.Host,
			Port:            conf.Port,
			Database:        conf.Database,
			SSLMode:         conf.SSLMode,
			LogLevel:        logLevel,
			MaxIdleConns:    conf.MaxIdleConns,
			MaxOpenConns:    conf.MaxOpenConns,
			ConnMaxLifetime: time.Duration(conf.MaxLifetime) * time.Second,
		})
	case "sqlite":
		return database.InitSqlite(&database.SqliteConfig{
			ServiceName: serviceName,
			Path:        conf.Database,
			LogLevel:    logLevel,
		})
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.Driver)
	}
}

// Close releases every open connection.
func Close() {
	if DB != nil {
		if sqlDB, err := DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if RedisDB != nil {
		_ = RedisDB.Close()
	}
}
