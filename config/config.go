package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override, e.g. YAMDB_JWT__SECRET -> jwt.secret.
const EnvPrefix = "YAMDB_"

// ErrMissingJWTSecret jwt.secret is unset after every source is applied.
var ErrMissingJWTSecret = errors.New("jwt.secret is required")

var (
	Conf *AppConfig
	once sync.Once
	k    *koanf.Koanf
)

// Load reads .env, then the YAML file, then YAMDB_* environment variables
// into the global Conf. Only the first call has any effect.
func Load(configPath string) error {
	var err error
	once.Do(func() {
		if loadErr := godotenv.Load(".env"); loadErr != nil && !errors.Is(loadErr, fs.ErrNotExist) {
			slog.Warn("load .env", "err", loadErr)
		}

		var conf *AppConfig
		k, conf, err = parse(configPath)
		if err != nil {
			return
		}
		Conf = conf
	})

	return err
}

// MustLoad is Load that exits the process on failure.
func MustLoad(configPath string) {
	if err := Load(configPath); err != nil {
		slog.Error("load config", "path", configPath, "err", err)
		os.Exit(1)
	}
}

// Parse builds a configuration without touching the global state.
func Parse(configPath string) (*AppConfig, error) {
	_, conf, err := parse(configPath)
	return conf, err
}

func parse(configPath string) (*koanf.Koanf, *AppConfig, error) {
	ko := koanf.New(".")

	if configPath != "" {
		if err := ko.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, nil, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := ko.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, nil, fmt.Errorf("load environment: %w", err)
	}

	conf := &AppConfig{}
	if err := ko.Unmarshal("", conf); err != nil {
		return nil, nil, fmt.Errorf("unmarshal config: %w", err)
	}
	applyDefaults(conf)

	if conf.JWT.Secret == "" {
		return nil, nil, ErrMissingJWTSecret
	}

	return ko, conf, nil
}

func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}

func applyDefaults(c *AppConfig) {
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "debug"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.JWT.ExpireTime == 0 {
		c.JWT.ExpireTime = 24
	}
	if c.Mail.From == "" {
		c.Mail.From = "YaMDb <noreply@yamdb.local>"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if len(c.Cors.AllowedOrigins) == 0 {
		c.Cors.AllowedOrigins = []string{"http://localhost:3000"}
	}
}

func GetString(key string) string {
	if k == nil {
		panic("config not loaded")
	}
	return k.String(key)
}

func GetInt(key string) int {
	if k == nil {
		panic("config not loaded")
	}
	return k.Int(key)
}

func GetBool(key string) bool {
	if k == nil {
		panic("config not loaded")
	}
	return k.Bool(key)
}
