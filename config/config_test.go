package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
server:
  port: 9090
  read_timeout: 5s
database:
  driver: sqlite
  database: test.sqlite3
jwt:
  secret: from-file
signup:
  code_cooldown: 30
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParse_FileAndDefaults(t *testing.T) {
	conf, err := Parse(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, 9090, conf.Server.Port)
	assert.Equal(t, 5*time.Second, conf.Server.ReadTimeout)
	assert.Equal(t, "sqlite", conf.Database.Driver)
	assert.Equal(t, "from-file", conf.JWT.Secret)
	assert.Equal(t, 30, conf.Signup.CodeCooldown)

	assert.Equal(t, 24, conf.JWT.ExpireTime)
	assert.Equal(t, "debug", conf.Server.Mode)
	assert.NotEmpty(t, conf.Mail.From)
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv("YAMDB_JWT__SECRET", "from-env")
	t.Setenv("YAMDB_DATABASE__PORT", "6543")

	conf, err := Parse(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, "from-env", conf.JWT.Secret)
	assert.Equal(t, 6543, conf.Database.Port)
}

func TestParse_MissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestParse_MissingJWTSecret(t *testing.T) {
	_, err := Parse(writeConfig(t, `
server:
  port: 9090
database:
  driver: sqlite
`))
	assert.ErrorIs(t, err, ErrMissingJWTSecret)

	t.Setenv("YAMDB_JWT__SECRET", "from-env")
	conf, err := Parse(writeConfig(t, "server:\n  port: 9090\n"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", conf.JWT.Secret)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "jwt.secret", envKey("YAMDB_JWT__SECRET"))
	assert.Equal(t, "signup.code_cooldown", envKey("YAMDB_SIGNUP__CODE_COOLDOWN"))
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := SetupLogger(LogConfig{Level: "warn", Format: "json"}, &buf)

	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}
