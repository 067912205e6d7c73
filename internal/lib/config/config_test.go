package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"team-backoffice/internal/lib/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
env: "prod"
http_server:
  address: "0.0.0.0:9090"
  read_timeout: 3s
database:
  url: "postgres://u:p@db:5432/app?sslmode=disable"
auth:
  jwt_secret: "file-secret"
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
	return path
}

func TestMustLoadPath_ReadsFileAndDefaults(t *testing.T) {
	cfg := config.MustLoadPath(writeConfig(t))

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTPServer.Address)
	assert.Equal(t, 3*time.Second, cfg.HTTPServer.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTPServer.WriteTimeout)
	assert.Equal(t, "file-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Database.Migrate)
}

func TestMustLoadPath_EnvOverridesFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("TOKEN_TTL", "1h")

	cfg := config.MustLoadPath(writeConfig(t))

	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
}

func TestMustLoadPath_MissingFilePanics(t *testing.T) {
	assert.Panics(t, func() {
		config.MustLoadPath(filepath.Join(t.TempDir(), "nope.yaml"))
	})
}
