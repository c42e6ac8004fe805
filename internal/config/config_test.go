package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "log_level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "data/aiva.db", cfg.Local.Path)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "aiva", cfg.RabbitMQ.Exchange)
	assert.False(t, cfg.RabbitMQ.Enabled)
	assert.Equal(t, 3, cfg.WordPress.Retry.MaxAttempts)
	assert.Equal(t, 5*time.Minute, cfg.Sync.Interval)
	assert.Equal(t, "openai", cfg.AI.Provider)
	assert.False(t, cfg.Remote())
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Setenv("AIVA_TEST_USER", "user-42")
	t.Setenv("AIVA_TEST_KEY", "sk-test")

	cfg, err := Load(writeConfig(t, `
session:
  user_id: ${AIVA_TEST_USER}
ai:
  provider: gemini
  api_key: ${AIVA_TEST_KEY}
wordpress:
  url: https://blog.example.com
  retry:
    max_attempts: 5
sync:
  interval: 30s
`))
	require.NoError(t, err)

	assert.Equal(t, "user-42", cfg.Session.UserID)
	assert.True(t, cfg.Remote())
	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, "sk-test", cfg.AI.APIKey)
	assert.Equal(t, "https://blog.example.com", cfg.WordPress.URL)
	assert.Equal(t, 5, cfg.WordPress.Retry.MaxAttempts)
	assert.Equal(t, time.Second, cfg.WordPress.Retry.InitialBackoff)
	assert.Equal(t, 30*time.Second, cfg.Sync.Interval)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "sync: [unterminated\n"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5433, User: "aiva", Password: "secret", DBName: "aiva", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5433 user=aiva password=secret dbname=aiva sslmode=disable", d.DSN())
}
