package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "tapconnect", cfg.Database.DBName)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
	assert.Equal(t, int32(5), cfg.Database.MinConns)

	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, 0, cfg.Redis.DB)

	assert.Equal(t, "TKN", cfg.Wallet.DefaultCurrency)
	assert.Equal(t, int64(50000), cfg.Wallet.DefaultDailyLimit)
	assert.Equal(t, "UTC", cfg.Wallet.DefaultTimezone)

	assert.Equal(t, 3, cfg.Ledger.MaxRetries)
	assert.Equal(t, 10*time.Second, cfg.Ledger.IdempotencyWindow)
	assert.Equal(t, 2*time.Second, cfg.Feedback.PublishTimeout)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
server:
  host: "127.0.0.1"
  port: 9090
  mode: "release"
database:
  host: "db.example.com"
  port: 5433
  user: "appuser"
  password: "secret123"
  dbname: "eventdb"
wallet:
  default_daily_limit: 10000
  default_timezone: "Europe/Berlin"
ledger:
  max_retries: 5
  idempotency_window: "30s"
feedback:
  publish_timeout: "500ms"
log:
  level: "debug"
  pretty: true
`)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "db.example.com", cfg.Database.Host)
	assert.Equal(t, "eventdb", cfg.Database.DBName)
	assert.Equal(t, int64(10000), cfg.Wallet.DefaultDailyLimit)
	assert.Equal(t, "Europe/Berlin", cfg.Wallet.DefaultTimezone)
	assert.Equal(t, 5, cfg.Ledger.MaxRetries)
	assert.Equal(t, 30*time.Second, cfg.Ledger.IdempotencyWindow)
	assert.Equal(t, 500*time.Millisecond, cfg.Feedback.PublishTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)

	// Keys absent from the file keep their defaults.
	assert.Equal(t, "TKN", cfg.Wallet.DefaultCurrency)
	assert.Equal(t, 6379, cfg.Redis.Port)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TAP_DATABASE_HOST", "env-db-host")
	t.Setenv("TAP_WALLET_DEFAULT_DAILY_LIMIT", "77700")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-db-host", cfg.Database.Host)
	assert.Equal(t, int64(77700), cfg.Wallet.DefaultDailyLimit)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "localhost", Port: 5432,
		User: "u", Password: "p", DBName: "db", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@localhost:5432/db?sslmode=disable", d.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "redis.local", Port: 6380}
	assert.Equal(t, "redis.local:6380", r.Addr())
}
