package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg := InitConfig("")

	assert.Equal(t, "payment-api", cfg.App.Name)
	assert.Equal(t, "test", cfg.App.Environment)
	assert.Equal(t, "development", cfg.App.Version)
	assert.False(t, cfg.App.Debug)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "sqlite3", cfg.Database.Driver)
	assert.Equal(t, "./db/payments.db", cfg.Database.Path)
	assert.Equal(t, "https://api.paystack.co", cfg.Paystack.BaseURL)
	assert.Equal(t, "http://localhost:3000/verify-payment", cfg.Paystack.CallbackURL)
	assert.Equal(t, 30*time.Second, cfg.Paystack.Timeout)
	assert.Equal(t, time.Minute, cfg.RateLimit.Period)
	assert.False(t, cfg.Redis.Enabled())
	assert.Empty(t, cfg.Paystack.SecretKey)
}

func TestInitConfig_PortOverride(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("PORT", "8081")

	cfg := InitConfig("")

	assert.Equal(t, 8081, cfg.Server.Port)
}

func TestInitConfig_ServerPortWinsOverPort(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("PORT", "8081")

	cfg := InitConfig("")

	assert.Equal(t, 9000, cfg.Server.Port)
}

func TestInitConfig_LoadsEnvFileInLocal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payments.env")
	content := "PAYSTACK_SECRET_KEY=sk_test_file\nREDIS_HOST=localhost\nRATE_LIMIT_PERIOD=30s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("APP_ENV", "local")
	// register the keys so t.Setenv restores them after godotenv sets them
	t.Setenv("PAYSTACK_SECRET_KEY", "")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("RATE_LIMIT_PERIOD", "")
	os.Unsetenv("PAYSTACK_SECRET_KEY")
	os.Unsetenv("REDIS_HOST")
	os.Unsetenv("RATE_LIMIT_PERIOD")

	cfg := InitConfig(path)

	assert.Equal(t, "sk_test_file", cfg.Paystack.SecretKey)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Period)
}

func TestInitConfig_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("PAYSTACK_TIMEOUT", "soon")

	cfg := InitConfig("")

	assert.Equal(t, 30*time.Second, cfg.Paystack.Timeout)
}
