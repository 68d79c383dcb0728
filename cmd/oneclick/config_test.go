package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/oneclick/pkg/config"
	"github.com/dmitrymomot/oneclick/svc/suppression"
)

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	var cfg Config
	require.NoError(t, config.Load(&cfg, config.WithEnvironment(map[string]string{
		"UNSUBSCRIBE_TOKEN_SECRET": "s",
	})))

	assert.Equal(t, "oneclick", cfg.AppName)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, suppression.DefaultRedisKey, cfg.SuppressionRedisKey)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Empty(t, cfg.TrustedIPHeaders)
	assert.Equal(t, 20, cfg.RateLimit.Capacity)
	assert.Equal(t, 1, cfg.RateLimit.RefillRate)
	assert.Equal(t, 3*time.Second, cfg.RateLimit.RefillInterval)
}

func TestConfigOverrides(t *testing.T) {
	t.Parallel()

	var cfg Config
	require.NoError(t, config.Load(&cfg, config.WithEnvironment(map[string]string{
		"UNSUBSCRIBE_TOKEN_SECRET": "s",
		"APP_ENV":                  "production",
		"REDIS_URL":                "redis://localhost:6379/1",
		"SUPPRESSION_REDIS_KEY":    "list:optout",
		"HTTP_ADDR":                ":9090",
		"NOTIFY_WEBHOOK_URL":       "https://hooks.example.com/x",
		"HTTP_TRUSTED_IP_HEADERS":  "CF-Connecting-IP,X-Forwarded-For",
		"RATE_LIMIT_CAPACITY":      "5",
	})))

	assert.Equal(t, "production", cfg.AppEnv)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "list:optout", cfg.SuppressionRedisKey)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "https://hooks.example.com/x", cfg.NotifyWebhookURL)
	assert.Equal(t, []string{"CF-Connecting-IP", "X-Forwarded-For"}, cfg.TrustedIPHeaders)
	assert.Equal(t, 5, cfg.RateLimit.Capacity)
}

func TestConfigRequiresSecret(t *testing.T) {
	t.Parallel()

	var cfg Config
	err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	err = config.Load(&cfg, config.WithEnvironment(map[string]string{"UNSUBSCRIBE_TOKEN_SECRET": ""}))
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oneclick.env")
	require.NoError(t, os.WriteFile(path, []byte("UNSUBSCRIBE_TOKEN_SECRET=from-file\nAPP_NAME=file-app\n"), 0o600))
	t.Setenv("UNSUBSCRIBE_TOKEN_SECRET", "")
	require.NoError(t, os.Unsetenv("UNSUBSCRIBE_TOKEN_SECRET"))
	t.Setenv("APP_NAME", "")
	require.NoError(t, os.Unsetenv("APP_NAME"))

	cfg, err := loadConfig([]string{path})
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.TokenSecret)
	assert.Equal(t, "file-app", cfg.AppName)

	_, stillSet := os.LookupEnv("UNSUBSCRIBE_TOKEN_SECRET")
	assert.False(t, stillSet, "secret is removed from the environment after loading")
}
