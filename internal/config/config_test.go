package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/config"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_DSN", "host=localhost user=app dbname=app")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad_RequiresDSNAndSecret(t *testing.T) {
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_DSN")

	t.Setenv("DATABASE_DSN", "host=localhost")
	t.Setenv("JWT_SECRET", "")
	_, err = config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, 60, cfg.RateLimitPerMinute)
	assert.Equal(t, 30, cfg.OfferRetentionDays)
	assert.Equal(t, 6, cfg.SweepIntervalHours)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DEBUG", "true")
	t.Setenv("ACCESS_TOKEN_MINUTES", "15")
	t.Setenv("REFRESH_TOKEN_DAYS", "30")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "120")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 30*24*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	cases := []struct {
		key   string
		value string
	}{
		{"REDIS_DB", "not-a-number"},
		{"ACCESS_TOKEN_MINUTES", "0"},
		{"REFRESH_TOKEN_DAYS", "-1"},
		{"RATE_LIMIT_PER_MINUTE", "abc"},
		{"OFFER_RETENTION_DAYS", "0"},
		{"SWEEP_INTERVAL_HOURS", "x"},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tc.key, tc.value)
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
