// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, Load returns an error and
// main exits.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration for the API service.
type Config struct {
	Port  string
	Debug bool

	DatabaseDSN string
	RedisAddr   string
	RedisDB     int

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	CORSOrigins []string

	RateLimitPerMinute int

	// Offers whose publish date is older than this are swept to expired.
	OfferRetentionDays int
	// How often the maintenance cron fires.
	SweepIntervalHours int
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_DSN is required")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	cfg := &Config{
		Port:               getenvDefault("PORT", "8080"),
		Debug:              os.Getenv("DEBUG") == "true",
		DatabaseDSN:        dsn,
		RedisAddr:          getenvDefault("REDIS_ADDR", "localhost:6379"),
		JWTSecret:          secret,
		AccessTokenTTL:     30 * time.Minute,
		RefreshTokenTTL:    7 * 24 * time.Hour,
		RateLimitPerMinute: 60,
		OfferRetentionDays: 30,
		SweepIntervalHours: 6,
	}

	if s := os.Getenv("REDIS_DB"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("REDIS_DB must be an integer, got %q", s)
		}
		cfg.RedisDB = v
	}

	if s := os.Getenv("ACCESS_TOKEN_MINUTES"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("ACCESS_TOKEN_MINUTES must be a positive integer, got %q", s)
		}
		cfg.AccessTokenTTL = time.Duration(v) * time.Minute
	}

	if s := os.Getenv("REFRESH_TOKEN_DAYS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("REFRESH_TOKEN_DAYS must be a positive integer, got %q", s)
		}
		cfg.RefreshTokenTTL = time.Duration(v) * 24 * time.Hour
	}

	if s := os.Getenv("RATE_LIMIT_PER_MINUTE"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be a positive integer, got %q", s)
		}
		cfg.RateLimitPerMinute = v
	}

	if s := os.Getenv("OFFER_RETENTION_DAYS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("OFFER_RETENTION_DAYS must be a positive integer, got %q", s)
		}
		cfg.OfferRetentionDays = v
	}

	if s := os.Getenv("SWEEP_INTERVAL_HOURS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("SWEEP_INTERVAL_HOURS must be a positive integer, got %q", s)
		}
		cfg.SweepIntervalHours = v
	}

	if s := os.Getenv("CORS_ORIGINS"); s != "" {
		for _, o := range strings.Split(s, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
