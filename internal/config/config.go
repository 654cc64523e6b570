// Package config handles loading application configuration from environment
// variables. All config is centralized here so no other package reads env
// vars directly. Sensible defaults are provided for development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration. Populated from environment
// variables at startup. Passed to other packages via dependency injection.
type Config struct {
	// Env is the runtime environment: "development" or "production".
	Env string

	// Port is the HTTP listen port (default: 8080).
	Port int

	// BaseURL is the public-facing URL used for CORS origin allowlisting.
	BaseURL string

	// LogLevel controls log verbosity: "debug", "info", "warn", "error".
	LogLevel string

	// DefaultLocale is the locale tag used when a request omits ?locale=.
	DefaultLocale string

	// Redis holds Redis connection settings for the conversion cache.
	Redis RedisConfig

	// Cache holds conversion response cache settings.
	Cache CacheConfig

	// RateLimit holds API rate limiting settings.
	RateLimit RateLimitConfig
}

// RedisConfig holds Redis connection parameters. Redis is optional: with an
// empty URL the service runs without the conversion cache.
type RedisConfig struct {
	// URL is the Redis connection URL (e.g., "redis://localhost:6379").
	URL string
}

// CacheConfig holds conversion response cache settings. Conversions are
// pure functions of (date, type, locale), so cached entries never go stale;
// the TTL only bounds memory usage.
type CacheConfig struct {
	// TTL is how long cached conversion responses live.
	TTL time.Duration
}

// RateLimitConfig holds per-IP rate limiting settings for /api/v1.
type RateLimitConfig struct {
	// MaxRequests is the number of requests allowed per window per IP.
	MaxRequests int

	// Window is the rate limiting window duration.
	Window time.Duration
}

// Load reads configuration from environment variables with sensible
// defaults. Returns an error if a value is present but malformed in a way
// the defaults cannot paper over.
func Load() (*Config, error) {
	cfg := &Config{
		Env:           getEnv("ENV", "development"),
		Port:          getEnvInt("PORT", 8080),
		BaseURL:       getEnv("BASE_URL", "http://localhost:8080"),
		LogLevel:      getEnv("LOG_LEVEL", "debug"),
		DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),

		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", ""),
		},

		Cache: CacheConfig{
			TTL: getEnvDuration("CACHE_TTL", 24*time.Hour),
		},

		RateLimit: RateLimitConfig{
			MaxRequests: getEnvInt("RATE_LIMIT", 120),
			Window:      getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("PORT must be between 1 and 65535, got %d", cfg.Port)
	}
	if cfg.RateLimit.MaxRequests < 1 {
		return nil, fmt.Errorf("RATE_LIMIT must be positive, got %d", cfg.RateLimit.MaxRequests)
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Env)
	return env == "development" || env == "dev"
}

// --- Helper functions for reading environment variables ---

// getEnv reads a string env var or returns the default.
func getEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultVal
}

// getEnvInt reads an integer env var or returns the default.
func getEnvInt(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// getEnvDuration reads a duration env var (e.g., "24h") or returns the default.
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
