package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is assembled from environment variables. The process must not
// come up without the store endpoint and key, everything else has a
// sensible default.
type Config struct {
	Host string
	Port int

	// hosted store (PostgREST API)
	SupabaseURL     string
	SupabaseAnonKey string

	// landing page cache
	CacheTTL time.Duration

	// sessions
	SessionSecret string
	SessionTTL    time.Duration
	// explicit policy: whether /lp routes sit behind the session gate
	RequireAuthForContent       bool
	LoginRateLimitAllowedPerMin int

	RedisHost     string
	RedisPort     string
	RedisPassword string

	Environment string

	// logging
	LogLevel    string
	LogsPath    string
	LogToStdout bool

	PrometheusMetricsHost string
	PrometheusMetricsPort string
}

func Load() (*Config, error) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseAnonKey := os.Getenv("SUPABASE_ANON_KEY")
	if supabaseURL == "" || supabaseAnonKey == "" {
		return nil, errors.New("SUPABASE_URL and SUPABASE_ANON_KEY must be set")
	}

	port, err := envIntOrDefault("PORT", 3000)
	if err != nil {
		return nil, err
	}
	cacheDurationSeconds, err := envIntOrDefault("CACHE_DURATION", 300)
	if err != nil {
		return nil, err
	}
	sessionTTLHours, err := envIntOrDefault("SESSION_TTL_HOURS", 24)
	if err != nil {
		return nil, err
	}
	loginRateLimit, err := envIntOrDefault("LOGIN_RATE_LIMIT_PER_MIN", 15)
	if err != nil {
		return nil, err
	}

	return &Config{
		Host: os.Getenv("HOST"),
		Port: port,

		SupabaseURL:     supabaseURL,
		SupabaseAnonKey: supabaseAnonKey,

		CacheTTL: time.Duration(cacheDurationSeconds) * time.Second,

		SessionSecret:               os.Getenv("SESSION_SECRET"),
		SessionTTL:                  time.Duration(sessionTTLHours) * time.Hour,
		RequireAuthForContent:       envOrDefault("REQUIRE_AUTH", "true") == "true",
		LoginRateLimitAllowedPerMin: loginRateLimit,

		RedisHost:     envOrDefault("REDIS_HOST", "localhost"),
		RedisPort:     envOrDefault("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		Environment: envOrDefault("ENVIRONMENT", "development"),

		LogLevel:    envOrDefault("LOG_LEVEL", "trace"),
		LogsPath:    os.Getenv("LOGS_PATH"),
		LogToStdout: envOrDefault("LOG_TO_STDOUT", "true") == "true",

		PrometheusMetricsHost: envOrDefault("METRICS_HOST", "localhost"),
		PrometheusMetricsPort: envOrDefault("METRICS_PORT", "2112"),
	}, nil
}

// IsProduction affects the cookie security attributes.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func envOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func envIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return intValue, nil
}
