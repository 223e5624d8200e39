// Package config loads application settings from the environment, with
// optional .env support for local development.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/devika/mathquest/internal/logging"
)

// Config holds the application-level settings. LLM provider settings
// live in the llm package's own ConfigFromEnv.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string

	// AllowOrigins are the CORS origins permitted to call the API.
	AllowOrigins []string

	// Environment is "development" or "production".
	Environment string

	// RedisAddr enables the Redis session store when set; otherwise
	// sessions live in process memory.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// SessionTTL is how long idle sessions are kept.
	SessionTTL time.Duration

	Logging logging.Config
}

// Default returns the development defaults.
func Default() Config {
	return Config{
		Addr:         ":8080",
		AllowOrigins: []string{"http://localhost:5173"},
		Environment:  "development",
		SessionTTL:   24 * time.Hour,
		Logging:      logging.DefaultConfig(),
	}
}

// Load reads .env (if present) and the MATHQUEST_* environment
// variables over the defaults.
func Load() Config {
	_ = godotenv.Load()

	cfg := Default()

	if v := os.Getenv("MATHQUEST_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("MATHQUEST_ALLOW_ORIGINS"); v != "" {
		cfg.AllowOrigins = splitList(v)
	}
	if v := os.Getenv("MATHQUEST_ENV"); v != "" {
		cfg.Environment = v
	}

	if v := os.Getenv("MATHQUEST_REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	cfg.RedisPassword = os.Getenv("MATHQUEST_REDIS_PASSWORD")
	if v := os.Getenv("MATHQUEST_REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RedisDB = n
		}
	}

	if v := os.Getenv("MATHQUEST_SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.SessionTTL = d
		}
	}

	if v := os.Getenv("MATHQUEST_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	cfg.Logging.Dir = os.Getenv("MATHQUEST_LOG_DIR")

	return cfg
}

// Production reports whether the config targets a production deploy.
func (c Config) Production() bool {
	return c.Environment == "production"
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
