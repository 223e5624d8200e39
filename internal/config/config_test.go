package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Errorf("addr = %q, want :8080", cfg.Addr)
	}
	if cfg.Production() {
		t.Error("default environment should not be production")
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("session ttl = %v, want 24h", cfg.SessionTTL)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MATHQUEST_ADDR", ":9999")
	t.Setenv("MATHQUEST_ENV", "production")
	t.Setenv("MATHQUEST_ALLOW_ORIGINS", "https://mathquest.example, https://staging.example")
	t.Setenv("MATHQUEST_REDIS_ADDR", "localhost:6379")
	t.Setenv("MATHQUEST_REDIS_DB", "3")
	t.Setenv("MATHQUEST_SESSION_TTL", "30m")
	t.Setenv("MATHQUEST_LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.Addr != ":9999" {
		t.Errorf("addr = %q", cfg.Addr)
	}
	if !cfg.Production() {
		t.Error("want production")
	}
	if len(cfg.AllowOrigins) != 2 || cfg.AllowOrigins[1] != "https://staging.example" {
		t.Errorf("origins = %v", cfg.AllowOrigins)
	}
	if cfg.RedisAddr != "localhost:6379" || cfg.RedisDB != 3 {
		t.Errorf("redis = %q db %d", cfg.RedisAddr, cfg.RedisDB)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("ttl = %v", cfg.SessionTTL)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q", cfg.Logging.Level)
	}
}

func TestBadDurationIgnored(t *testing.T) {
	t.Setenv("MATHQUEST_SESSION_TTL", "not-a-duration")
	cfg := Load()
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("ttl = %v, want default on parse failure", cfg.SessionTTL)
	}
}
