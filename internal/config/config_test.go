package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Port == "" || cfg.Server.Host == "" {
		t.Fatalf("expected server defaults, got: %+v", cfg.Server)
	}
	if cfg.MongoDB.Timeout != 10*time.Second {
		t.Fatalf("unexpected mongo timeout: %v", cfg.MongoDB.Timeout)
	}
	if cfg.RateLimit.RPS <= 0 || cfg.RateLimit.Burst <= 0 {
		t.Fatalf("unexpected rate limit defaults: %+v", cfg.RateLimit)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017/testdb")
	t.Setenv("MONGODB_DATABASE", "notekeep_test")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("REDIS_PORT", "6379")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_USE_REDIS", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.MongoDB.URI == "" || cfg.MongoDB.Database != "notekeep_test" {
		t.Fatalf("unexpected mongo config: %+v", cfg.MongoDB)
	}
	if cfg.Redis.Host != "localhost" {
		t.Fatalf("unexpected redis config: %+v", cfg.Redis)
	}
	if !cfg.RateLimit.Enabled || !cfg.RateLimit.UseRedis {
		t.Fatalf("unexpected rate limit config: %+v", cfg.RateLimit)
	}
}
