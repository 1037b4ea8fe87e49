package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.ServerPort == "" {
		t.Fatalf("expected default server port")
	}
	if cfg.ProfilesDir == "" {
		t.Fatalf("expected default profiles dir")
	}
	if cfg.CacheTTL != time.Hour {
		t.Fatalf("expected default cache ttl, got %v", cfg.CacheTTL)
	}
	if cfg.PostgresURL != "" || cfg.RedisAddr != "" {
		t.Fatalf("expected catalog-only defaults")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", ":9000")
	t.Setenv("POSTGRES_URL", "postgres://example")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PROFILES_DIR", "/tmp/profiles")
	t.Setenv("ROUTES_FILE", "routes.json")
	t.Setenv("CACHE_TTL", "15m")

	cfg := Load()
	if cfg.ServerPort != ":9000" {
		t.Fatalf("expected override port")
	}
	if cfg.PostgresURL != "postgres://example" {
		t.Fatalf("expected override postgres")
	}
	if cfg.RedisAddr != "redis:6379" || cfg.RedisDB != 2 {
		t.Fatalf("expected override redis")
	}
	if cfg.JWTSecret != "secret" {
		t.Fatalf("expected override secret")
	}
	if cfg.ProfilesDir != "/tmp/profiles" || cfg.RoutesFile != "routes.json" {
		t.Fatalf("expected override paths")
	}
	if cfg.CacheTTL != 15*time.Minute {
		t.Fatalf("expected override ttl, got %v", cfg.CacheTTL)
	}
}
