package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.ServerPort != 8080 {
		t.Errorf("unexpected port: %d", cfg.ServerPort)
	}
	if cfg.Database.Host != "localhost" || cfg.Database.Port != 5432 {
		t.Errorf("unexpected database defaults: %+v", cfg.Database)
	}
	if cfg.Auth.TokenTTL != time.Hour {
		t.Errorf("unexpected token ttl: %v", cfg.Auth.TokenTTL)
	}
	if cfg.Events.Backend != "" {
		t.Errorf("events should default to disabled, got %q", cfg.Events.Backend)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("DB_USE_SSL", "true")
	t.Setenv("EVENTS_BACKEND", "rabbitmq")

	cfg := LoadConfig()

	if cfg.ServerPort != 9090 {
		t.Errorf("unexpected port: %d", cfg.ServerPort)
	}
	if cfg.Auth.TokenTTL != 30*time.Minute {
		t.Errorf("unexpected token ttl: %v", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.JWTSecret != "s" {
		t.Errorf("unexpected secret: %q", cfg.Auth.JWTSecret)
	}
	if !cfg.Database.UseSSL {
		t.Error("expected ssl enabled")
	}
	if cfg.Events.Backend != "rabbitmq" {
		t.Errorf("unexpected events backend: %q", cfg.Events.Backend)
	}
}
