package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_ConfigYAML(t *testing.T) {
	path := filepath.Join("..", "..", "config.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Database.Host == "" {
		t.Fatalf("expected database.host to be set")
	}
	if cfg.RabbitMQ.Port == 0 {
		t.Fatalf("expected rabbitmq.port to be set")
	}
	if cfg.Server.Port == 0 {
		t.Fatalf("expected server.port to be set")
	}
	if cfg.Auth.AdminEmail == "" {
		t.Fatalf("expected auth.admin_email to be set")
	}
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("DB_PASSWORD", "db-from-env")

	path := filepath.Join("..", "..", "config.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Auth.JWTSecret != "from-env" {
		t.Errorf("JWTSecret = %q, want env override", cfg.Auth.JWTSecret)
	}
	if cfg.Database.Password != "db-from-env" {
		t.Errorf("Database.Password = %q, want env override", cfg.Database.Password)
	}
}

func TestTokenTTLHoursOrDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.TokenTTLHoursOrDefault(); got != 24 {
		t.Errorf("TokenTTLHoursOrDefault() = %d, want 24", got)
	}
	cfg.Auth.TokenTTLHours = 6
	if got := cfg.TokenTTLHoursOrDefault(); got != 6 {
		t.Errorf("TokenTTLHoursOrDefault() = %d, want 6", got)
	}
}
