package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDevelopmentDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("EMAIL_PROVIDER", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.Development() {
		t.Error("expected development defaults")
	}
	if cfg.Port != "8080" {
		t.Errorf("port = %q", cfg.Port)
	}
	if cfg.EmailProvider != "log" {
		t.Errorf("email provider = %q, development defaults to log", cfg.EmailProvider)
	}
	if cfg.NotifyTimeout != 10*time.Second {
		t.Errorf("notify timeout = %v", cfg.NotifyTimeout)
	}
	if cfg.RateLimitPerMin != 30 {
		t.Errorf("rate limit = %d", cfg.RateLimitPerMin)
	}
	if len(cfg.AllowedOrigins) == 0 {
		t.Error("expected default CORS origins")
	}
}

func TestLoadConfigRequiresDatabaseOutsideDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error without DATABASE_URL in production")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost/goodheart")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.EmailProvider != "smtp" {
		t.Errorf("email provider = %q, production defaults to smtp", cfg.EmailProvider)
	}
}

func TestLoadConfigRejectsUnknownProvider(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("EMAIL_PROVIDER", "carrier-pigeon")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for unknown EMAIL_PROVIDER")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "5")
	t.Setenv("NOTIFY_TIMEOUT_SECONDS", "3")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("port = %q", cfg.Port)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[0] != "https://app.example.com" {
		t.Errorf("origins = %v", cfg.AllowedOrigins)
	}
	if cfg.RateLimitPerMin != 5 {
		t.Errorf("rate limit = %d", cfg.RateLimitPerMin)
	}
	if cfg.NotifyTimeout != 3*time.Second {
		t.Errorf("notify timeout = %v", cfg.NotifyTimeout)
	}
}
