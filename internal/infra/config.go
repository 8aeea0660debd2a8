package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string

	AllowedOrigins []string
	GeoIPDBPath    string

	// Notification transport. EmailProvider selects between the SMTP and the
	// transactional-API implementation; "log" writes messages to the logger
	// only and exists for development.
	EmailProvider   string
	EmailFrom       string
	SMTPHost        string
	SMTPPort        int
	SMTPUser        string
	SMTPPass        string
	EmailAPIBaseURL string
	EmailAPIKey     string
	NotifyTimeout   time.Duration

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	RateLimitPerMin  int
}

// Development reports whether the service runs with development defaults
// (in-memory stores allowed, log mailer, debug logging).
func (c *Config) Development() bool {
	return c.AppEnv == "development"
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. Outside development a DATABASE_URL is required; in
// development an empty value selects the in-memory stores.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		AllowedOrigins:   splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		GeoIPDBPath:      os.Getenv("GEOIP_DB_PATH"),
		EmailFrom:        os.Getenv("EMAIL_FROM"),
		SMTPHost:         os.Getenv("SMTP_HOST"),
		SMTPPort:         getEnvInt("SMTP_PORT", 587),
		SMTPUser:         os.Getenv("SMTP_USER"),
		SMTPPass:         os.Getenv("SMTP_PASS"),
		EmailAPIBaseURL:  getEnv("EMAIL_API_BASE_URL", ""),
		EmailAPIKey:      os.Getenv("EMAIL_API_KEY"),
		NotifyTimeout:    time.Second * time.Duration(getEnvInt("NOTIFY_TIMEOUT_SECONDS", 10)),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:  getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
	}

	defaultProvider := "smtp"
	if cfg.Development() {
		defaultProvider = "log"
	}
	cfg.EmailProvider = strings.ToLower(getEnv("EMAIL_PROVIDER", defaultProvider))

	switch cfg.EmailProvider {
	case "smtp", "api", "log":
	default:
		return nil, fmt.Errorf("EMAIL_PROVIDER must be smtp, api or log, got %q", cfg.EmailProvider)
	}

	if cfg.DatabaseURL == "" && !cfg.Development() {
		return nil, fmt.Errorf("DATABASE_URL is required when APP_ENV=%s", cfg.AppEnv)
	}

	return cfg, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
