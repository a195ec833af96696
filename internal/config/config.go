package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the client needs: where the dashboard API
// lives and how to reach Telegram.
type Config struct {
	APIBaseURL    string
	TelegramToken string
	HTTPTimeout   time.Duration
	WebhookAddr   string
	LogLevel      slog.Level
}

// Load reads configuration from the environment, honoring a local
// .env file when present.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:5000"),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		HTTPTimeout:   getEnvDuration("HTTP_TIMEOUT", 15*time.Second),
		WebhookAddr:   getEnv("WEBHOOK_ADDR", ":8080"),
		LogLevel:      parseLevel(getEnv("LOG_LEVEL", "info")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("invalid API_BASE_URL %q: %w", c.APIBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid API_BASE_URL %q: scheme must be http or https", c.APIBaseURL)
	}
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_TOKEN is required")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
