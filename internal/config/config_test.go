package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("API_BASE_URL", "")
	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("WEBHOOK_ADDR", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:5000" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("HTTPTimeout = %s", cfg.HTTPTimeout)
	}
	if cfg.WebhookAddr != ":8080" {
		t.Errorf("WebhookAddr = %q", cfg.WebhookAddr)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("API_BASE_URL", "https://finance.example.com")
	t.Setenv("HTTP_TIMEOUT", "30s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "https://finance.example.com" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout = %s", cfg.HTTPTimeout)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without TELEGRAM_TOKEN")
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		APIBaseURL:    "http://localhost:5000",
		TelegramToken: "123:abc",
		HTTPTimeout:   15 * time.Second,
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		wantOK bool
	}{
		{"valid", func(c *Config) {}, true},
		{"bad scheme", func(c *Config) { c.APIBaseURL = "ftp://example.com" }, false},
		{"no scheme", func(c *Config) { c.APIBaseURL = "localhost:5000" }, false},
		{"zero timeout", func(c *Config) { c.HTTPTimeout = 0 }, false},
		{"empty token", func(c *Config) { c.TelegramToken = "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantOK && err != nil {
				t.Errorf("Validate: %v", err)
			}
			if !tt.wantOK && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestGetEnvDurationBadValue(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "soon")
	if got := getEnvDuration("HTTP_TIMEOUT", 15*time.Second); got != 15*time.Second {
		t.Errorf("unparseable duration should fall back, got %s", got)
	}
}
