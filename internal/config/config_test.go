package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"API_KEY", "ATHLETE_ID", "INTERVALS_API_BASE_URL", "REDIS_ADDR",
		"CACHE_TTL_HOURS", "MODE", "PORT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.IntervalsBaseURL != "https://intervals.icu/api/v1" {
		t.Errorf("IntervalsBaseURL = %q", cfg.IntervalsBaseURL)
	}
	if cfg.Mode != "http" {
		t.Errorf("Mode = %q, want http", cfg.Mode)
	}
	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Port)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %q", cfg.RedisAddr)
	}
	if cfg.CacheTTLHours != 1 {
		t.Errorf("CacheTTLHours = %d, want 1", cfg.CacheTTLHours)
	}
	if cfg.UserAgent != "intervalsicu-mcp-server/1.0" {
		t.Errorf("UserAgent = %q", cfg.UserAgent)
	}
	if cfg.RetryMaxAttempts != 3 {
		t.Errorf("RetryMaxAttempts = %d, want 3", cfg.RetryMaxAttempts)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("API_KEY", "secret123")
	t.Setenv("ATHLETE_ID", "i654321")
	t.Setenv("MODE", "stdio")
	t.Setenv("CACHE_TTL_HOURS", "12")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.APIKey != "secret123" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.AthleteID != "i654321" {
		t.Errorf("AthleteID = %q", cfg.AthleteID)
	}
	if cfg.Mode != "stdio" {
		t.Errorf("Mode = %q, want stdio", cfg.Mode)
	}
	if cfg.CacheTTLHours != 12 {
		t.Errorf("CacheTTLHours = %d, want 12", cfg.CacheTTLHours)
	}
}

func TestLoadRejectsBadAthleteID(t *testing.T) {
	t.Setenv("ATHLETE_ID", "not-an-id")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should reject a malformed ATHLETE_ID")
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT_VALUE", "42")
	if got := getEnvInt("TEST_INT_VALUE", 7); got != 42 {
		t.Errorf("getEnvInt = %d, want 42", got)
	}

	t.Setenv("TEST_INT_VALUE", "not a number")
	if got := getEnvInt("TEST_INT_VALUE", 7); got != 7 {
		t.Errorf("getEnvInt with garbage = %d, want fallback 7", got)
	}

	if got := getEnvInt("TEST_INT_UNSET", 7); got != 7 {
		t.Errorf("getEnvInt unset = %d, want fallback 7", got)
	}
}

func TestGetEnvTrimsWhitespace(t *testing.T) {
	t.Setenv("TEST_STR_VALUE", "  value  ")
	if got := getEnv("TEST_STR_VALUE", ""); got != "value" {
		t.Errorf("getEnv = %q, want trimmed value", got)
	}
}
