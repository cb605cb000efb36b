package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mvilanova/intervals-mcp-server/internal/validation"
)

// Config holds all configuration parameters. It is constructed once in main
// and passed by parameter to every consumer; there is no global instance.
type Config struct {
	APIKey           string
	AthleteID        string
	IntervalsBaseURL string
	UserAgent        string
	RedisAddr        string
	CacheTTLHours    int
	Mode             string
	Port             string
	RetryMaxAttempts int
	RetryBaseDelayMs int
	RetryMaxDelayMs  int
}

// Load loads configuration from environment variables and an optional .env
// file. The athlete ID is validated when non-empty.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	config := &Config{
		APIKey:           getEnv("API_KEY", ""),
		AthleteID:        getEnv("ATHLETE_ID", ""),
		IntervalsBaseURL: getEnv("INTERVALS_API_BASE_URL", "https://intervals.icu/api/v1"),
		UserAgent:        "intervalsicu-mcp-server/1.0",
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		CacheTTLHours:    getEnvInt("CACHE_TTL_HOURS", 1),
		Mode:             getEnv("MODE", "http"),
		Port:             getEnv("PORT", "8000"),
		RetryMaxAttempts: getEnvInt("RETRY_MAX_ATTEMPTS", 3),
		RetryBaseDelayMs: getEnvInt("RETRY_BASE_DELAY_MS", 500),
		RetryMaxDelayMs:  getEnvInt("RETRY_MAX_DELAY_MS", 5000),
	}

	if err := validation.ValidateAthleteID(config.AthleteID); err != nil {
		return nil, fmt.Errorf("invalid ATHLETE_ID: %w", err)
	}

	if config.APIKey == "" {
		log.Printf("Warning: API_KEY is required to reach the Intervals.icu API")
	}

	return config, nil
}

// getEnv gets environment variable with fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

// getEnvInt gets environment variable as integer with fallback
func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
		log.Printf("Warning: invalid integer value for %s: %s, using default: %d", key, value, fallback)
	}
	return fallback
}
