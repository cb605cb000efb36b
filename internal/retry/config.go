package retry

import (
	"time"

	"github.com/mvilanova/intervals-mcp-server/internal/config"
)

// ConfigFromAppConfig builds a RetryConfig from application configuration
func ConfigFromAppConfig(cfg *config.Config) RetryConfig {
	retryConfig := DefaultConfig()

	if cfg.RetryMaxAttempts > 0 {
		retryConfig.MaxAttempts = cfg.RetryMaxAttempts
	}
	if cfg.RetryBaseDelayMs > 0 {
		retryConfig.BaseDelay = time.Duration(cfg.RetryBaseDelayMs) * time.Millisecond
	}
	if cfg.RetryMaxDelayMs > 0 {
		retryConfig.MaxDelay = time.Duration(cfg.RetryMaxDelayMs) * time.Millisecond
	}

	return retryConfig
}
