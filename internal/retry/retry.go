package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// RetryConfig holds configuration for retry behavior
type RetryConfig struct {
	MaxAttempts int           // Maximum number of retry attempts (default: 3)
	BaseDelay   time.Duration // Base delay between retries (default: 500ms)
	MaxDelay    time.Duration // Maximum delay between retries (default: 5s)
}

// DefaultConfig returns the default retry configuration
func DefaultConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   500 * time.Millisecond,
		MaxDelay:    5 * time.Second,
	}
}

// RetryWithResult executes a function that returns a result with retry logic
func RetryWithResult[T any](ctx context.Context, config RetryConfig, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt <= config.MaxAttempts; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}

		lastErr = err

		if !isRetryableError(err) {
			slog.WarnContext(ctx, "Non-retryable error encountered, not retrying",
				"attempt", attempt+1,
				"error", err)
			return zero, err
		}

		if attempt == config.MaxAttempts {
			slog.WarnContext(ctx, "Max retry attempts reached, giving up",
				"attempts", config.MaxAttempts+1,
				"error", err)
			return zero, fmt.Errorf("max retry attempts (%d) reached, last error: %w", config.MaxAttempts+1, err)
		}

		delay := calculateDelay(config, attempt)
		slog.WarnContext(ctx, "Retryable error encountered, will retry",
			"attempt", attempt+1,
			"max_attempts", config.MaxAttempts+1,
			"delay", delay,
			"error", err)

		select {
		case <-ctx.Done():
			return zero, fmt.Errorf("retry cancelled: %w", ctx.Err())
		case <-time.After(delay):
		}
	}

	return zero, lastErr
}

// isRetryableError determines if an error should be retried
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// HTTP errors carrying a status code
	var httpErr interface {
		StatusCode() int
	}
	if errors.As(err, &httpErr) {
		statusCode := httpErr.StatusCode()
		// Retry on server errors (5xx) and rate limits
		return statusCode >= 500 || statusCode == http.StatusTooManyRequests
	}

	// Network/timeout errors
	return errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		isNetworkError(err)
}

// isNetworkError checks if error is a network-related error
func isNetworkError(err error) bool {
	errorStr := strings.ToLower(err.Error())
	networkKeywords := []string{
		"connection",
		"timeout",
		"network",
		"dial",
		"eof",
		"reset",
		"refused",
		"retryable",
	}

	for _, keyword := range networkKeywords {
		if strings.Contains(errorStr, keyword) {
			return true
		}
	}
	return false
}

// calculateDelay computes the delay for exponential backoff
func calculateDelay(config RetryConfig, attempt int) time.Duration {
	// Simple exponential backoff: base * 2^attempt
	delay := config.BaseDelay * time.Duration(1<<uint(attempt))

	if delay > config.MaxDelay {
		delay = config.MaxDelay
	}

	return delay
}
