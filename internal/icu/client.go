// Package icu is the Intervals.icu API client: basic-auth HTTP calls with
// rate limiting, retry and a redis response cache. It returns JSON-decoded
// payload maps; shaping them into text is the formatting package's job.
package icu

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/mvilanova/intervals-mcp-server/internal/config"
	"github.com/mvilanova/intervals-mcp-server/internal/errorsx"
	"github.com/mvilanova/intervals-mcp-server/internal/redisx"
	"github.com/mvilanova/intervals-mcp-server/internal/retry"
)

// basicAuthUser is the fixed username Intervals.icu expects alongside the
// personal API key.
const basicAuthUser = "API_KEY"

// Client calls the Intervals.icu API.
type Client struct {
	client      *http.Client
	apiKey      string
	baseURL     string
	userAgent   string
	rateLimiter *rate.Limiter
	retryConfig retry.RetryConfig
	cache       *redisx.Cache
}

// NewClient creates an Intervals.icu API client. The cache may be nil to
// disable response caching.
func NewClient(cfg *config.Config, cache *redisx.Cache) *Client {
	return &Client{
		client:      &http.Client{Timeout: 30 * time.Second},
		apiKey:      cfg.APIKey,
		baseURL:     strings.TrimRight(cfg.IntervalsBaseURL, "/"),
		userAgent:   cfg.UserAgent,
		rateLimiter: rate.NewLimiter(rate.Every(time.Minute/30), 10), // 30 requests per minute
		retryConfig: retry.ConfigFromAppConfig(cfg),
		cache:       cache,
	}
}

// apiError carries the upstream HTTP status so the retry layer can decide
// whether a call is retryable.
type apiError struct {
	status int
	body   string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("intervals.icu API error: status %d: %s", e.status, e.body)
}

func (e *apiError) StatusCode() int {
	return e.status
}

// get performs a cached GET and decodes the JSON response. Numbers decode
// as json.Number so integer fields keep their exact textual form.
func (c *Client) get(ctx context.Context, path string, params url.Values) (any, error) {
	fullURL := c.baseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	if c.cache != nil {
		key := c.cache.GenerateKey("icu", fullURL)
		var cached json.RawMessage
		if err := c.cache.Get(ctx, key, &cached); err == nil {
			slog.DebugContext(ctx, "Cache hit", "path", path)
			return decodePayload(cached)
		}
	}

	body, err := c.do(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		key := c.cache.GenerateKey("icu", fullURL)
		if err := c.cache.Set(ctx, key, json.RawMessage(body)); err != nil {
			slog.WarnContext(ctx, "Failed to cache response", "path", path, "error", err)
		}
	}

	return decodePayload(body)
}

// send performs a write call with a JSON body and decodes the response.
func (c *Client) send(ctx context.Context, method, path string, payload any) (any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errorsx.Wrap(err, "failed to encode request body")
	}

	respBody, err := c.do(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(respBody)) == 0 {
		return nil, nil
	}
	return decodePayload(respBody)
}

// do issues one HTTP request with rate limiting and retry.
func (c *Client) do(ctx context.Context, method, fullURL string, body []byte) ([]byte, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit exceeded: %w", err)
	}

	respBody, err := retry.RetryWithResult(ctx, c.retryConfig, func() ([]byte, error) {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.SetBasicAuth(basicAuthUser, c.apiKey)
		req.Header.Set("User-Agent", c.userAgent)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to make request: %w", err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode >= 400 {
			return nil, &apiError{status: resp.StatusCode, body: strings.TrimSpace(string(data))}
		}
		return data, nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return respBody, nil
}

// classify maps upstream failures onto the application's sentinel errors.
func classify(err error) error {
	var apiErr *apiError
	if !errors.As(err, &apiErr) {
		return err
	}
	switch apiErr.status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return errorsx.Wrap(errorsx.ErrUnauthorized, apiErr.Error())
	case http.StatusNotFound:
		return errorsx.Wrap(errorsx.ErrNotFound, apiErr.Error())
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return errorsx.Wrap(errorsx.ErrInvalidInput, apiErr.Error())
	default:
		return err
	}
}

// decodePayload decodes a JSON document keeping numbers as json.Number.
func decodePayload(data []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var payload any
	if err := decoder.Decode(&payload); err != nil {
		return nil, errorsx.Wrap(err, "failed to decode response")
	}
	return payload, nil
}
