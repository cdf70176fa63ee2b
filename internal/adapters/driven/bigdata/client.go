// Package bigdata is the HTTP client for the Bigdata document and search
// API. It implements the driven VolumeAPI and DocumentAPI ports.
package bigdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bigdata-com/bigdata-cli/internal/core/domain"
	"github.com/bigdata-com/bigdata-cli/internal/core/ports/driven"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.bigdata.com"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// APIKeyHeader carries the API key on authenticated requests.
	APIKeyHeader = "x-api-key"
)

// Ensure Client implements the API ports.
var (
	_ driven.VolumeAPI   = (*Client)(nil)
	_ driven.DocumentAPI = (*Client)(nil)
)

// Config holds configuration for the API client. The API key is required;
// everything else has working defaults.
type Config struct {
	// APIKey authenticates requests (required).
	APIKey string

	// BaseURL overrides the API endpoint. Useful for testing.
	BaseURL string

	// Timeout is the per-request timeout (default: 30s).
	Timeout time.Duration

	// HTTPClient overrides the underlying client. Useful for testing.
	HTTPClient *http.Client
}

// Client talks to the Bigdata API.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	limiter *RateLimiter
}

// NewClient creates a new API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, domain.ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		http:    httpClient,
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		limiter: NewRateLimiter(),
	}, nil
}

// do sends an authenticated request, applying rate limiting, and returns
// the response body for 2xx responses. Other statuses become errors.
func (c *Client) do(ctx context.Context, req *http.Request) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req.Header.Set(APIKeyHeader, c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if err := c.limiter.CheckResponse(resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStatusError(req.Method, req.URL.Path, resp.StatusCode, body)
	}

	return body, nil
}
