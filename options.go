package proofpoint

import (
	"log/slog"
	"net/http"
	"time"
)

// Default endpoints for the Proofpoint Threat Protection platform.
const (
	DefaultBaseURL  = "https://threatprotection-api.proofpoint.com"
	DefaultTokenURL = "https://auth.proofpoint.com/v1/token"
)

const defaultAuthTimeout = 30 * time.Second

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL     string
	tokenURL    string
	httpClient  *http.Client
	logger      *slog.Logger
	authTimeout time.Duration
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithTokenURL sets the OAuth2 token endpoint URL.
func WithTokenURL(url string) Option {
	return func(c *clientConfig) {
		c.tokenURL = url
	}
}

// WithHTTPClient sets a custom HTTP client, shared by API calls and token
// exchanges. Transport-level timeouts come from this client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithAuthTimeout bounds the initial token exchange performed by New.
// Default: 30 seconds.
func WithAuthTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.authTimeout = timeout
	}
}
