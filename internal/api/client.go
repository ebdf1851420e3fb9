package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout is the transport timeout applied when the caller does not
// supply an *http.Client of their own.
const DefaultTimeout = 30 * time.Second

// Config holds the settings for an API client.
type Config struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string

	// HTTPClient is optional; a client with DefaultTimeout is used if nil.
	// The same transport is shared by API calls and token exchanges.
	HTTPClient *http.Client

	// Logger is optional; slog.Default() is used if nil.
	Logger *slog.Logger
}

// Client is the HTTP client for the Threat Protection API. It owns the token
// manager, attaches the bearer header to every request, and maps failure
// responses to the typed errors in this package.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	tokens     *tokenManager
}

// NewClient creates an API client. No network traffic happens here; the
// first token exchange runs on Authenticate or the first request.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if cfg.TokenURL == "" {
		return nil, fmt.Errorf("token URL is required")
	}
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("client credentials are required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
		logger:     logger,
		tokens: &tokenManager{
			tokenURL:     cfg.TokenURL,
			clientID:     cfg.ClientID,
			clientSecret: cfg.ClientSecret,
			httpClient:   httpClient,
			logger:       logger,
			now:          time.Now,
		},
	}, nil
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Authenticate forces a token to be obtained now rather than on the first
// request. Used by the public constructor to fail fast on bad credentials.
func (c *Client) Authenticate(ctx context.Context) error {
	_, err := c.tokens.Token(ctx)
	return err
}

// Do executes a request against the API and decodes the JSON response into
// result. A nil result discards the body. An empty 200 body is not an error:
// result is left at its zero value, except a *map[string]any which is set to
// an empty map.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	resp, err := c.send(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	if result == nil {
		return nil
	}

	if len(resp) == 0 {
		if m, ok := result.(*map[string]any); ok {
			*m = map[string]any{}
		}
		return nil
	}

	if err := json.Unmarshal(resp, result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// DoRaw executes a request and returns the response body bytes untouched.
// Used for binary downloads such as message MIME content.
func (c *Client) DoRaw(ctx context.Context, method, path string, query url.Values) ([]byte, error) {
	return c.send(ctx, method, path, query, nil)
}

// send performs a single authenticated round trip and returns the body of a
// successful response. There is no retry on any failure class; backoff is
// the caller's responsibility.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	tok, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	// The bearer header always wins, even over a caller-supplied transport
	// that injects its own Authorization.
	req.Header.Set("Authorization", "Bearer "+tok)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err, URL: fullURL}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err, URL: fullURL}
	}

	if resp.StatusCode >= 400 && resp.StatusCode < 600 {
		c.logger.Debug("request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return nil, errorFromResponse(resp.StatusCode, data)
	}

	return data, nil
}
