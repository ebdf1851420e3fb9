package proofpoint

import (
	"context"

	"github.com/proofpoint-tp/client-go/internal/api"
)

// apiPrefix is prepended to every endpoint path.
const apiPrefix = "/api/v1/tric"

// Client is a Proofpoint Threat Protection API client. It authenticates via
// the OAuth2 client-credentials grant, keeps a single access token per
// instance, and refreshes it transparently before requests once the token's
// safety-buffered expiry has passed.
//
// A Client is safe for concurrent use. All operations are synchronous
// request/response round trips; nothing runs in the background and no
// request is ever retried internally.
type Client struct {
	apiClient *api.Client
}

// New creates a client and performs the initial token exchange, so bad
// credentials fail here rather than on the first API call. The exchange is
// bounded by WithAuthTimeout (30 s default).
func New(clientID, clientSecret string, opts ...Option) (*Client, error) {
	if clientID == "" || clientSecret == "" {
		return nil, ErrMissingCredentials
	}

	cfg := &clientConfig{
		baseURL:     DefaultBaseURL,
		tokenURL:    DefaultTokenURL,
		authTimeout: defaultAuthTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:      cfg.baseURL,
		TokenURL:     cfg.tokenURL,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		HTTPClient:   cfg.httpClient,
		Logger:       cfg.logger,
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.authTimeout)
	defer cancel()

	if err := apiClient.Authenticate(ctx); err != nil {
		return nil, wrapError(err)
	}

	return &Client{apiClient: apiClient}, nil
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}
