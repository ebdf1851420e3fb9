package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	// defaultExpiresIn is assumed when the token endpoint omits expires_in.
	defaultExpiresIn = 3600

	// expirySafetyBuffer is subtracted from the server-declared token
	// lifetime so the token is replaced before it actually expires. Not
	// clamped: a lifetime shorter than the buffer yields an already-past
	// expiry, forcing a refresh on the next call.
	expirySafetyBuffer = 300 * time.Second
)

// tokenResponse is the token endpoint's JSON response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// tokenManager owns the OAuth2 client-credentials exchange and the current
// access token. It starts with no token and refreshes synchronously inside
// Token whenever the token is absent or expired; nothing is scheduled in the
// background. The mutex serializes refreshes so that concurrent callers
// never run two exchanges at once or read a token mid-replacement.
type tokenManager struct {
	tokenURL     string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	logger       *slog.Logger

	// now is the clock; tests substitute it to drive expiry.
	now func() time.Time

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

// Token returns a currently valid access token, refreshing first if none is
// held or the held one has passed its expiry instant.
func (m *tokenManager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.accessToken == "" || !m.now().Before(m.expiresAt) {
		if err := m.refresh(ctx); err != nil {
			return "", err
		}
	}

	return m.accessToken, nil
}

// refresh performs the client-credentials exchange. The caller must hold mu.
// On failure the held token is left untouched, so the next Token call
// retries the exchange.
func (m *tokenManager) refresh(ctx context.Context) error {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {m.clientID},
		"client_secret": {m.clientSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return &NetworkError{Err: err, URL: m.tokenURL}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		m.logger.Warn("token request failed", slog.String("error", err.Error()))
		return &NetworkError{Err: err, URL: m.tokenURL}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err, URL: m.tokenURL}
	}

	if resp.StatusCode != http.StatusOK {
		m.logger.Warn("token endpoint rejected credentials",
			slog.Int("status", resp.StatusCode),
		)
		return &AuthError{APIError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Message:    "failed to obtain access token",
		}}
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil || tok.AccessToken == "" {
		return &AuthError{APIError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Message:    "token endpoint returned an unusable response",
		}}
	}

	expiresIn := tok.ExpiresIn
	if expiresIn == 0 {
		expiresIn = defaultExpiresIn
	}

	m.accessToken = tok.AccessToken
	m.expiresAt = m.now().Add(time.Duration(expiresIn)*time.Second - expirySafetyBuffer)

	m.logger.Debug("access token refreshed",
		slog.Time("expires_at", m.expiresAt),
	)

	return nil
}
