package proofpoint

import (
	"errors"
	"fmt"

	"github.com/proofpoint-tp/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingCredentials is returned when no client ID or secret is provided.
	ErrMissingCredentials = errors.New("client ID and client secret are required")

	// ErrUnauthorized is returned when authentication fails, either on an
	// API call (401/403) or during a token exchange.
	ErrUnauthorized = errors.New("authentication failed")

	// ErrBadRequest is returned when the API rejects a request payload (400).
	ErrBadRequest = errors.New("bad request")

	// ErrRateLimited is returned when the API rate limit is exceeded (429).
	ErrRateLimited = errors.New("rate limit exceeded")
)

// APIError is the generic error kind for Threat Protection API failures.
// StatusCode is 0 for transport-level failures (connection refused, timeout,
// DNS), in which case Err holds the underlying transport error. Body carries
// the raw response text for diagnostics.
type APIError struct {
	StatusCode int
	Body       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("request failed: %s", e.Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Unwrap returns the underlying transport error, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 400:
		return target == ErrBadRequest
	case 401, 403:
		return target == ErrUnauthorized
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// AuthError is returned for 401/403 responses and for any failed token
// exchange. A token endpoint failure carries that response's status — which
// need not be 401/403 — so AuthError always matches ErrUnauthorized.
type AuthError struct {
	APIError
}

// Is implements errors.Is for sentinel error matching.
func (e *AuthError) Is(target error) bool {
	return target == ErrUnauthorized
}

// Unwrap exposes the embedded APIError so errors.As can match either type.
func (e *AuthError) Unwrap() error {
	return &e.APIError
}

// BadRequestError is returned for 400 responses.
type BadRequestError struct {
	APIError
}

// Is implements errors.Is for sentinel error matching.
func (e *BadRequestError) Is(target error) bool {
	return target == ErrBadRequest
}

// Unwrap exposes the embedded APIError so errors.As can match either type.
func (e *BadRequestError) Unwrap() error {
	return &e.APIError
}

// RateLimitError is returned for 429 responses. The client never retries on
// its own; the caller decides how to back off.
type RateLimitError struct {
	APIError
}

// Is implements errors.Is for sentinel error matching.
func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

// Unwrap exposes the embedded APIError so errors.As can match either type.
func (e *RateLimitError) Unwrap() error {
	return &e.APIError
}

// wrapError converts internal API errors to public errors so that
// errors.Is/errors.As checks work against the exported taxonomy.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var authErr *api.AuthError
	if errors.As(err, &authErr) {
		return &AuthError{APIError{
			StatusCode: authErr.StatusCode,
			Body:       authErr.Body,
			Message:    authErr.Message,
		}}
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		base := APIError{
			StatusCode: apiErr.StatusCode,
			Body:       apiErr.Body,
			Message:    apiErr.Message,
		}
		switch apiErr.StatusCode {
		case 400:
			return &BadRequestError{base}
		case 429:
			return &RateLimitError{base}
		default:
			return &base
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &APIError{
			Message: netErr.Err.Error(),
			Err:     netErr.Err,
		}
	}

	return err
}
