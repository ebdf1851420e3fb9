package api

import (
	"encoding/json"
	"fmt"
)

// APIError represents an HTTP error response from the Threat Protection API.
type APIError struct {
	StatusCode int
	Body       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// AuthError represents an authentication failure: a 401/403 from the API,
// or any non-200 response from the token endpoint (whatever its status).
type AuthError struct {
	APIError
}

// Unwrap exposes the embedded APIError so errors.As can match either type.
func (e *AuthError) Unwrap() error {
	return &e.APIError
}

// NetworkError represents a transport-level failure where no HTTP
// response was received.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// errorFromResponse maps a 4xx/5xx response to a typed error. The message
// comes from the errorMessage field of a JSON body when one is present;
// otherwise the raw body text is used.
func errorFromResponse(statusCode int, body []byte) error {
	message := string(body)

	var errResp struct {
		ErrorMessage string `json:"errorMessage"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.ErrorMessage != "" {
		message = errResp.ErrorMessage
	}

	apiErr := APIError{
		StatusCode: statusCode,
		Body:       string(body),
		Message:    message,
	}

	switch statusCode {
	case 401, 403:
		return &AuthError{APIError: apiErr}
	default:
		return &apiErr
	}
}
