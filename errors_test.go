package proofpoint

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proofpoint-tp/client-go/internal/api"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrMissingCredentials", ErrMissingCredentials},
		{"ErrUnauthorized", ErrUnauthorized},
		{"ErrBadRequest", ErrBadRequest},
		{"ErrRateLimited", ErrRateLimited},
	}

	for _, s := range sentinels {
		t.Run(s.name, func(t *testing.T) {
			require.NotNil(t, s.err)
			assert.NotEmpty(t, s.err.Error())
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "with message",
			err:  &APIError{StatusCode: 500, Message: "internal error"},
			want: "API error 500: internal error",
		},
		{
			name: "without message",
			err:  &APIError{StatusCode: 502},
			want: "API error 502",
		},
		{
			name: "transport failure",
			err:  &APIError{Message: "connection refused", Err: fmt.Errorf("connection refused")},
			want: "request failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorKinds_SentinelMatching(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		target  error
		matches bool
	}{
		{"BadRequestError matches ErrBadRequest", &BadRequestError{APIError{StatusCode: 400}}, ErrBadRequest, true},
		{"BadRequestError does not match ErrUnauthorized", &BadRequestError{APIError{StatusCode: 400}}, ErrUnauthorized, false},
		{"AuthError matches ErrUnauthorized", &AuthError{APIError{StatusCode: 401}}, ErrUnauthorized, true},
		{"AuthError with token endpoint status still matches", &AuthError{APIError{StatusCode: 500}}, ErrUnauthorized, true},
		{"RateLimitError matches ErrRateLimited", &RateLimitError{APIError{StatusCode: 429}}, ErrRateLimited, true},
		{"generic 401 matches ErrUnauthorized", &APIError{StatusCode: 401}, ErrUnauthorized, true},
		{"generic 403 matches ErrUnauthorized", &APIError{StatusCode: 403}, ErrUnauthorized, true},
		{"generic 500 matches nothing", &APIError{StatusCode: 500}, ErrUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, errors.Is(tt.err, tt.target))
		})
	}
}

func TestErrorKinds_ExposeBase(t *testing.T) {
	kinds := []struct {
		name string
		err  error
	}{
		{"AuthError", &AuthError{APIError{StatusCode: 401, Body: "b", Message: "m"}}},
		{"BadRequestError", &BadRequestError{APIError{StatusCode: 400, Body: "b", Message: "m"}}},
		{"RateLimitError", &RateLimitError{APIError{StatusCode: 429, Body: "b", Message: "m"}}},
	}

	for _, k := range kinds {
		t.Run(k.name, func(t *testing.T) {
			var apiErr *APIError
			require.ErrorAs(t, k.err, &apiErr)
			assert.Equal(t, "b", apiErr.Body)
			assert.Equal(t, "m", apiErr.Message)
		})
	}
}

func TestWrapError(t *testing.T) {
	tests := []struct {
		name  string
		in    error
		check func(t *testing.T, out error)
	}{
		{
			name: "nil stays nil",
			in:   nil,
			check: func(t *testing.T, out error) {
				assert.NoError(t, out)
			},
		},
		{
			name: "auth error keeps its status",
			in:   &api.AuthError{APIError: api.APIError{StatusCode: 503, Body: "down", Message: "failed to obtain access token"}},
			check: func(t *testing.T, out error) {
				var authErr *AuthError
				require.ErrorAs(t, out, &authErr)
				assert.Equal(t, 503, authErr.StatusCode)
				assert.Equal(t, "down", authErr.Body)
			},
		},
		{
			name: "400 becomes BadRequestError",
			in:   &api.APIError{StatusCode: 400, Body: "bad", Message: "bad"},
			check: func(t *testing.T, out error) {
				var badErr *BadRequestError
				require.ErrorAs(t, out, &badErr)
				assert.Equal(t, 400, badErr.StatusCode)
			},
		},
		{
			name: "429 becomes RateLimitError",
			in:   &api.APIError{StatusCode: 429, Body: "slow", Message: "slow"},
			check: func(t *testing.T, out error) {
				var rlErr *RateLimitError
				require.ErrorAs(t, out, &rlErr)
				assert.Equal(t, 429, rlErr.StatusCode)
			},
		},
		{
			name: "other statuses stay generic",
			in:   &api.APIError{StatusCode: 404, Body: "missing", Message: "missing"},
			check: func(t *testing.T, out error) {
				var apiErr *APIError
				require.ErrorAs(t, out, &apiErr)
				assert.Equal(t, 404, apiErr.StatusCode)

				var badErr *BadRequestError
				assert.False(t, errors.As(out, &badErr))
			},
		},
		{
			name: "network error becomes generic with no status",
			in:   &api.NetworkError{Err: fmt.Errorf("dial tcp: refused"), URL: "https://x"},
			check: func(t *testing.T, out error) {
				var apiErr *APIError
				require.ErrorAs(t, out, &apiErr)
				assert.Zero(t, apiErr.StatusCode)
				assert.Contains(t, apiErr.Error(), "dial tcp: refused")
			},
		},
		{
			name: "unrelated errors pass through",
			in:   fmt.Errorf("decode response: unexpected EOF"),
			check: func(t *testing.T, out error) {
				assert.EqualError(t, out, "decode response: unexpected EOF")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, wrapError(tt.in))
		})
	}
}
