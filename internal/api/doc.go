// Package api implements the HTTP layer of the Threat Protection client:
// OAuth2 client-credentials token management, authenticated request
// dispatch, and mapping of failure responses to typed errors.
package api
