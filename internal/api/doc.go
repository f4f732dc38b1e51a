// Package api provides HTTP client functionality for communicating with a
// Miniflux feed-aggregation server. It handles authentication, request and
// response serialization, and translation of failed responses into typed
// errors.
//
// # Authentication
//
// A client authenticates with either an API key or HTTP basic credentials.
// When an API key is configured it is sent via the X-Auth-Token header on
// every request and basic credentials are ignored; otherwise the username
// and password are sent as basic auth.
//
// # Error Handling
//
// Non-2xx responses are translated into [*APIError] carrying the HTTP
// status code and a best-effort reason extracted from the response body.
// The package defines sentinel errors for common conditions:
//
//   - [ErrUnauthorized]: missing or invalid credentials (401).
//   - [ErrForbidden]: insufficient permissions (403).
//   - [ErrNotFound]: resource does not exist (404).
//   - [ErrServerError]: server-side failure (5xx).
//
// Use errors.Is to check for specific conditions:
//
//	if errors.Is(err, api.ErrNotFound) {
//	    // Handle missing feed
//	}
//
// Transport-level failures (timeouts, connection errors) from the
// underlying http.Client are returned unmodified and are never retried.
//
// # Thread Safety
//
// The [Client] type is immutable after construction and safe for
// concurrent use.
package api
