package miniflux

import (
	"github.com/miniflux/client-go/internal/api"
)

// APIError represents a non-2xx response from the API. It exposes the HTTP
// status code and a reason extracted from the response body when present.
type APIError = api.APIError

// Sentinel errors for errors.Is() checks.
var (
	// ErrMissingBaseURL is returned when no base URL is provided.
	ErrMissingBaseURL = api.ErrMissingBaseURL

	// ErrBadRequest is returned when the server rejects the request payload.
	ErrBadRequest = api.ErrBadRequest

	// ErrUnauthorized is returned when credentials are missing or invalid.
	ErrUnauthorized = api.ErrUnauthorized

	// ErrForbidden is returned when the credentials lack the required permission.
	ErrForbidden = api.ErrForbidden

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = api.ErrNotFound

	// ErrServerError is returned on server-side failures.
	ErrServerError = api.ErrServerError
)
