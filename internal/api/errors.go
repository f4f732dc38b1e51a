package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Common API errors that can be checked with errors.Is.
var (
	// ErrMissingBaseURL is returned when no base URL is provided.
	ErrMissingBaseURL = errors.New("base URL is required")
	// ErrBadRequest indicates the request payload was rejected.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden indicates the credentials lack the required permission.
	ErrForbidden = errors.New("access forbidden")
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrServerError indicates a server-side failure.
	ErrServerError = errors.New("internal server error")
)

// APIError represents a non-2xx response from the feed-aggregation API.
type APIError struct {
	StatusCode int
	Reason     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Reason)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch {
	case e.StatusCode == http.StatusBadRequest:
		return target == ErrBadRequest
	case e.StatusCode == http.StatusUnauthorized:
		return target == ErrUnauthorized
	case e.StatusCode == http.StatusForbidden:
		return target == ErrForbidden
	case e.StatusCode == http.StatusNotFound:
		return target == ErrNotFound
	case e.StatusCode >= http.StatusInternalServerError:
		return target == ErrServerError
	}
	return false
}

// newAPIError builds an *APIError from a failed response. The reason is
// the error_message field of a JSON body when present, otherwise a
// synthesized "status_code=<code>" string.
func newAPIError(resp *http.Response) *APIError {
	reason := fmt.Sprintf("status_code=%d", resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	if err == nil {
		var payload struct {
			ErrorMessage string `json:"error_message"`
		}
		if err := json.Unmarshal(body, &payload); err == nil && payload.ErrorMessage != "" {
			reason = payload.ErrorMessage
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Reason:     reason,
	}
}
