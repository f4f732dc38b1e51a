package miniflux

import (
	"net/http"
	"time"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	username   string
	password   string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
}

// Option configures the client.
type Option func(*clientConfig)

// WithBasicAuth sets HTTP basic authentication credentials.
func WithBasicAuth(username, password string) Option {
	return func(c *clientConfig) {
		c.username = username
		c.password = password
	}
}

// WithAPIKey sets the API token sent via the X-Auth-Token header.
// An API key takes precedence over basic authentication.
func WithAPIKey(token string) Option {
	return func(c *clientConfig) {
		c.apiKey = token
	}
}

// WithTimeout sets the per-request deadline. Default: 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client. When supplied, WithTimeout is
// ignored and the client's own deadline applies.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}
