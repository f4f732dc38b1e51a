package miniflux

import (
	"context"

	"github.com/miniflux/client-go/internal/api"
)

// Client is the feed-aggregation API client. It is immutable after
// construction and safe for concurrent use.
type Client struct {
	api *api.Client
}

// New creates a new client for the service at baseURL. Credentials are
// supplied via WithAPIKey or WithBasicAuth; when both are given the API
// key wins and basic credentials are never sent.
func New(baseURL string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    baseURL,
		Username:   cfg.username,
		Password:   cfg.password,
		APIKey:     cfg.apiKey,
		Timeout:    cfg.timeout,
		HTTPClient: cfg.httpClient,
	})
	if err != nil {
		return nil, err
	}

	return &Client{api: apiClient}, nil
}

// BaseURL returns the normalized base URL the client was built with.
func (c *Client) BaseURL() string {
	return c.api.BaseURL()
}

// Healthcheck verifies the server is reachable and healthy.
func (c *Client) Healthcheck(ctx context.Context) error {
	_, err := c.api.GetText(ctx, "/healthcheck")
	return err
}

// Version returns the server version string.
func (c *Client) Version(ctx context.Context) (string, error) {
	return c.api.GetText(ctx, "/version")
}
