package miniflux

import (
	"context"
)

// discoverPayload is the POST /v1/discover body. Optional crawl settings
// are omitted entirely when not supplied.
type discoverPayload struct {
	URL       string `json:"url"`
	Username  string `json:"username,omitempty"`
	Password  string `json:"password,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

// DiscoverOption configures optional crawl settings for Discover.
type DiscoverOption func(*discoverPayload)

// WithDiscoverCredentials sets the credentials used to crawl the site.
func WithDiscoverCredentials(username, password string) DiscoverOption {
	return func(p *discoverPayload) {
		p.Username = username
		p.Password = password
	}
}

// WithDiscoverUserAgent sets the User-Agent used to crawl the site.
func WithDiscoverUserAgent(userAgent string) DiscoverOption {
	return func(p *discoverPayload) {
		p.UserAgent = userAgent
	}
}

// Discover probes a website URL for available feeds.
func (c *Client) Discover(ctx context.Context, siteURL string, opts ...DiscoverOption) ([]*Subscription, error) {
	payload := discoverPayload{URL: siteURL}
	for _, opt := range opts {
		opt(&payload)
	}

	var subscriptions []*Subscription
	if err := c.api.Post(ctx, "/v1/discover", payload, &subscriptions); err != nil {
		return nil, err
	}
	return subscriptions, nil
}

// Export returns the subscription list as a raw OPML blob. The body is
// returned verbatim, never JSON-decoded.
func (c *Client) Export(ctx context.Context) (string, error) {
	return c.api.GetText(ctx, "/v1/export")
}

// ImportFeeds uploads an OPML blob and subscribes to the feeds it lists.
// The blob is opaque to the client and sent verbatim.
func (c *Client) ImportFeeds(ctx context.Context, opml string) error {
	return c.api.PostRaw(ctx, "/v1/import", opml)
}
