package miniflux

import (
	"context"
	"fmt"
)

// feedCreationPayload is the POST /v1/feeds body. Optional crawl settings
// are omitted entirely when not supplied.
type feedCreationPayload struct {
	FeedURL    string `json:"feed_url"`
	CategoryID int64  `json:"category_id"`
	Username   string `json:"username,omitempty"`
	Password   string `json:"password,omitempty"`
	Crawler    *bool  `json:"crawler,omitempty"`
	UserAgent  string `json:"user_agent,omitempty"`
}

// FeedCreationOption configures optional crawl settings for CreateFeed.
type FeedCreationOption func(*feedCreationPayload)

// WithFeedCredentials sets the credentials used to fetch the feed itself.
func WithFeedCredentials(username, password string) FeedCreationOption {
	return func(p *feedCreationPayload) {
		p.Username = username
		p.Password = password
	}
}

// WithFeedCrawler enables or disables the content crawler for the feed.
// An explicit false is sent literally; an unset crawler flag is absent.
func WithFeedCrawler(enabled bool) FeedCreationOption {
	return func(p *feedCreationPayload) {
		p.Crawler = &enabled
	}
}

// WithFeedUserAgent sets the User-Agent used to fetch the feed.
func WithFeedUserAgent(userAgent string) FeedCreationOption {
	return func(p *feedCreationPayload) {
		p.UserAgent = userAgent
	}
}

// Feeds returns all subscribed feeds.
func (c *Client) Feeds(ctx context.Context) ([]*Feed, error) {
	var feeds []*Feed
	if err := c.api.Get(ctx, "/v1/feeds", nil, &feeds); err != nil {
		return nil, err
	}
	return feeds, nil
}

// Feed returns a single feed.
func (c *Client) Feed(ctx context.Context, feedID int64) (*Feed, error) {
	var feed Feed
	if err := c.api.Get(ctx, fmt.Sprintf("/v1/feeds/%d", feedID), nil, &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}

// CreateFeed subscribes to a feed in the given category and returns the
// new feed's ID.
func (c *Client) CreateFeed(ctx context.Context, feedURL string, categoryID int64, opts ...FeedCreationOption) (int64, error) {
	payload := feedCreationPayload{
		FeedURL:    feedURL,
		CategoryID: categoryID,
	}
	for _, opt := range opts {
		opt(&payload)
	}

	var result struct {
		FeedID int64 `json:"feed_id"`
	}
	if err := c.api.Post(ctx, "/v1/feeds", payload, &result); err != nil {
		return 0, err
	}
	return result.FeedID, nil
}

// UpdateFeed applies a partial update to a feed and returns the updated
// feed. Only non-nil fields of changes are sent.
func (c *Client) UpdateFeed(ctx context.Context, feedID int64, changes *FeedModification) (*Feed, error) {
	var feed Feed
	if err := c.api.Put(ctx, fmt.Sprintf("/v1/feeds/%d", feedID), changes, &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}

// DeleteFeed removes a feed subscription.
func (c *Client) DeleteFeed(ctx context.Context, feedID int64) error {
	return c.api.Delete(ctx, fmt.Sprintf("/v1/feeds/%d", feedID))
}

// RefreshFeed asks the server to re-fetch a feed.
func (c *Client) RefreshFeed(ctx context.Context, feedID int64) error {
	return c.api.Put(ctx, fmt.Sprintf("/v1/feeds/%d/refresh", feedID), nil, nil)
}

// RefreshAllFeeds asks the server to re-fetch every feed.
func (c *Client) RefreshAllFeeds(ctx context.Context) error {
	return c.api.Put(ctx, "/v1/feeds/refresh", nil, nil)
}

// FeedIcon returns the icon attached to a feed.
func (c *Client) FeedIcon(ctx context.Context, feedID int64) (*FeedIcon, error) {
	var icon FeedIcon
	if err := c.api.Get(ctx, fmt.Sprintf("/v1/feeds/%d/icon", feedID), nil, &icon); err != nil {
		return nil, err
	}
	return &icon, nil
}

// FeedEntries returns the entries of a feed matching the filter.
func (c *Client) FeedEntries(ctx context.Context, feedID int64, filter *EntryFilter) (*EntryResultSet, error) {
	values, err := filter.values()
	if err != nil {
		return nil, err
	}
	var result EntryResultSet
	if err := c.api.Get(ctx, fmt.Sprintf("/v1/feeds/%d/entries", feedID), values, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FeedEntry returns a single entry scoped to a feed.
func (c *Client) FeedEntry(ctx context.Context, feedID, entryID int64) (*Entry, error) {
	var entry Entry
	if err := c.api.Get(ctx, fmt.Sprintf("/v1/feeds/%d/entries/%d", feedID, entryID), nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// MarkFeedAsRead marks every entry of a feed as read.
func (c *Client) MarkFeedAsRead(ctx context.Context, feedID int64) error {
	return c.api.Put(ctx, fmt.Sprintf("/v1/feeds/%d/mark-all-as-read", feedID), nil, nil)
}
