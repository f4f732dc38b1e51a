package miniflux

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
)

// EntryFilter narrows entry listings. Every field is optional: a nil field
// never appears in the query string, while an explicitly set zero value
// (e.g. Starred: Bool(false)) is sent literally.
type EntryFilter struct {
	Status        *string `url:"status,omitempty"`
	Order         *string `url:"order,omitempty"`
	Direction     *string `url:"direction,omitempty"`
	Limit         *int    `url:"limit,omitempty"`
	Offset        *int    `url:"offset,omitempty"`
	Before        *int64  `url:"before,omitempty"`
	After         *int64  `url:"after,omitempty"`
	BeforeEntryID *int64  `url:"before_entry_id,omitempty"`
	AfterEntryID  *int64  `url:"after_entry_id,omitempty"`
	Starred       *bool   `url:"starred,omitempty"`
	Search        *string `url:"search,omitempty"`
}

func (f *EntryFilter) values() (url.Values, error) {
	if f == nil {
		return nil, nil
	}
	values, err := query.Values(f)
	if err != nil {
		return nil, fmt.Errorf("encode entry filter: %w", err)
	}
	return values, nil
}

// Entries returns all entries matching the filter. A nil filter returns
// everything.
func (c *Client) Entries(ctx context.Context, filter *EntryFilter) (*EntryResultSet, error) {
	values, err := filter.values()
	if err != nil {
		return nil, err
	}
	var result EntryResultSet
	if err := c.api.Get(ctx, "/v1/entries", values, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Entry returns a single entry.
func (c *Client) Entry(ctx context.Context, entryID int64) (*Entry, error) {
	var result Entry
	if err := c.api.Get(ctx, fmt.Sprintf("/v1/entries/%d", entryID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateEntries changes the status of the given entries in bulk.
func (c *Client) UpdateEntries(ctx context.Context, entryIDs []int64, status string) error {
	payload := struct {
		EntryIDs []int64 `json:"entry_ids"`
		Status   string  `json:"status"`
	}{
		EntryIDs: entryIDs,
		Status:   status,
	}
	return c.api.Put(ctx, "/v1/entries", payload, nil)
}

// ToggleBookmark flips the starred flag on an entry.
func (c *Client) ToggleBookmark(ctx context.Context, entryID int64) error {
	return c.api.Put(ctx, fmt.Sprintf("/v1/entries/%d/bookmark", entryID), nil, nil)
}
