package miniflux

import (
	"context"
	"fmt"
)

type categoryPayload struct {
	Title string `json:"title"`
}

// Categories returns all categories.
func (c *Client) Categories(ctx context.Context) ([]*Category, error) {
	var categories []*Category
	if err := c.api.Get(ctx, "/v1/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a category with the given title.
func (c *Client) CreateCategory(ctx context.Context, title string) (*Category, error) {
	var category Category
	if err := c.api.Post(ctx, "/v1/categories", categoryPayload{Title: title}, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory renames a category.
func (c *Client) UpdateCategory(ctx context.Context, categoryID int64, title string) (*Category, error) {
	var category Category
	if err := c.api.Put(ctx, fmt.Sprintf("/v1/categories/%d", categoryID), categoryPayload{Title: title}, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, categoryID int64) error {
	return c.api.Delete(ctx, fmt.Sprintf("/v1/categories/%d", categoryID))
}

// CategoryEntries returns the entries of a category matching the filter.
func (c *Client) CategoryEntries(ctx context.Context, categoryID int64, filter *EntryFilter) (*EntryResultSet, error) {
	values, err := filter.values()
	if err != nil {
		return nil, err
	}
	var result EntryResultSet
	if err := c.api.Get(ctx, fmt.Sprintf("/v1/categories/%d/entries", categoryID), values, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// MarkCategoryAsRead marks every entry of a category as read.
func (c *Client) MarkCategoryAsRead(ctx context.Context, categoryID int64) error {
	return c.api.Put(ctx, fmt.Sprintf("/v1/categories/%d/mark-all-as-read", categoryID), nil, nil)
}
