package miniflux

import (
	"context"
	"fmt"
	"net/url"
)

// Me returns the user owning the configured credentials.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.api.Get(ctx, "/v1/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Users returns all user accounts. Requires admin credentials.
func (c *Client) Users(ctx context.Context) ([]*User, error) {
	var users []*User
	if err := c.api.Get(ctx, "/v1/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UserByID returns a user account by its numeric ID.
func (c *Client) UserByID(ctx context.Context, userID int64) (*User, error) {
	var user User
	if err := c.api.Get(ctx, fmt.Sprintf("/v1/users/%d", userID), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UserByUsername returns a user account by its username.
func (c *Client) UserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	if err := c.api.Get(ctx, "/v1/users/"+url.PathEscape(username), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a user account. Requires admin credentials.
func (c *Client) CreateUser(ctx context.Context, username, password string, isAdmin bool) (*User, error) {
	payload := struct {
		Username string `json:"username"`
		Password string `json:"password"`
		IsAdmin  bool   `json:"is_admin"`
	}{
		Username: username,
		Password: password,
		IsAdmin:  isAdmin,
	}
	var user User
	if err := c.api.Post(ctx, "/v1/users", payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies a partial update to a user account, including profile
// preferences, and returns the updated user. Only non-nil fields of
// changes are sent; fields never supplied stay entirely absent from the
// payload.
func (c *Client) UpdateUser(ctx context.Context, userID int64, changes *UserModification) (*User, error) {
	var user User
	if err := c.api.Put(ctx, fmt.Sprintf("/v1/users/%d", userID), changes, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user account. Requires admin credentials.
func (c *Client) DeleteUser(ctx context.Context, userID int64) error {
	return c.api.Delete(ctx, fmt.Sprintf("/v1/users/%d", userID))
}

// MarkUserAsRead marks every entry belonging to a user as read.
func (c *Client) MarkUserAsRead(ctx context.Context, userID int64) error {
	return c.api.Put(ctx, fmt.Sprintf("/v1/users/%d/mark-all-as-read", userID), nil, nil)
}
