package catalog

import (
	"context"
	"net/http"
)

// Auth operations

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, "login", http.MethodPost, "/auth/login", nil, creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AdminMe returns the authenticated account, failing unless the backend
// recognizes the token's bearer as an admin.
func (c *Client) AdminMe(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, "admin_me", http.MethodGet, "/auth/admin/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
