package catalog

import (
	"context"
	"fmt"
	"net/http"
)

// Category operations

func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.do(ctx, "list_categories", http.MethodGet, "/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) GetCategory(ctx context.Context, id int64) (*Category, error) {
	var category Category
	if err := c.do(ctx, "get_category", http.MethodGet, fmt.Sprintf("/categories/%d", id), nil, nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) CreateCategory(ctx context.Context, category *Category) (*Category, error) {
	var created Category
	if err := c.do(ctx, "create_category", http.MethodPost, "/categories", nil, category, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, category *Category) (*Category, error) {
	var updated Category
	if err := c.do(ctx, "update_category", http.MethodPut, fmt.Sprintf("/categories/%d", id), nil, category, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.do(ctx, "delete_category", http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, nil, nil)
}
