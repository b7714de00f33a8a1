package catalog

import (
	"context"
	"fmt"
	"net/http"
)

// Brand operations

func (c *Client) ListBrands(ctx context.Context) ([]Brand, error) {
	var brands []Brand
	if err := c.do(ctx, "list_brands", http.MethodGet, "/brands", nil, nil, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

func (c *Client) GetBrand(ctx context.Context, id int64) (*Brand, error) {
	var brand Brand
	if err := c.do(ctx, "get_brand", http.MethodGet, fmt.Sprintf("/brands/%d", id), nil, nil, &brand); err != nil {
		return nil, err
	}
	return &brand, nil
}

func (c *Client) CreateBrand(ctx context.Context, brand *Brand) (*Brand, error) {
	var created Brand
	if err := c.do(ctx, "create_brand", http.MethodPost, "/brands", nil, brand, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateBrand(ctx context.Context, id int64, brand *Brand) (*Brand, error) {
	var updated Brand
	if err := c.do(ctx, "update_brand", http.MethodPut, fmt.Sprintf("/brands/%d", id), nil, brand, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteBrand(ctx context.Context, id int64) error {
	return c.do(ctx, "delete_brand", http.MethodDelete, fmt.Sprintf("/brands/%d", id), nil, nil, nil)
}
