package catalog

import (
	"context"
	"fmt"
	"net/http"
)

// Catalog (PDF) operations

func (c *Client) ListCatalogs(ctx context.Context) ([]Catalog, error) {
	var catalogs []Catalog
	if err := c.do(ctx, "list_catalogs", http.MethodGet, "/catalogs", nil, nil, &catalogs); err != nil {
		return nil, err
	}
	return catalogs, nil
}

func (c *Client) GetCatalog(ctx context.Context, id int64) (*Catalog, error) {
	var cat Catalog
	if err := c.do(ctx, "get_catalog", http.MethodGet, fmt.Sprintf("/catalogs/%d", id), nil, nil, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Client) CreateCatalog(ctx context.Context, cat *Catalog) (*Catalog, error) {
	var created Catalog
	if err := c.do(ctx, "create_catalog", http.MethodPost, "/catalogs", nil, cat, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateCatalog(ctx context.Context, id int64, cat *Catalog) (*Catalog, error) {
	var updated Catalog
	if err := c.do(ctx, "update_catalog", http.MethodPut, fmt.Sprintf("/catalogs/%d", id), nil, cat, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteCatalog(ctx context.Context, id int64) error {
	return c.do(ctx, "delete_catalog", http.MethodDelete, fmt.Sprintf("/catalogs/%d", id), nil, nil, nil)
}
