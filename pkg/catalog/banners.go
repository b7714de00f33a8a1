package catalog

import (
	"context"
	"fmt"
	"net/http"
)

// Banner operations

func (c *Client) ListBanners(ctx context.Context) ([]Banner, error) {
	var banners []Banner
	if err := c.do(ctx, "list_banners", http.MethodGet, "/banners", nil, nil, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

func (c *Client) GetBanner(ctx context.Context, id int64) (*Banner, error) {
	var banner Banner
	if err := c.do(ctx, "get_banner", http.MethodGet, fmt.Sprintf("/banners/%d", id), nil, nil, &banner); err != nil {
		return nil, err
	}
	return &banner, nil
}

func (c *Client) CreateBanner(ctx context.Context, banner *Banner) (*Banner, error) {
	var created Banner
	if err := c.do(ctx, "create_banner", http.MethodPost, "/banners", nil, banner, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateBanner(ctx context.Context, id int64, banner *Banner) (*Banner, error) {
	var updated Banner
	if err := c.do(ctx, "update_banner", http.MethodPut, fmt.Sprintf("/banners/%d", id), nil, banner, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteBanner(ctx context.Context, id int64) error {
	return c.do(ctx, "delete_banner", http.MethodDelete, fmt.Sprintf("/banners/%d", id), nil, nil, nil)
}
