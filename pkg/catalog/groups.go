package catalog

import (
	"context"
	"fmt"
	"net/http"
)

// Product group operations

func (c *Client) ListGroups(ctx context.Context) ([]ProductGroup, error) {
	var groups []ProductGroup
	if err := c.do(ctx, "list_groups", http.MethodGet, "/product-groups", nil, nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *Client) GetGroup(ctx context.Context, id int64) (*ProductGroup, error) {
	var group ProductGroup
	if err := c.do(ctx, "get_group", http.MethodGet, fmt.Sprintf("/product-groups/%d", id), nil, nil, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *Client) CreateGroup(ctx context.Context, group *ProductGroup) (*ProductGroup, error) {
	var created ProductGroup
	if err := c.do(ctx, "create_group", http.MethodPost, "/product-groups", nil, group, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateGroup(ctx context.Context, id int64, group *ProductGroup) (*ProductGroup, error) {
	var updated ProductGroup
	if err := c.do(ctx, "update_group", http.MethodPut, fmt.Sprintf("/product-groups/%d", id), nil, group, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteGroup(ctx context.Context, id int64) error {
	return c.do(ctx, "delete_group", http.MethodDelete, fmt.Sprintf("/product-groups/%d", id), nil, nil, nil)
}

// GroupProducts lists the member products of a group.
func (c *Client) GroupProducts(ctx context.Context, id int64) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, "group_products", http.MethodGet, fmt.Sprintf("/product-groups/%d/products", id), nil, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// BulkAssign attaches every listed product to the named group, creating
// the group first when no group with that code exists.
func (c *Client) BulkAssign(ctx context.Context, req BulkAssignRequest) error {
	return c.do(ctx, "bulk_assign", http.MethodPost, "/product-groups/bulk-assign", nil, req, nil)
}
