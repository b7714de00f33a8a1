package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/serhatpolat/maktek-admin/pkg/pagination"
)

// Product operations

// ProductFilter narrows a product listing. Zero values are omitted from
// the query string.
type ProductFilter struct {
	Search     string
	BrandID    int64
	CategoryID int64
}

func (c *Client) ListProducts(ctx context.Context, params pagination.Params, filter ProductFilter) (*ProductPage, error) {
	params = params.Normalize()
	query := url.Values{}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("size", strconv.Itoa(params.Size))
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.BrandID > 0 {
		query.Set("brandId", strconv.FormatInt(filter.BrandID, 10))
	}
	if filter.CategoryID > 0 {
		query.Set("categoryId", strconv.FormatInt(filter.CategoryID, 10))
	}

	var page ProductPage
	if err := c.do(ctx, "list_products", http.MethodGet, "/products", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// selectPageSize matches the admin UI pickers, which load the whole
// catalog in a single page.
const selectPageSize = 2000

// ListProductsForSelect fetches one oversized page for select inputs,
// bypassing the normal page size cap.
func (c *Client) ListProductsForSelect(ctx context.Context) (*ProductPage, error) {
	query := url.Values{}
	query.Set("page", "0")
	query.Set("size", strconv.Itoa(selectPageSize))

	var page ProductPage
	if err := c.do(ctx, "list_products_select", http.MethodGet, "/products", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var product Product
	if err := c.do(ctx, "get_product", http.MethodGet, fmt.Sprintf("/products/%d", id), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, product *Product) (*Product, error) {
	var created Product
	if err := c.do(ctx, "create_product", http.MethodPost, "/products", nil, product, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProduct replaces the whole stored record with the given one.
func (c *Client) UpdateProduct(ctx context.Context, id int64, product *Product) (*Product, error) {
	var updated Product
	if err := c.do(ctx, "update_product", http.MethodPut, fmt.Sprintf("/products/%d", id), nil, product, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, "delete_product", http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil, nil)
}

// MutateProduct fetches the full record, applies mutate, and writes the
// whole record back. Updates are whole-record PUTs, so this is the only
// safe way to change a subset of fields.
func (c *Client) MutateProduct(ctx context.Context, id int64, mutate func(*Product)) (*Product, error) {
	product, err := c.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	mutate(product)
	return c.UpdateProduct(ctx, id, product)
}
