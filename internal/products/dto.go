package products

import "github.com/serhatpolat/maktek-admin/pkg/catalog"

// VariantSpec describes one additional physical product to create from a
// save submission. Price arrives as the raw form string and is parsed
// server-side.
type VariantSpec struct {
	Code         string `json:"code"`
	VariantLabel string `json:"variantLabel"`
	Price        string `json:"price"`
	Stock        int    `json:"stock"`
	ERPRef       *int64 `json:"logoLogicalRef"`
}

// SaveInput is the full product save submission. A zero Product.ID means
// create; a set one means whole-record update.
type SaveInput struct {
	Product     catalog.Product `json:"product"`
	HasVariants bool            `json:"hasVariants"`
	GroupID     *int64          `json:"groupId"`
	GroupCode   string          `json:"groupCode"`
	GroupName   string          `json:"groupName"`
	Variants    []VariantSpec   `json:"newVariants"`
}

// VariantResult reports the outcome of one variant write.
type VariantResult struct {
	Code      string `json:"code"`
	ProductID int64  `json:"productId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// SaveResult is the outcome of a save submission.
type SaveResult struct {
	Product  *catalog.Product `json:"product"`
	GroupID  *int64           `json:"groupId"`
	Variants []VariantResult  `json:"variants,omitempty"`
}
