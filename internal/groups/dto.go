package groups

// Member pairs an existing product with its variant label.
type Member struct {
	ProductID    int64  `json:"productId"`
	VariantLabel string `json:"variantLabel"`
}

// CreateInput creates a group, optionally seeding it with an initial
// roster of existing products.
type CreateInput struct {
	GroupCode string   `json:"groupCode"`
	GroupName string   `json:"groupName"`
	Products  []Member `json:"products"`
}

// UpdateInput renames or recodes an existing group.
type UpdateInput struct {
	GroupCode string `json:"groupCode"`
	Name      string `json:"name"`
}
