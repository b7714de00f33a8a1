package catalog

// Ref is a lightweight reference to a related record. The backend accepts
// bare {id} objects on writes and returns {id, name} on reads.
type Ref struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

// ProductImage is one entry of a product's ordered gallery.
type ProductImage struct {
	ID           int64  `json:"id,omitempty"`
	URL          string `json:"url"`
	IsMain       bool   `json:"isMain"`
	DisplayOrder int    `json:"displayOrder"`
}

// ProductDocument is an attached datasheet or manual.
type ProductDocument struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type,omitempty"`
}

// ProductFeature is a key/value spec row.
type ProductFeature struct {
	ID           int64  `json:"id,omitempty"`
	Feature      string `json:"feature"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"displayOrder"`
}

// Product is the full record the backend stores. Updates are whole-record
// PUTs: any field omitted from an update payload is erased server-side, so
// mutation paths must always start from a freshly fetched record.
type Product struct {
	ID             int64             `json:"id,omitempty"`
	Code           string            `json:"code"`
	Name           string            `json:"name"`
	Slug           string            `json:"slug,omitempty"`
	Description    string            `json:"description,omitempty"`
	Price          float64           `json:"price"`
	CurrencyID     int64             `json:"currencyId"`
	VATRate        float64           `json:"vatRate"`
	Stock          int               `json:"stock"`
	LogoLogicalRef *int64            `json:"logoLogicalRef"`
	Brand          *Ref              `json:"brand"`
	Category       *Ref              `json:"category"`
	Images         []ProductImage    `json:"images,omitempty"`
	Documents      []ProductDocument `json:"documents,omitempty"`
	Features       []ProductFeature  `json:"features,omitempty"`
	Group          *Ref              `json:"group"`
	VariantLabel   string            `json:"variantLabel,omitempty"`
}

// ProductPage is the backend's paged list envelope.
type ProductPage struct {
	Content       []Product `json:"content"`
	TotalElements int64     `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
	Number        int       `json:"number"`
	Size          int       `json:"size"`
}

// ProductGroup is a named family of variant products.
type ProductGroup struct {
	ID        int64  `json:"id,omitempty"`
	GroupCode string `json:"groupCode"`
	Name      string `json:"name"`
}

// BulkAssignProduct pairs an existing product with its variant label.
type BulkAssignProduct struct {
	ProductID    int64  `json:"productId"`
	VariantLabel string `json:"variantLabel"`
}

// BulkAssignRequest associates many existing products with a group,
// creating the group when it does not exist yet. The backend treats the
// batch atomically: there is no per-item result.
type BulkAssignRequest struct {
	GroupCode string              `json:"groupCode"`
	GroupName string              `json:"groupName"`
	Products  []BulkAssignProduct `json:"products"`
}

// Brand is a manufacturer record.
type Brand struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	LogoName    string `json:"logoName,omitempty"`
	LogoURL     string `json:"logoUrl,omitempty"`
	Description string `json:"description,omitempty"`
}

// Category is a product taxonomy node.
type Category struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name"`
	Slug     string `json:"slug,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Banner is a storefront hero entry.
type Banner struct {
	ID           int64  `json:"id,omitempty"`
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle,omitempty"`
	ImageURL     string `json:"imageUrl"`
	LinkURL      string `json:"linkUrl,omitempty"`
	DisplayOrder int    `json:"displayOrder"`
	Active       bool   `json:"active"`
}

// Catalog is a downloadable PDF price list or product catalog.
type Catalog struct {
	ID          int64  `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	FileURL     string `json:"fileUrl"`
	CoverURL    string `json:"coverUrl,omitempty"`
	Year        int    `json:"year,omitempty"`
}

// Credentials is the login payload the backend expects.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token the backend issues.
type LoginResponse struct {
	Token string `json:"token"`
}

// User is the authenticated account returned by the me endpoints.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}
