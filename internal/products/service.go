package products

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/serhatpolat/maktek-admin/internal/audit"
	"github.com/serhatpolat/maktek-admin/internal/cache"
	"github.com/serhatpolat/maktek-admin/pkg/catalog"
	"github.com/serhatpolat/maktek-admin/pkg/errors"
	"github.com/serhatpolat/maktek-admin/pkg/logger"
	"github.com/serhatpolat/maktek-admin/pkg/pagination"
)

// backend is the slice of the catalog API this service depends on.
type backend interface {
	ListProducts(ctx context.Context, params pagination.Params, filter catalog.ProductFilter) (*catalog.ProductPage, error)
	ListProductsForSelect(ctx context.Context) (*catalog.ProductPage, error)
	GetProduct(ctx context.Context, id int64) (*catalog.Product, error)
	CreateProduct(ctx context.Context, product *catalog.Product) (*catalog.Product, error)
	UpdateProduct(ctx context.Context, id int64, product *catalog.Product) (*catalog.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	ListGroups(ctx context.Context) ([]catalog.ProductGroup, error)
	CreateGroup(ctx context.Context, group *catalog.ProductGroup) (*catalog.ProductGroup, error)
}

type Service interface {
	Save(ctx context.Context, in SaveInput) (*SaveResult, error)
	List(ctx context.Context, params pagination.Params, filter catalog.ProductFilter) (*catalog.ProductPage, error)
	ListForSelect(ctx context.Context) ([]catalog.Product, error)
	Get(ctx context.Context, id int64) (*catalog.Product, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	backend backend
	audit   audit.Recorder
	cache   *cache.Cache
	logger  *logger.Logger
}

func NewService(api backend, recorder audit.Recorder, store *cache.Cache, logg *logger.Logger) Service {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &service{backend: api, audit: recorder, cache: store, logger: logg}
}

// Save persists the main product record, resolving its group first, then
// writes any requested variants one at a time. Grouping failures degrade
// to an ungrouped save; variant failures are reported per code.
func (s *service) Save(ctx context.Context, in SaveInput) (*SaveResult, error) {
	if strings.TrimSpace(in.Product.Code) == "" {
		return nil, errors.New(errors.CodeValidation, "product code is required")
	}
	if strings.TrimSpace(in.Product.Name) == "" {
		return nil, errors.New(errors.CodeValidation, "product name is required")
	}

	groupID := s.resolveGroupID(ctx, in)
	main := in.Product
	main.Group = groupRef(groupID)

	var (
		saved  *catalog.Product
		err    error
		action = "create"
	)
	if main.ID != 0 {
		action = "update"
		saved, err = s.backend.UpdateProduct(ctx, main.ID, &main)
	} else {
		saved, err = s.backend.CreateProduct(ctx, &main)
	}
	if err != nil {
		return nil, err
	}

	results := s.writeVariants(ctx, saved, groupID, in.Variants)

	s.audit.Record(ctx, action, "product", strconv.FormatInt(saved.ID, 10), saved.Code)
	s.invalidate(ctx)

	return &SaveResult{Product: saved, GroupID: groupID, Variants: results}, nil
}

// resolveGroupID decides which group, if any, the submission belongs to.
// An explicit id wins outright. Otherwise the group code is matched
// exactly against the existing groups, and a missing group is created
// only when the submission actually carries variants. Any backend
// failure here degrades to "no group": the product must save regardless.
func (s *service) resolveGroupID(ctx context.Context, in SaveInput) *int64 {
	if in.GroupID != nil {
		return in.GroupID
	}

	code := strings.TrimSpace(in.GroupCode)
	if code == "" {
		return nil
	}

	groups, err := s.backend.ListGroups(ctx)
	if err != nil {
		s.warnGrouping(ctx, code, err)
		return nil
	}
	for _, group := range groups {
		if group.GroupCode == code {
			id := group.ID
			return &id
		}
	}

	if !in.HasVariants {
		return nil
	}

	name := strings.TrimSpace(in.GroupName)
	if name == "" {
		name = in.Product.Name + " Grubu"
	}
	created, err := s.backend.CreateGroup(ctx, &catalog.ProductGroup{GroupCode: code, Name: name})
	if err != nil {
		s.warnGrouping(ctx, code, err)
		return nil
	}
	id := created.ID
	return &id
}

// writeVariants creates one product per spec, sequentially. Each variant
// clones the saved main record's shared fields and overrides the per-unit
// ones. Images stay on the main record only: group-aware readers fall
// back to them, so duplicating the list would just duplicate media.
func (s *service) writeVariants(ctx context.Context, main *catalog.Product, groupID *int64, specs []VariantSpec) []VariantResult {
	if len(specs) == 0 {
		return nil
	}

	results := make([]VariantResult, 0, len(specs))
	for _, spec := range specs {
		code := strings.TrimSpace(spec.Code)
		if code == "" {
			continue
		}

		variant := *main
		variant.ID = 0
		variant.Slug = ""
		variant.Code = code
		variant.VariantLabel = strings.TrimSpace(spec.VariantLabel)
		variant.Price = variantPrice(spec.Price, main.Price)
		variant.Stock = spec.Stock
		variant.Images = nil
		variant.Group = groupRef(groupID)
		// The ERP ref identifies one physical unit; a variant without its
		// own must not inherit the main record's.
		variant.LogoLogicalRef = spec.ERPRef

		created, err := s.backend.CreateProduct(ctx, &variant)
		if err != nil {
			results = append(results, VariantResult{Code: code, Error: err.Error()})
			continue
		}
		results = append(results, VariantResult{Code: code, ProductID: created.ID})
	}
	return results
}

func (s *service) List(ctx context.Context, params pagination.Params, filter catalog.ProductFilter) (*catalog.ProductPage, error) {
	params = params.Normalize()
	digest := fmt.Sprintf("page-%d-size-%d-q-%s-b-%d-c-%d",
		params.Page, params.Size, filter.Search, filter.BrandID, filter.CategoryID)

	var page catalog.ProductPage
	if s.cache.GetJSON(ctx, cache.RouteProducts, digest, &page) {
		return &page, nil
	}

	fresh, err := s.backend.ListProducts(ctx, params, filter)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, cache.RouteProducts, digest, fresh)
	return fresh, nil
}

// ListForSelect returns every ungrouped product in one shot for the admin
// UI's product pickers. Already grouped products are filtered out because
// a product belongs to at most one group.
func (s *service) ListForSelect(ctx context.Context) ([]catalog.Product, error) {
	var cached []catalog.Product
	if s.cache.GetJSON(ctx, cache.RouteProducts, "select", &cached) {
		return cached, nil
	}

	page, err := s.backend.ListProductsForSelect(ctx)
	if err != nil {
		return nil, err
	}

	ungrouped := make([]catalog.Product, 0, len(page.Content))
	for _, product := range page.Content {
		if product.Group == nil {
			ungrouped = append(ungrouped, product)
		}
	}
	s.cache.SetJSON(ctx, cache.RouteProducts, "select", ungrouped)
	return ungrouped, nil
}

func (s *service) Get(ctx context.Context, id int64) (*catalog.Product, error) {
	return s.backend.GetProduct(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.backend.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, "delete", "product", strconv.FormatInt(id, 10), "")
	s.invalidate(ctx)
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, cache.RouteProducts, cache.RouteGroups); err != nil && s.logger != nil {
		s.logger.Warn(ctx, "cache invalidation failed: "+err.Error())
	}
}

func (s *service) warnGrouping(ctx context.Context, code string, err error) {
	if s.logger == nil {
		return
	}
	ctx = s.logger.WithField(ctx, "group_code", code)
	s.logger.Warn(ctx, "group resolution failed, saving ungrouped: "+err.Error())
}

func groupRef(id *int64) *catalog.Ref {
	if id == nil {
		return nil
	}
	return &catalog.Ref{ID: *id}
}

// variantPrice parses the raw form price, falling back to the main
// product's price when the field is blank or unparseable.
func variantPrice(raw string, fallback float64) float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fallback
	}
	price, err := decimal.NewFromString(trimmed)
	if err != nil {
		return fallback
	}
	return price.InexactFloat64()
}
