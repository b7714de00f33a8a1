package groups

import (
	"context"
	"strconv"
	"strings"

	"github.com/serhatpolat/maktek-admin/internal/audit"
	"github.com/serhatpolat/maktek-admin/internal/cache"
	"github.com/serhatpolat/maktek-admin/pkg/catalog"
	"github.com/serhatpolat/maktek-admin/pkg/errors"
	"github.com/serhatpolat/maktek-admin/pkg/logger"
)

// backend is the slice of the catalog API this service depends on.
type backend interface {
	ListGroups(ctx context.Context) ([]catalog.ProductGroup, error)
	GetGroup(ctx context.Context, id int64) (*catalog.ProductGroup, error)
	CreateGroup(ctx context.Context, group *catalog.ProductGroup) (*catalog.ProductGroup, error)
	UpdateGroup(ctx context.Context, id int64, group *catalog.ProductGroup) (*catalog.ProductGroup, error)
	DeleteGroup(ctx context.Context, id int64) error
	GroupProducts(ctx context.Context, id int64) ([]catalog.Product, error)
	BulkAssign(ctx context.Context, req catalog.BulkAssignRequest) error
	MutateProduct(ctx context.Context, id int64, mutate func(*catalog.Product)) (*catalog.Product, error)
}

type Service interface {
	List(ctx context.Context) ([]catalog.ProductGroup, error)
	Get(ctx context.Context, id int64) (*catalog.ProductGroup, error)
	Products(ctx context.Context, id int64) ([]catalog.Product, error)
	CreateWithProducts(ctx context.Context, in CreateInput) (*catalog.ProductGroup, error)
	Update(ctx context.Context, id int64, in UpdateInput) (*catalog.ProductGroup, error)
	Delete(ctx context.Context, id int64) error
	AddProduct(ctx context.Context, groupID, productID int64, variantLabel string) error
	RemoveProduct(ctx context.Context, productID int64) error
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

func (s *service) List(ctx context.Context) ([]catalog.ProductGroup, error) {
	var groups []catalog.ProductGroup
	if s.cache.GetJSON(ctx, cache.RouteGroups, "all", &groups) {
		return groups, nil
	}
	groups, err := s.backend.ListGroups(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, cache.RouteGroups, "all", groups)
	return groups, nil
}

func (s *service) Get(ctx context.Context, id int64) (*catalog.ProductGroup, error) {
	return s.backend.GetGroup(ctx, id)
}

func (s *service) Products(ctx context.Context, id int64) ([]catalog.Product, error) {
	return s.backend.GroupProducts(ctx, id)
}

// CreateWithProducts creates a group and, when a roster is supplied,
// attaches the whole roster through the bulk-assign endpoint in one
// batched call. An empty roster falls back to a plain group create so the
// backend never sees a degenerate batch. The batch is atomic server-side:
// a failure is one aggregate failure, never partial.
func (s *service) CreateWithProducts(ctx context.Context, in CreateInput) (*catalog.ProductGroup, error) {
	code := strings.TrimSpace(in.GroupCode)
	name := strings.TrimSpace(in.GroupName)
	if code == "" {
		return nil, errors.New(errors.CodeValidation, "group code is required")
	}
	if name == "" {
		return nil, errors.New(errors.CodeValidation, "group name is required")
	}

	if len(in.Products) == 0 {
		created, err := s.backend.CreateGroup(ctx, &catalog.ProductGroup{GroupCode: code, Name: name})
		if err != nil {
			return nil, err
		}
		s.audit.Record(ctx, "create", "product-group", strconv.FormatInt(created.ID, 10), code)
		s.invalidate(ctx)
		return created, nil
	}

	if err := s.backend.BulkAssign(ctx, bulkAssignRequest(code, name, in.Products)); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "bulk-assign", "product-group", code, strconv.Itoa(len(in.Products))+" products")
	s.invalidate(ctx)

	return s.findByCode(ctx, code)
}

func (s *service) Update(ctx context.Context, id int64, in UpdateInput) (*catalog.ProductGroup, error) {
	code := strings.TrimSpace(in.GroupCode)
	name := strings.TrimSpace(in.Name)
	if code == "" || name == "" {
		return nil, errors.New(errors.CodeValidation, "group code and name are required")
	}
	updated, err := s.backend.UpdateGroup(ctx, id, &catalog.ProductGroup{ID: id, GroupCode: code, Name: name})
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "update", "product-group", strconv.FormatInt(id, 10), code)
	s.invalidate(ctx)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.backend.DeleteGroup(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, "delete", "product-group", strconv.FormatInt(id, 10), "")
	s.invalidate(ctx)
	return nil
}

// AddProduct attaches one product to an existing group. It reuses the
// bulk-assign wire format with a single-element roster so single-add and
// bulk-add exercise the same server-side path.
func (s *service) AddProduct(ctx context.Context, groupID, productID int64, variantLabel string) error {
	group, err := s.backend.GetGroup(ctx, groupID)
	if err != nil {
		return err
	}

	req := bulkAssignRequest(group.GroupCode, group.Name, []Member{{ProductID: productID, VariantLabel: variantLabel}})
	if err := s.backend.BulkAssign(ctx, req); err != nil {
		return err
	}
	s.audit.Record(ctx, "add-product", "product-group", strconv.FormatInt(groupID, 10), strconv.FormatInt(productID, 10))
	s.invalidate(ctx)
	return nil
}

// RemoveProduct clears a product's group reference. The backend only
// supports whole-record replacement, so the mutation goes through the
// fetch-modify-put accessor; on failure the stored record is untouched.
func (s *service) RemoveProduct(ctx context.Context, productID int64) error {
	_, err := s.backend.MutateProduct(ctx, productID, func(p *catalog.Product) {
		p.Group = nil
	})
	if err != nil {
		return err
	}
	s.audit.Record(ctx, "remove-product", "product-group", strconv.FormatInt(productID, 10), "")
	s.invalidate(ctx)
	return nil
}

func (s *service) findByCode(ctx context.Context, code string) (*catalog.ProductGroup, error) {
	groups, err := s.backend.ListGroups(ctx)
	if err != nil {
		return nil, err
	}
	for _, group := range groups {
		if group.GroupCode == code {
			found := group
			return &found, nil
		}
	}
	return nil, errors.New(errors.CodeNotFound, "group not found after bulk assign")
}

func (s *service) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, cache.RouteGroups, cache.RouteProducts); err != nil && s.logger != nil {
		s.logger.Warn(ctx, "cache invalidation failed: "+err.Error())
	}
}

func bulkAssignRequest(code, name string, members []Member) catalog.BulkAssignRequest {
	products := make([]catalog.BulkAssignProduct, 0, len(members))
	for _, member := range members {
		products = append(products, catalog.BulkAssignProduct{
			ProductID:    member.ProductID,
			VariantLabel: member.VariantLabel,
		})
	}
	return catalog.BulkAssignRequest{GroupCode: code, GroupName: name, Products: products}
}
