package brands

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

type backend interface {
	ListBrands(ctx context.Context) ([]catalog.Brand, error)
	GetBrand(ctx context.Context, id int64) (*catalog.Brand, error)
	CreateBrand(ctx context.Context, brand *catalog.Brand) (*catalog.Brand, error)
	UpdateBrand(ctx context.Context, id int64, brand *catalog.Brand) (*catalog.Brand, error)
	DeleteBrand(ctx context.Context, id int64) error
}

type Service interface {
	List(ctx context.Context) ([]catalog.Brand, error)
	Get(ctx context.Context, id int64) (*catalog.Brand, error)
	Create(ctx context.Context, brand catalog.Brand) (*catalog.Brand, error)
	Update(ctx context.Context, id int64, brand catalog.Brand) (*catalog.Brand, error)
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

func (s *service) List(ctx context.Context) ([]catalog.Brand, error) {
	var brands []catalog.Brand
	if s.cache.GetJSON(ctx, cache.RouteBrands, "all", &brands) {
		return brands, nil
	}
	brands, err := s.backend.ListBrands(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, cache.RouteBrands, "all", brands)
	return brands, nil
}

func (s *service) Get(ctx context.Context, id int64) (*catalog.Brand, error) {
	return s.backend.GetBrand(ctx, id)
}

func (s *service) Create(ctx context.Context, brand catalog.Brand) (*catalog.Brand, error) {
	if strings.TrimSpace(brand.Name) == "" {
		return nil, errors.New(errors.CodeValidation, "brand name is required")
	}
	created, err := s.backend.CreateBrand(ctx, &brand)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "create", "brand", strconv.FormatInt(created.ID, 10), created.Name)
	s.invalidate(ctx)
	return created, nil
}

func (s *service) Update(ctx context.Context, id int64, brand catalog.Brand) (*catalog.Brand, error) {
	if strings.TrimSpace(brand.Name) == "" {
		return nil, errors.New(errors.CodeValidation, "brand name is required")
	}
	updated, err := s.backend.UpdateBrand(ctx, id, &brand)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "update", "brand", strconv.FormatInt(id, 10), updated.Name)
	s.invalidate(ctx)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.backend.DeleteBrand(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, "delete", "brand", strconv.FormatInt(id, 10), "")
	s.invalidate(ctx)
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, cache.RouteBrands, cache.RouteProducts); err != nil && s.logger != nil {
		s.logger.Warn(ctx, "cache invalidation failed: "+err.Error())
	}
}
