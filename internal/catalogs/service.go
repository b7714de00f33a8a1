package catalogs

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
	ListCatalogs(ctx context.Context) ([]catalog.Catalog, error)
	GetCatalog(ctx context.Context, id int64) (*catalog.Catalog, error)
	CreateCatalog(ctx context.Context, cat *catalog.Catalog) (*catalog.Catalog, error)
	UpdateCatalog(ctx context.Context, id int64, cat *catalog.Catalog) (*catalog.Catalog, error)
	DeleteCatalog(ctx context.Context, id int64) error
}

type Service interface {
	List(ctx context.Context) ([]catalog.Catalog, error)
	Get(ctx context.Context, id int64) (*catalog.Catalog, error)
	Create(ctx context.Context, cat catalog.Catalog) (*catalog.Catalog, error)
	Update(ctx context.Context, id int64, cat catalog.Catalog) (*catalog.Catalog, error)
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

func (s *service) List(ctx context.Context) ([]catalog.Catalog, error) {
	var catalogs []catalog.Catalog
	if s.cache.GetJSON(ctx, cache.RouteCatalogs, "all", &catalogs) {
		return catalogs, nil
	}
	catalogs, err := s.backend.ListCatalogs(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, cache.RouteCatalogs, "all", catalogs)
	return catalogs, nil
}

func (s *service) Get(ctx context.Context, id int64) (*catalog.Catalog, error) {
	return s.backend.GetCatalog(ctx, id)
}

func (s *service) Create(ctx context.Context, cat catalog.Catalog) (*catalog.Catalog, error) {
	if err := validate(cat); err != nil {
		return nil, err
	}
	created, err := s.backend.CreateCatalog(ctx, &cat)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "create", "catalog", strconv.FormatInt(created.ID, 10), created.Title)
	s.invalidate(ctx)
	return created, nil
}

func (s *service) Update(ctx context.Context, id int64, cat catalog.Catalog) (*catalog.Catalog, error) {
	if err := validate(cat); err != nil {
		return nil, err
	}
	updated, err := s.backend.UpdateCatalog(ctx, id, &cat)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "update", "catalog", strconv.FormatInt(id, 10), updated.Title)
	s.invalidate(ctx)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.backend.DeleteCatalog(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, "delete", "catalog", strconv.FormatInt(id, 10), "")
	s.invalidate(ctx)
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, cache.RouteCatalogs); err != nil && s.logger != nil {
		s.logger.Warn(ctx, "cache invalidation failed: "+err.Error())
	}
}

func validate(cat catalog.Catalog) error {
	if strings.TrimSpace(cat.Title) == "" {
		return errors.New(errors.CodeValidation, "catalog title is required")
	}
	if strings.TrimSpace(cat.FileURL) == "" {
		return errors.New(errors.CodeValidation, "catalog file is required")
	}
	return nil
}
