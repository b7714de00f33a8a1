package categories

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
	ListCategories(ctx context.Context) ([]catalog.Category, error)
	GetCategory(ctx context.Context, id int64) (*catalog.Category, error)
	CreateCategory(ctx context.Context, category *catalog.Category) (*catalog.Category, error)
	UpdateCategory(ctx context.Context, id int64, category *catalog.Category) (*catalog.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type Service interface {
	List(ctx context.Context) ([]catalog.Category, error)
	Get(ctx context.Context, id int64) (*catalog.Category, error)
	Create(ctx context.Context, category catalog.Category) (*catalog.Category, error)
	Update(ctx context.Context, id int64, category catalog.Category) (*catalog.Category, error)
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

func (s *service) List(ctx context.Context) ([]catalog.Category, error) {
	var categories []catalog.Category
	if s.cache.GetJSON(ctx, cache.RouteCategories, "all", &categories) {
		return categories, nil
	}
	categories, err := s.backend.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, cache.RouteCategories, "all", categories)
	return categories, nil
}

func (s *service) Get(ctx context.Context, id int64) (*catalog.Category, error) {
	return s.backend.GetCategory(ctx, id)
}

func (s *service) Create(ctx context.Context, category catalog.Category) (*catalog.Category, error) {
	if strings.TrimSpace(category.Name) == "" {
		return nil, errors.New(errors.CodeValidation, "category name is required")
	}
	created, err := s.backend.CreateCategory(ctx, &category)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "create", "category", strconv.FormatInt(created.ID, 10), created.Name)
	s.invalidate(ctx)
	return created, nil
}

func (s *service) Update(ctx context.Context, id int64, category catalog.Category) (*catalog.Category, error) {
	if strings.TrimSpace(category.Name) == "" {
		return nil, errors.New(errors.CodeValidation, "category name is required")
	}
	updated, err := s.backend.UpdateCategory(ctx, id, &category)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "update", "category", strconv.FormatInt(id, 10), updated.Name)
	s.invalidate(ctx)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.backend.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, "delete", "category", strconv.FormatInt(id, 10), "")
	s.invalidate(ctx)
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, cache.RouteCategories, cache.RouteProducts); err != nil && s.logger != nil {
		s.logger.Warn(ctx, "cache invalidation failed: "+err.Error())
	}
}
