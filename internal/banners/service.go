package banners

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/serhatpolat/maktek-admin/internal/audit"
	"github.com/serhatpolat/maktek-admin/internal/cache"
	"github.com/serhatpolat/maktek-admin/pkg/catalog"
	"github.com/serhatpolat/maktek-admin/pkg/errors"
	"github.com/serhatpolat/maktek-admin/pkg/logger"
)

type backend interface {
	ListBanners(ctx context.Context) ([]catalog.Banner, error)
	GetBanner(ctx context.Context, id int64) (*catalog.Banner, error)
	CreateBanner(ctx context.Context, banner *catalog.Banner) (*catalog.Banner, error)
	UpdateBanner(ctx context.Context, id int64, banner *catalog.Banner) (*catalog.Banner, error)
	DeleteBanner(ctx context.Context, id int64) error
}

type Service interface {
	List(ctx context.Context) ([]catalog.Banner, error)
	Get(ctx context.Context, id int64) (*catalog.Banner, error)
	Create(ctx context.Context, banner catalog.Banner) (*catalog.Banner, error)
	Update(ctx context.Context, id int64, banner catalog.Banner) (*catalog.Banner, error)
	Reorder(ctx context.Context, orderedIDs []int64) error
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

// List returns banners sorted by display order.
func (s *service) List(ctx context.Context) ([]catalog.Banner, error) {
	var banners []catalog.Banner
	if s.cache.GetJSON(ctx, cache.RouteBanners, "all", &banners) {
		return banners, nil
	}
	banners, err := s.backend.ListBanners(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(banners, func(i, j int) bool {
		return banners[i].DisplayOrder < banners[j].DisplayOrder
	})
	s.cache.SetJSON(ctx, cache.RouteBanners, "all", banners)
	return banners, nil
}

func (s *service) Get(ctx context.Context, id int64) (*catalog.Banner, error) {
	return s.backend.GetBanner(ctx, id)
}

func (s *service) Create(ctx context.Context, banner catalog.Banner) (*catalog.Banner, error) {
	if err := validate(banner); err != nil {
		return nil, err
	}
	created, err := s.backend.CreateBanner(ctx, &banner)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "create", "banner", strconv.FormatInt(created.ID, 10), created.Title)
	s.invalidate(ctx)
	return created, nil
}

func (s *service) Update(ctx context.Context, id int64, banner catalog.Banner) (*catalog.Banner, error) {
	if err := validate(banner); err != nil {
		return nil, err
	}
	updated, err := s.backend.UpdateBanner(ctx, id, &banner)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "update", "banner", strconv.FormatInt(id, 10), updated.Title)
	s.invalidate(ctx)
	return updated, nil
}

// Reorder rewrites each banner's display order to its position in the
// given id list. Writes run sequentially; the first failure aborts the
// rest so ordering never ends up interleaved between old and new.
func (s *service) Reorder(ctx context.Context, orderedIDs []int64) error {
	if len(orderedIDs) == 0 {
		return errors.New(errors.CodeValidation, "ordered id list is required")
	}
	for position, id := range orderedIDs {
		banner, err := s.backend.GetBanner(ctx, id)
		if err != nil {
			return err
		}
		banner.DisplayOrder = position
		if _, err := s.backend.UpdateBanner(ctx, id, banner); err != nil {
			return err
		}
	}
	s.audit.Record(ctx, "reorder", "banner", "", strconv.Itoa(len(orderedIDs))+" banners")
	s.invalidate(ctx)
	return nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.backend.DeleteBanner(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, "delete", "banner", strconv.FormatInt(id, 10), "")
	s.invalidate(ctx)
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, cache.RouteBanners); err != nil && s.logger != nil {
		s.logger.Warn(ctx, "cache invalidation failed: "+err.Error())
	}
}

func validate(banner catalog.Banner) error {
	if strings.TrimSpace(banner.Title) == "" {
		return errors.New(errors.CodeValidation, "banner title is required")
	}
	if strings.TrimSpace(banner.ImageURL) == "" {
		return errors.New(errors.CodeValidation, "banner image is required")
	}
	return nil
}
