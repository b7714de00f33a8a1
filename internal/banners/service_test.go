package banners

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/serhatpolat/maktek-admin/internal/cache"
	"github.com/serhatpolat/maktek-admin/pkg/catalog"
	"github.com/serhatpolat/maktek-admin/pkg/config"
	pkgerrors "github.com/serhatpolat/maktek-admin/pkg/errors"
	"github.com/serhatpolat/maktek-admin/pkg/logger"
)

type fakeBackend struct {
	banners   map[int64]catalog.Banner
	updateErr map[int64]error
	updates   []catalog.Banner
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{banners: map[int64]catalog.Banner{}, updateErr: map[int64]error{}}
}

func (f *fakeBackend) ListBanners(context.Context) ([]catalog.Banner, error) {
	out := make([]catalog.Banner, 0, len(f.banners))
	for _, banner := range f.banners {
		out = append(out, banner)
	}
	return out, nil
}

func (f *fakeBackend) GetBanner(_ context.Context, id int64) (*catalog.Banner, error) {
	banner, ok := f.banners[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "banner not found")
	}
	return &banner, nil
}

func (f *fakeBackend) CreateBanner(_ context.Context, banner *catalog.Banner) (*catalog.Banner, error) {
	created := *banner
	created.ID = int64(len(f.banners) + 1)
	f.banners[created.ID] = created
	return &created, nil
}

func (f *fakeBackend) UpdateBanner(_ context.Context, id int64, banner *catalog.Banner) (*catalog.Banner, error) {
	if err := f.updateErr[id]; err != nil {
		return nil, err
	}
	updated := *banner
	updated.ID = id
	f.banners[id] = updated
	f.updates = append(f.updates, updated)
	return &updated, nil
}

func (f *fakeBackend) DeleteBanner(_ context.Context, id int64) error {
	delete(f.banners, id)
	return nil
}

func newTestService(f *fakeBackend) Service {
	logg := logger.New(logger.Options{ServiceName: "banners-test", Output: io.Discard})
	return NewService(f, nil, cache.New(nil, config.CacheConfig{}, logg), logg)
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(newFakeBackend())
	ctx := context.Background()

	if _, err := svc.Create(ctx, catalog.Banner{ImageURL: "https://cdn/x.jpg"}); pkgerrors.As(err) == nil {
		t.Fatalf("expected validation error for missing title, got %v", err)
	}
	if _, err := svc.Create(ctx, catalog.Banner{Title: "Kampanya"}); pkgerrors.As(err) == nil {
		t.Fatalf("expected validation error for missing image, got %v", err)
	}
}

func TestListSortsByDisplayOrder(t *testing.T) {
	f := newFakeBackend()
	f.banners[1] = catalog.Banner{ID: 1, Title: "b", DisplayOrder: 2}
	f.banners[2] = catalog.Banner{ID: 2, Title: "a", DisplayOrder: 0}
	f.banners[3] = catalog.Banner{ID: 3, Title: "c", DisplayOrder: 1}
	svc := newTestService(f)

	banners, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for i, banner := range banners {
		if banner.DisplayOrder != i {
			t.Fatalf("position %d has displayOrder %d", i, banner.DisplayOrder)
		}
	}
}

func TestReorderRewritesPositions(t *testing.T) {
	f := newFakeBackend()
	f.banners[1] = catalog.Banner{ID: 1, Title: "a", ImageURL: "x", DisplayOrder: 0}
	f.banners[2] = catalog.Banner{ID: 2, Title: "b", ImageURL: "x", DisplayOrder: 1}
	svc := newTestService(f)

	if err := svc.Reorder(context.Background(), []int64{2, 1}); err != nil {
		t.Fatalf("Reorder: %v", err)
	}
	if f.banners[2].DisplayOrder != 0 || f.banners[1].DisplayOrder != 1 {
		t.Fatalf("unexpected order: %+v", f.banners)
	}
}

func TestReorderStopsOnFirstFailure(t *testing.T) {
	f := newFakeBackend()
	f.banners[1] = catalog.Banner{ID: 1, Title: "a", ImageURL: "x"}
	f.banners[2] = catalog.Banner{ID: 2, Title: "b", ImageURL: "x", DisplayOrder: 1}
	f.updateErr[1] = errors.New("backend down")
	svc := newTestService(f)

	if err := svc.Reorder(context.Background(), []int64{1, 2}); err == nil {
		t.Fatal("expected failure")
	}
	if len(f.updates) != 0 {
		t.Fatalf("updates after failed first write = %d, want 0", len(f.updates))
	}
}
