package groups

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
	groups   []catalog.ProductGroup
	products map[int64]catalog.Product
	members  map[int64][]catalog.Product

	bulkAssignErr  error
	updateErr      error
	nextGroupID    int64
	createdGroups  []catalog.ProductGroup
	bulkRequests   []catalog.BulkAssignRequest
	deletedGroups  []int64
	putProducts    []catalog.Product
	getGroupCalls  int
	listGroupCalls int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		products:    map[int64]catalog.Product{},
		members:     map[int64][]catalog.Product{},
		nextGroupID: 10,
	}
}

func (f *fakeBackend) ListGroups(context.Context) ([]catalog.ProductGroup, error) {
	f.listGroupCalls++
	return f.groups, nil
}

func (f *fakeBackend) GetGroup(_ context.Context, id int64) (*catalog.ProductGroup, error) {
	f.getGroupCalls++
	for _, group := range f.groups {
		if group.ID == id {
			found := group
			return &found, nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "group not found")
}

func (f *fakeBackend) CreateGroup(_ context.Context, group *catalog.ProductGroup) (*catalog.ProductGroup, error) {
	f.nextGroupID++
	created := *group
	created.ID = f.nextGroupID
	f.createdGroups = append(f.createdGroups, created)
	f.groups = append(f.groups, created)
	return &created, nil
}

func (f *fakeBackend) UpdateGroup(_ context.Context, id int64, group *catalog.ProductGroup) (*catalog.ProductGroup, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	updated := *group
	updated.ID = id
	return &updated, nil
}

func (f *fakeBackend) DeleteGroup(_ context.Context, id int64) error {
	f.deletedGroups = append(f.deletedGroups, id)
	return nil
}

func (f *fakeBackend) GroupProducts(_ context.Context, id int64) ([]catalog.Product, error) {
	return f.members[id], nil
}

func (f *fakeBackend) BulkAssign(_ context.Context, req catalog.BulkAssignRequest) error {
	if f.bulkAssignErr != nil {
		return f.bulkAssignErr
	}
	f.bulkRequests = append(f.bulkRequests, req)

	group, ok := f.groupByCode(req.GroupCode)
	if !ok {
		f.nextGroupID++
		group = catalog.ProductGroup{ID: f.nextGroupID, GroupCode: req.GroupCode, Name: req.GroupName}
		f.groups = append(f.groups, group)
	}
	for _, item := range req.Products {
		product := f.products[item.ProductID]
		product.Group = &catalog.Ref{ID: group.ID}
		product.VariantLabel = item.VariantLabel
		f.products[item.ProductID] = product
		f.members[group.ID] = append(f.members[group.ID], product)
	}
	return nil
}

func (f *fakeBackend) MutateProduct(_ context.Context, id int64, mutate func(*catalog.Product)) (*catalog.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	mutate(&product)
	f.products[id] = product
	f.putProducts = append(f.putProducts, product)
	return &product, nil
}

func (f *fakeBackend) groupByCode(code string) (catalog.ProductGroup, bool) {
	for _, group := range f.groups {
		if group.GroupCode == code {
			return group, true
		}
	}
	return catalog.ProductGroup{}, false
}

func newTestService(f *fakeBackend) Service {
	logg := logger.New(logger.Options{ServiceName: "groups-test", Output: io.Discard})
	store := cache.New(nil, config.CacheConfig{}, logg)
	return NewService(f, nil, store, logg)
}

func TestCreateWithProductsValidation(t *testing.T) {
	svc := newTestService(newFakeBackend())

	_, err := svc.CreateWithProducts(context.Background(), CreateInput{GroupName: "Torna Grubu"})
	if pkgerrors.As(err) == nil || pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for blank code, got %v", err)
	}

	_, err = svc.CreateWithProducts(context.Background(), CreateInput{GroupCode: "TRN"})
	if pkgerrors.As(err) == nil || pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for blank name, got %v", err)
	}
}

func TestCreateWithEmptyRosterUsesPlainCreate(t *testing.T) {
	f := newFakeBackend()
	svc := newTestService(f)

	created, err := svc.CreateWithProducts(context.Background(), CreateInput{
		GroupCode: "TRN",
		GroupName: "Torna Grubu",
	})
	if err != nil {
		t.Fatalf("CreateWithProducts: %v", err)
	}
	if len(f.createdGroups) != 1 {
		t.Fatalf("created %d groups, want 1", len(f.createdGroups))
	}
	if len(f.bulkRequests) != 0 {
		t.Fatalf("bulk-assign called %d times, want 0", len(f.bulkRequests))
	}
	if created.GroupCode != "TRN" {
		t.Fatalf("group code = %q, want TRN", created.GroupCode)
	}
}

func TestCreateWithRosterBulkAssigns(t *testing.T) {
	f := newFakeBackend()
	f.products[10] = catalog.Product{ID: 10, Code: "8100-13"}
	f.products[11] = catalog.Product{ID: 11, Code: "8100-15"}
	svc := newTestService(f)

	created, err := svc.CreateWithProducts(context.Background(), CreateInput{
		GroupCode: "8100XX",
		GroupName: "Üstten Depo Tabancalar",
		Products: []Member{
			{ProductID: 10, VariantLabel: "1.3mm"},
			{ProductID: 11, VariantLabel: "1.5mm"},
		},
	})
	if err != nil {
		t.Fatalf("CreateWithProducts: %v", err)
	}
	if len(f.bulkRequests) != 1 {
		t.Fatalf("bulk-assign called %d times, want 1", len(f.bulkRequests))
	}
	req := f.bulkRequests[0]
	if req.GroupCode != "8100XX" || req.GroupName != "Üstten Depo Tabancalar" {
		t.Fatalf("unexpected request: %+v", req)
	}
	if len(req.Products) != 2 || req.Products[0].VariantLabel != "1.3mm" || req.Products[1].VariantLabel != "1.5mm" {
		t.Fatalf("unexpected roster: %+v", req.Products)
	}
	if len(f.createdGroups) != 0 {
		t.Fatalf("plain create called %d times, want 0", len(f.createdGroups))
	}

	members, err := svc.Products(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("group has %d members, want 2", len(members))
	}
	labels := map[int64]string{}
	for _, member := range members {
		labels[member.ID] = member.VariantLabel
	}
	if labels[10] != "1.3mm" || labels[11] != "1.5mm" {
		t.Fatalf("unexpected member labels: %v", labels)
	}
}

func TestCreateWithRosterSurfacesAggregateFailure(t *testing.T) {
	f := newFakeBackend()
	f.bulkAssignErr = errors.New("batch rejected")
	svc := newTestService(f)

	_, err := svc.CreateWithProducts(context.Background(), CreateInput{
		GroupCode: "TRN",
		GroupName: "Torna Grubu",
		Products:  []Member{{ProductID: 1, VariantLabel: "a"}},
	})
	if err == nil {
		t.Fatal("expected aggregate failure")
	}
}

func TestAddProductReusesBulkFormat(t *testing.T) {
	f := newFakeBackend()
	f.groups = []catalog.ProductGroup{{ID: 3, GroupCode: "TRN", Name: "Torna Grubu"}}
	f.products[5] = catalog.Product{ID: 5, Code: "TRN-300"}
	svc := newTestService(f)

	if err := svc.AddProduct(context.Background(), 3, 5, "300mm"); err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	if len(f.bulkRequests) != 1 {
		t.Fatalf("bulk-assign called %d times, want 1", len(f.bulkRequests))
	}
	req := f.bulkRequests[0]
	if req.GroupCode != "TRN" || len(req.Products) != 1 {
		t.Fatalf("unexpected request: %+v", req)
	}
	if req.Products[0].ProductID != 5 || req.Products[0].VariantLabel != "300mm" {
		t.Fatalf("unexpected roster entry: %+v", req.Products[0])
	}
}

func TestAddProductFailsWhenGroupMissing(t *testing.T) {
	f := newFakeBackend()
	svc := newTestService(f)

	err := svc.AddProduct(context.Background(), 99, 5, "x")
	if !pkgerrors.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
	if len(f.bulkRequests) != 0 {
		t.Fatal("bulk-assign must not run for a missing group")
	}
}

func TestRemoveProductPreservesOtherFields(t *testing.T) {
	f := newFakeBackend()
	f.products[5] = catalog.Product{
		ID:           5,
		Code:         "TAB-100",
		Name:         "Tabanca",
		Price:        100,
		Stock:        7,
		VariantLabel: "1.3mm",
		Images:       []catalog.ProductImage{{URL: "https://cdn/t.jpg", IsMain: true}},
		Group:        &catalog.Ref{ID: 3},
	}
	svc := newTestService(f)

	if err := svc.RemoveProduct(context.Background(), 5); err != nil {
		t.Fatalf("RemoveProduct: %v", err)
	}

	after := f.products[5]
	if after.Group != nil {
		t.Fatalf("group = %+v, want nil", after.Group)
	}
	if after.Name != "Tabanca" || after.Price != 100 || after.Stock != 7 {
		t.Fatalf("record fields changed: %+v", after)
	}
	if len(after.Images) != 1 {
		t.Fatalf("images = %d, want 1", len(after.Images))
	}
	if len(f.putProducts) != 1 {
		t.Fatalf("put %d records, want 1", len(f.putProducts))
	}
}

func TestRemoveProductMissing(t *testing.T) {
	f := newFakeBackend()
	svc := newTestService(f)

	if err := svc.RemoveProduct(context.Background(), 404); !pkgerrors.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
	if len(f.putProducts) != 0 {
		t.Fatal("no record may be written when the fetch fails")
	}
}

func TestUpdateAndDelete(t *testing.T) {
	f := newFakeBackend()
	svc := newTestService(f)

	updated, err := svc.Update(context.Background(), 3, UpdateInput{GroupCode: "TRN2", Name: "Torna Grubu 2"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.GroupCode != "TRN2" || updated.ID != 3 {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	if _, err := svc.Update(context.Background(), 3, UpdateInput{}); pkgerrors.As(err) == nil {
		t.Fatalf("expected validation error, got %v", err)
	}

	if err := svc.Delete(context.Background(), 3); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(f.deletedGroups) != 1 || f.deletedGroups[0] != 3 {
		t.Fatalf("deleted = %v, want [3]", f.deletedGroups)
	}
}
