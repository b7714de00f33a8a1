package audit

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/serhatpolat/maktek-admin/pkg/db/models"
	"github.com/serhatpolat/maktek-admin/pkg/pagination"
)

func setupAuditTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS audit_entries (
  id TEXT PRIMARY KEY,
  actor TEXT NOT NULL,
  action TEXT NOT NULL,
  entity TEXT NOT NULL,
  entity_ref TEXT,
  detail TEXT,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func TestRepositoryCreateAssignsID(t *testing.T) {
	repo := NewRepository(setupAuditTestDB(t))
	ctx := context.Background()

	entry := &models.AuditEntry{
		Actor:     "serhat",
		Action:    "create",
		Entity:    "product",
		EntityRef: "42",
	}
	require.NoError(t, repo.Create(ctx, entry))
	assert.NotEqual(t, uuid.Nil, entry.ID)

	entries, total, err := repo.List(ctx, ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, entries, 1)
	assert.Equal(t, "serhat", entries[0].Actor)
	assert.Equal(t, "product", entries[0].Entity)
	assert.Equal(t, "42", entries[0].EntityRef)
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestRepositoryListFilters(t *testing.T) {
	repo := NewRepository(setupAuditTestDB(t))
	ctx := context.Background()

	seed := []models.AuditEntry{
		{Actor: "serhat", Action: "create", Entity: "product", EntityRef: "1"},
		{Actor: "serhat", Action: "delete", Entity: "brand", EntityRef: "2"},
		{Actor: "ayse", Action: "update", Entity: "product", EntityRef: "3"},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	entries, total, err := repo.List(ctx, ListQuery{Entity: "product"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, entries, 2)

	entries, total, err = repo.List(ctx, ListQuery{Actor: "ayse"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, entries, 1)
	assert.Equal(t, "3", entries[0].EntityRef)
}

func TestRepositoryListPagination(t *testing.T) {
	repo := NewRepository(setupAuditTestDB(t))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &models.AuditEntry{
			Actor:  "serhat",
			Action: "create",
			Entity: "banner",
		}))
	}

	entries, total, err := repo.List(ctx, ListQuery{Params: pagination.Params{Page: 1, Size: 2}})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, entries, 2)

	entries, _, err = repo.List(ctx, ListQuery{Params: pagination.Params{Page: 2, Size: 2}})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
