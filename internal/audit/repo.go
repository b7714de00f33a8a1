package audit

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/serhatpolat/maktek-admin/pkg/db/models"
	"github.com/serhatpolat/maktek-admin/pkg/pagination"
)

// Repository handles audit trail persistence.
type Repository interface {
	Create(ctx context.Context, entry *models.AuditEntry) error
	List(ctx context.Context, query ListQuery) ([]models.AuditEntry, int64, error)
}

// ListQuery filters the audit trail.
type ListQuery struct {
	Actor  string
	Entity string
	Params pagination.Params
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns an audit repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, entry *models.AuditEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) List(ctx context.Context, query ListQuery) ([]models.AuditEntry, int64, error) {
	params := query.Params.Normalize()

	scope := r.db.WithContext(ctx).Model(&models.AuditEntry{})
	if query.Actor != "" {
		scope = scope.Where("actor = ?", query.Actor)
	}
	if query.Entity != "" {
		scope = scope.Where("entity = ?", query.Entity)
	}

	var total int64
	if err := scope.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []models.AuditEntry
	if err := scope.
		Order("created_at DESC").
		Offset(params.Page * params.Size).
		Limit(params.Size).
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
