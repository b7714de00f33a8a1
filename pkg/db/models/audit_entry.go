package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry records one admin mutation against the catalog backend.
type AuditEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Actor     string    `gorm:"column:actor;not null;index"`
	Action    string    `gorm:"column:action;not null"`
	Entity    string    `gorm:"column:entity;not null;index"`
	EntityRef string    `gorm:"column:entity_ref"`
	Detail    string    `gorm:"column:detail"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName keeps the table aligned with the migrations.
func (AuditEntry) TableName() string {
	return "audit_entries"
}
