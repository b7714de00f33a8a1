package audit

import (
	"context"

	pkgauth "github.com/serhatpolat/maktek-admin/pkg/auth"
	"github.com/serhatpolat/maktek-admin/pkg/db/models"
	"github.com/serhatpolat/maktek-admin/pkg/errors"
	"github.com/serhatpolat/maktek-admin/pkg/logger"
)

// Recorder appends entries to the audit trail. Recording is best-effort:
// a storage failure is logged, never surfaced to the mutation that
// triggered it.
type Recorder interface {
	Record(ctx context.Context, action, entity, entityRef, detail string)
}

// Service exposes the audit trail.
type Service interface {
	Recorder
	List(ctx context.Context, query ListQuery) ([]models.AuditEntry, int64, error)
}

type service struct {
	repo   Repository
	logger *logger.Logger
}

// NewService returns the audit service.
func NewService(repo Repository, logg *logger.Logger) Service {
	return &service{repo: repo, logger: logg}
}

func (s *service) Record(ctx context.Context, action, entity, entityRef, detail string) {
	if s == nil || s.repo == nil {
		return
	}
	entry := &models.AuditEntry{
		Actor:     pkgauth.ActorFromContext(ctx),
		Action:    action,
		Entity:    entity,
		EntityRef: entityRef,
		Detail:    detail,
	}
	if err := s.repo.Create(ctx, entry); err != nil && s.logger != nil {
		ctx = s.logger.WithFields(ctx, map[string]any{
			"action": action,
			"entity": entity,
		})
		s.logger.Error(ctx, "audit record failed", err)
	}
}

func (s *service) List(ctx context.Context, query ListQuery) ([]models.AuditEntry, int64, error) {
	if s == nil || s.repo == nil {
		return nil, 0, errors.New(errors.CodeDependency, "audit storage unavailable")
	}
	return s.repo.List(ctx, query)
}

// NopRecorder discards every entry. Used where auditing is disabled.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, string, string, string, string) {}
