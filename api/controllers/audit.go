package controllers

import (
	"net/http"
	"strings"

	"github.com/serhatpolat/maktek-admin/api/responses"
	auditsvc "github.com/serhatpolat/maktek-admin/internal/audit"
	"github.com/serhatpolat/maktek-admin/pkg/logger"
	"github.com/serhatpolat/maktek-admin/pkg/pagination"
	"github.com/serhatpolat/maktek-admin/pkg/types"
)

// AuditList returns the audit trail, filterable by actor and entity.
func AuditList(svc auditsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := pagination.FromQuery(r.URL.Query())

		query := auditsvc.ListQuery{
			Actor:  strings.TrimSpace(r.URL.Query().Get("actor")),
			Entity: strings.TrimSpace(r.URL.Query().Get("entity")),
			Params: params,
		}

		entries, total, err := svc.List(r.Context(), query)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, types.PageEnvelope{
			Data:          entries,
			TotalElements: total,
			Page:          params.Page,
			Size:          params.Size,
		})
	}
}
