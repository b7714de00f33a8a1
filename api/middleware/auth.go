package middleware

import (
	"net/http"
	"strings"

	"github.com/serhatpolat/maktek-admin/api/responses"
	pkgauth "github.com/serhatpolat/maktek-admin/pkg/auth"
	"github.com/serhatpolat/maktek-admin/pkg/catalog"
	"github.com/serhatpolat/maktek-admin/pkg/config"
	pkgerrors "github.com/serhatpolat/maktek-admin/pkg/errors"
	"github.com/serhatpolat/maktek-admin/pkg/logger"
)

// Auth establishes the admin session for a request. The token comes from
// the session cookie set at login, with an Authorization header fallback
// for non-browser clients. The verified claims are stored on the context
// and the raw token is forwarded so every catalog call made for this
// request carries it.
func Auth(cfg config.SessionConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r, cfg.CookieName)
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgauth.ParseSessionToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}
			if !claims.IsAdmin() {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "admin role required"))
				return
			}

			ctx := pkgauth.WithClaims(r.Context(), claims)
			ctx = catalog.WithToken(ctx, token)
			if logg != nil {
				ctx = logg.WithActor(ctx, claims.Username)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromRequest(r *http.Request, cookieName string) string {
	if cookie, err := r.Cookie(cookieName); err == nil {
		if token := strings.TrimSpace(cookie.Value); token != "" {
			return token
		}
	}

	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return ""
}
