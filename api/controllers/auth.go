package controllers

import (
	"net/http"

	"github.com/serhatpolat/maktek-admin/api/responses"
	"github.com/serhatpolat/maktek-admin/api/validators"
	authsvc "github.com/serhatpolat/maktek-admin/internal/auth"
	"github.com/serhatpolat/maktek-admin/pkg/config"
	pkgerrors "github.com/serhatpolat/maktek-admin/pkg/errors"
	"github.com/serhatpolat/maktek-admin/pkg/logger"
)

// AuthLogin verifies credentials against the catalog backend and, when
// the account is an admin, stores the backend token in an http-only
// session cookie.
func AuthLogin(svc authsvc.Service, cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload authsvc.LoginInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.Login(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		http.SetCookie(w, sessionCookie(cfg, session.Token, int(cfg.Session.CookieTTL.Seconds())))
		responses.WriteSuccess(w, session.User)
	}
}

// AuthLogout clears the session cookie. The backend token itself is
// stateless; there is nothing to revoke server-side.
func AuthLogout(cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, sessionCookie(cfg, "", -1))
		responses.WriteSuccess(w, map[string]bool{"loggedOut": true})
	}
}

// AuthMe returns the authenticated admin account.
func AuthMe(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.CurrentUser(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, user)
	}
}

func sessionCookie(cfg *config.Config, token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.Session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   cfg.App.IsProd(),
		SameSite: http.SameSiteLaxMode,
	}
}
