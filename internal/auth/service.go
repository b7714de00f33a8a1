package auth

import (
	"context"
	"strings"

	"github.com/serhatpolat/maktek-admin/pkg/catalog"
	"github.com/serhatpolat/maktek-admin/pkg/errors"
	"github.com/serhatpolat/maktek-admin/pkg/logger"
)

type backend interface {
	Login(ctx context.Context, creds catalog.Credentials) (*catalog.LoginResponse, error)
	AdminMe(ctx context.Context) (*catalog.User, error)
}

// LoginInput is the dashboard login form.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Session is an established admin session: the backend token plus the
// verified account.
type Session struct {
	Token string
	User  *catalog.User
}

type Service interface {
	Login(ctx context.Context, in LoginInput) (*Session, error)
	CurrentUser(ctx context.Context) (*catalog.User, error)
}

type service struct {
	backend backend
	guard   *LoginGuard
	logger  *logger.Logger
}

func NewService(api backend, guard *LoginGuard, logg *logger.Logger) Service {
	return &service{backend: api, guard: guard, logger: logg}
}

// Login exchanges credentials for a backend token, then proves the token
// actually belongs to an admin before handing it out. A token that fails
// the admin check is discarded: no session is established for a
// non-admin account even with valid credentials.
func (s *service) Login(ctx context.Context, in LoginInput) (*Session, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, errors.New(errors.CodeValidation, "username and password are required")
	}

	if s.guard.Blocked(ctx, username) {
		return nil, errors.New(errors.CodeRateLimited, "too many failed login attempts")
	}

	resp, err := s.backend.Login(ctx, catalog.Credentials{Username: username, Password: in.Password})
	if err != nil {
		if typed := errors.As(err); typed != nil && typed.Code() == errors.CodeUnauthorized {
			s.guard.RegisterFailure(ctx, username)
		}
		return nil, err
	}
	if resp.Token == "" {
		return nil, errors.New(errors.CodeUnauthorized, "backend returned no token")
	}

	user, err := s.backend.AdminMe(catalog.WithToken(ctx, resp.Token))
	if err != nil {
		if typed := errors.As(err); typed != nil && (typed.Code() == errors.CodeUnauthorized || typed.Code() == errors.CodeForbidden) {
			return nil, errors.New(errors.CodeForbidden, "account is not an admin")
		}
		return nil, err
	}

	s.guard.Reset(ctx, username)

	if s.logger != nil {
		s.logger.Info(s.logger.WithActor(ctx, username), "admin login")
	}
	return &Session{Token: resp.Token, User: user}, nil
}

func (s *service) CurrentUser(ctx context.Context) (*catalog.User, error) {
	return s.backend.AdminMe(ctx)
}
