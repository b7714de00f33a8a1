package auth

import (
	"context"
	"io"
	"testing"

	"github.com/serhatpolat/maktek-admin/pkg/catalog"
	pkgerrors "github.com/serhatpolat/maktek-admin/pkg/errors"
	"github.com/serhatpolat/maktek-admin/pkg/logger"
)

type fakeBackend struct {
	loginErr   error
	loginToken string
	adminErr   error
	adminUser  *catalog.User

	adminMeToken string
}

func (f *fakeBackend) Login(_ context.Context, creds catalog.Credentials) (*catalog.LoginResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &catalog.LoginResponse{Token: f.loginToken}, nil
}

func (f *fakeBackend) AdminMe(ctx context.Context) (*catalog.User, error) {
	f.adminMeToken = catalog.TokenFromContext(ctx)
	if f.adminErr != nil {
		return nil, f.adminErr
	}
	return f.adminUser, nil
}

func newTestService(f *fakeBackend) Service {
	return NewService(f, nil, logger.New(logger.Options{ServiceName: "auth-test", Output: io.Discard}))
}

func TestLoginValidation(t *testing.T) {
	svc := newTestService(&fakeBackend{})

	_, err := svc.Login(context.Background(), LoginInput{Username: " ", Password: "x"})
	if pkgerrors.As(err) == nil || pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLoginVerifiesAdminWithIssuedToken(t *testing.T) {
	f := &fakeBackend{
		loginToken: "issued-token",
		adminUser:  &catalog.User{Username: "serhat", Role: "ADMIN"},
	}
	svc := newTestService(f)

	session, err := svc.Login(context.Background(), LoginInput{Username: "serhat", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if session.Token != "issued-token" {
		t.Fatalf("token = %q, want issued-token", session.Token)
	}
	if f.adminMeToken != "issued-token" {
		t.Fatalf("admin check used token %q, want issued-token", f.adminMeToken)
	}
	if session.User == nil || session.User.Username != "serhat" {
		t.Fatalf("unexpected user: %+v", session.User)
	}
}

func TestLoginRejectsNonAdmin(t *testing.T) {
	f := &fakeBackend{
		loginToken: "issued-token",
		adminErr:   pkgerrors.New(pkgerrors.CodeForbidden, "not an admin"),
	}
	svc := newTestService(f)

	_, err := svc.Login(context.Background(), LoginInput{Username: "user", Password: "pw"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestLoginRejectsEmptyToken(t *testing.T) {
	svc := newTestService(&fakeBackend{loginToken: ""})

	_, err := svc.Login(context.Background(), LoginInput{Username: "serhat", Password: "pw"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLoginPropagatesBackendFailure(t *testing.T) {
	f := &fakeBackend{loginErr: pkgerrors.New(pkgerrors.CodeDependency, "backend down")}
	svc := newTestService(f)

	_, err := svc.Login(context.Background(), LoginInput{Username: "serhat", Password: "pw"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}
