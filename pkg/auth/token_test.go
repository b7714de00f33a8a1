package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/serhatpolat/maktek-admin/pkg/config"
)

func mintTestToken(t *testing.T, secret, role string, expiresIn time.Duration) string {
	t.Helper()

	claims := SessionClaims{
		Username: "admin@maktek.local",
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

func TestParseSessionToken(t *testing.T) {
	cfg := config.SessionConfig{JWTSecret: "shared-secret"}

	t.Run("valid admin token", func(t *testing.T) {
		token := mintTestToken(t, "shared-secret", RoleAdmin, time.Hour)
		claims, err := ParseSessionToken(cfg, token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.Username != "admin@maktek.local" {
			t.Fatalf("unexpected username %q", claims.Username)
		}
		if !claims.IsAdmin() {
			t.Fatal("expected admin claims")
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := mintTestToken(t, "other-secret", RoleAdmin, time.Hour)
		if _, err := ParseSessionToken(cfg, token); err == nil {
			t.Fatal("expected signature verification to fail")
		}
	})

	t.Run("expired token", func(t *testing.T) {
		token := mintTestToken(t, "shared-secret", RoleAdmin, -time.Minute)
		if _, err := ParseSessionToken(cfg, token); err == nil {
			t.Fatal("expected expired token to fail")
		}
	})

	t.Run("non-admin role", func(t *testing.T) {
		token := mintTestToken(t, "shared-secret", "USER", time.Hour)
		claims, err := ParseSessionToken(cfg, token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.IsAdmin() {
			t.Fatal("expected non-admin claims")
		}
	})

	t.Run("missing secret", func(t *testing.T) {
		if _, err := ParseSessionToken(config.SessionConfig{}, "whatever"); err == nil {
			t.Fatal("expected error without secret")
		}
	})
}
