package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the role claim value the backend assigns to admin users.
const RoleAdmin = "ADMIN"

// SessionClaims is the shape of the JWT the catalog backend issues at login.
// The admin service never mints these; it only verifies them.
type SessionClaims struct {
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// IsAdmin reports whether the claims carry the admin role.
func (c *SessionClaims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}
