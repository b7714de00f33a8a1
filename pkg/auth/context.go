package auth

import "context"

type claimsKey struct{}

// WithClaims stores the verified session claims on the context.
func WithClaims(ctx context.Context, claims *SessionClaims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext returns the session claims stored by WithClaims.
func ClaimsFromContext(ctx context.Context) *SessionClaims {
	claims, _ := ctx.Value(claimsKey{}).(*SessionClaims)
	return claims
}

// ActorFromContext returns the username of the verified session, or
// "system" when the context carries none.
func ActorFromContext(ctx context.Context) string {
	claims := ClaimsFromContext(ctx)
	if claims == nil || claims.Username == "" {
		return "system"
	}
	return claims.Username
}
