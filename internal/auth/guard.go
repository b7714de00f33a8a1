package auth

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/serhatpolat/maktek-admin/pkg/logger"
)

const (
	// maxLoginFailures locks an account name out of login attempts until
	// the failure window expires or a login succeeds.
	maxLoginFailures = 5
	loginFailWindow  = 15 * time.Minute
)

// counterStore is the slice of the redis client the guard depends on.
type counterStore interface {
	Get(ctx context.Context, key string) (string, error)
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CounterKey(name string) string
}

// LoginGuard throttles repeated failed logins per account name using a
// fixed-window redis counter. Redis failures fail open: the guard must
// never lock out admins because redis is down.
type LoginGuard struct {
	store  counterStore
	logger *logger.Logger
}

func NewLoginGuard(store counterStore, logg *logger.Logger) *LoginGuard {
	if store == nil {
		return nil
	}
	return &LoginGuard{store: store, logger: logg}
}

func (g *LoginGuard) key(username string) string {
	return g.store.CounterKey("login_fail:" + strings.ToLower(username))
}

// Blocked reports whether the account name has exhausted its failure
// budget for the current window.
func (g *LoginGuard) Blocked(ctx context.Context, username string) bool {
	if g == nil {
		return false
	}

	raw, err := g.store.Get(ctx, g.key(username))
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			g.warn(ctx, "login guard read failed", err)
		}
		return false
	}
	count, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false
	}
	return count >= maxLoginFailures
}

// RegisterFailure counts one failed attempt, starting the window on the
// first failure.
func (g *LoginGuard) RegisterFailure(ctx context.Context, username string) {
	if g == nil {
		return
	}

	key := g.key(username)
	count, err := g.store.Incr(ctx, key)
	if err != nil {
		g.warn(ctx, "login guard increment failed", err)
		return
	}
	if count == 1 {
		if err := g.store.Expire(ctx, key, loginFailWindow); err != nil {
			g.warn(ctx, "login guard expire failed", err)
		}
	}
}

// Reset clears the failure counter after a successful login.
func (g *LoginGuard) Reset(ctx context.Context, username string) {
	if g == nil {
		return
	}
	if err := g.store.Del(ctx, g.key(username)); err != nil {
		g.warn(ctx, "login guard reset failed", err)
	}
}

func (g *LoginGuard) warn(ctx context.Context, msg string, err error) {
	if g.logger == nil {
		return
	}
	g.logger.Warn(ctx, msg+": "+err.Error())
}
