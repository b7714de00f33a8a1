package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/multierr"

	"github.com/serhatpolat/maktek-admin/pkg/config"
	"github.com/serhatpolat/maktek-admin/pkg/logger"
)

// Route names for the cached list endpoints.
const (
	RouteProducts   = "products"
	RouteGroups     = "product-groups"
	RouteBrands     = "brands"
	RouteCategories = "categories"
	RouteBanners    = "banners"
	RouteCatalogs   = "catalogs"
)

// Invalidator drops every cached entry for the named routes.
type Invalidator interface {
	Invalidate(ctx context.Context, routes ...string) error
}

type store interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Incr(ctx context.Context, key string) (int64, error)
	CacheVersionKey(route string) string
	CacheEntryKey(route string, version int64, digest string) string
}

// Cache is a versioned read-through cache over redis. Entry keys embed a
// per-route version counter; invalidation bumps the counter so stale
// entries are simply never read again and age out via TTL.
type Cache struct {
	store   store
	ttl     time.Duration
	enabled bool
	logger  *logger.Logger
}

// New builds the cache. A nil store disables caching entirely.
func New(st store, cfg config.CacheConfig, logg *logger.Logger) *Cache {
	enabled := cfg.Enabled && st != nil
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Cache{store: st, ttl: ttl, enabled: enabled, logger: logg}
}

// GetJSON loads the cached body for (route, digest) into out. It reports
// whether a fresh entry was found. Cache errors degrade to a miss.
func (c *Cache) GetJSON(ctx context.Context, route, digest string, out any) bool {
	if c == nil || !c.enabled {
		return false
	}
	version, err := c.version(ctx, route)
	if err != nil {
		c.warn(ctx, route, err)
		return false
	}
	raw, err := c.store.Get(ctx, c.store.CacheEntryKey(route, version, digest))
	if err != nil {
		if err != goredis.Nil {
			c.warn(ctx, route, err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		c.warn(ctx, route, err)
		return false
	}
	return true
}

// SetJSON stores value under (route, digest) at the route's current
// version. Failures are logged and swallowed: the cache is advisory.
func (c *Cache) SetJSON(ctx context.Context, route, digest string, value any) {
	if c == nil || !c.enabled {
		return
	}
	version, err := c.version(ctx, route)
	if err != nil {
		c.warn(ctx, route, err)
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.warn(ctx, route, err)
		return
	}
	if err := c.store.Set(ctx, c.store.CacheEntryKey(route, version, digest), string(raw), c.ttl); err != nil {
		c.warn(ctx, route, err)
	}
}

// Invalidate bumps the version counter for each route. All routes are
// attempted; failures are aggregated.
func (c *Cache) Invalidate(ctx context.Context, routes ...string) error {
	if c == nil || !c.enabled {
		return nil
	}
	var errs error
	for _, route := range routes {
		if _, err := c.store.Incr(ctx, c.store.CacheVersionKey(route)); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

func (c *Cache) version(ctx context.Context, route string) (int64, error) {
	raw, err := c.store.Get(ctx, c.store.CacheVersionKey(route))
	if err == goredis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	version, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return version, nil
}

func (c *Cache) warn(ctx context.Context, route string, err error) {
	if c.logger == nil {
		return
	}
	ctx = c.logger.WithField(ctx, "route", route)
	c.logger.Warn(ctx, "cache degraded: "+err.Error())
}
