package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Backend BackendConfig
	Session SessionConfig
	Redis   RedisConfig
	DB      DBConfig
	Cache   CacheConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MAKTEK_APP_ENV" required:"true"`
	Port         string `envconfig:"MAKTEK_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MAKTEK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MAKTEK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// BackendConfig points at the upstream catalog API every admin operation
// proxies to.
type BackendConfig struct {
	BaseURL string        `envconfig:"MAKTEK_BACKEND_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"MAKTEK_BACKEND_TIMEOUT" default:"30s"`
}

// SessionConfig describes the admin session cookie. The backend signs the
// JWT; we share the secret so the middleware can verify it locally without
// a round trip.
type SessionConfig struct {
	JWTSecret  string        `envconfig:"MAKTEK_JWT_SECRET" required:"true"`
	CookieName string        `envconfig:"MAKTEK_SESSION_COOKIE" default:"token"`
	CookieTTL  time.Duration `envconfig:"MAKTEK_SESSION_COOKIE_TTL" default:"168h"`
}

type RedisConfig struct {
	URL          string        `envconfig:"MAKTEK_REDIS_URL" required:"true"`
	Address      string        `envconfig:"MAKTEK_REDIS_ADDR"`
	Password     string        `envconfig:"MAKTEK_REDIS_PASSWORD"`
	DB           int           `envconfig:"MAKTEK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MAKTEK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MAKTEK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MAKTEK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MAKTEK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MAKTEK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// DBConfig configures the local audit database. Postgres in prod; sqlite
// behind a flag for local development.
type DBConfig struct {
	DSN        string `envconfig:"MAKTEK_DB_DSN"`
	UseSQLite  bool   `envconfig:"MAKTEK_DB_USE_SQLITE" default:"false"`
	SQLitePath string `envconfig:"MAKTEK_DB_SQLITE_PATH" default:"maktek-admin.db"`

	Host     string `envconfig:"MAKTEK_DB_HOST"`
	Port     int    `envconfig:"MAKTEK_DB_PORT" default:"5432"`
	User     string `envconfig:"MAKTEK_DB_USER"`
	Password string `envconfig:"MAKTEK_DB_PASSWORD"`
	Name     string `envconfig:"MAKTEK_DB_NAME"`
	SSLMode  string `envconfig:"MAKTEK_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MAKTEK_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"MAKTEK_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"MAKTEK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MAKTEK_DB_CONN_MAX_IDLE_TIME" default:"10m"`

	AutoMigrate bool `envconfig:"MAKTEK_DB_AUTO_MIGRATE" default:"false"`
}

type CacheConfig struct {
	Enabled bool          `envconfig:"MAKTEK_CACHE_ENABLED" default:"true"`
	TTL     time.Duration `envconfig:"MAKTEK_CACHE_TTL" default:"60s"`
}

func (db *DBConfig) ensureDSN() error {
	if db.UseSQLite || db.DSN != "" {
		return nil
	}

	missing := []string{}
	values := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range requiredDBEnvVars {
		if values[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
