package config

// EnvPrefix is passed to envconfig; individual fields carry full names so
// the prefix only matters for unannotated fields.
const EnvPrefix = "MAKTEK"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv         = "MAKTEK_APP_ENV"
	EnvPort           = "MAKTEK_APP_PORT"
	EnvBackendBaseURL = "MAKTEK_BACKEND_BASE_URL"
	EnvJWTSecret      = "MAKTEK_JWT_SECRET"
	EnvRedisURL       = "MAKTEK_REDIS_URL"
	EnvDBDSN          = "MAKTEK_DB_DSN"
	EnvDBHost         = "MAKTEK_DB_HOST"
	EnvDBUser         = "MAKTEK_DB_USER"
	EnvDBName         = "MAKTEK_DB_NAME"
	EnvDBUseSQLite    = "MAKTEK_DB_USE_SQLITE"
)

var requiredDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
