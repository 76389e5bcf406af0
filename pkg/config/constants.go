package config

import "time"

const (
	EnvPrefix = "HOTELSUITE"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv = "HOTELSUITE_APP_ENV"
	EnvPort   = "HOTELSUITE_APP_PORT"

	EnvDBDSN  = "HOTELSUITE_DB_DSN"
	EnvDBHost = "HOTELSUITE_DB_HOST"
	EnvDBUser = "HOTELSUITE_DB_USER"
	EnvDBName = "HOTELSUITE_DB_NAME"

	EnvRedisURL  = "HOTELSUITE_REDIS_URL"
	EnvJWTSecret = "HOTELSUITE_JWT_SECRET"
	EnvJWTIssuer = "HOTELSUITE_JWT_ISSUER"

	EnvAPIBaseURL  = "HOTELSUITE_API_BASE_URL"
	EnvAPITokenKey = "HOTELSUITE_API_TOKEN_KEY"

	EnvDashboardPollInterval = "HOTELSUITE_DASHBOARD_POLL_INTERVAL"
	EnvFurnitureRemote       = "HOTELSUITE_FURNITURE_REMOTE"
)

const (
	FurnitureRemoteDatabase = "database"
	FurnitureRemoteAPI      = "api"
)

// Dashboards refresh on a fixed cadence bounded to this window.
const (
	MinPollInterval = 30 * time.Second
	MaxPollInterval = 60 * time.Second
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
