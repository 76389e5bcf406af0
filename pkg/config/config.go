package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	Service      ServiceConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	API          APIConfig
	Furniture    FurnitureConfig
	Scene        SceneConfig
	Dashboard    DashboardConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if err := cfg.Dashboard.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Furniture.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"HOTELSUITE_APP_ENV" required:"true"`
	Port         string `envconfig:"HOTELSUITE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"HOTELSUITE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"HOTELSUITE_LOG_WARN_STACK" default:"false"`
	// CORSOrigins is a comma separated list of renderer origins.
	CORSOrigins []string `envconfig:"HOTELSUITE_CORS_ORIGINS"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"HOTELSUITE_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN    string `envconfig:"HOTELSUITE_DB_DSN"`
	Driver string `envconfig:"HOTELSUITE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"HOTELSUITE_DB_HOST"`
	LegacyPort     int    `envconfig:"HOTELSUITE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"HOTELSUITE_DB_USER"`
	LegacyPassword string `envconfig:"HOTELSUITE_DB_PASSWORD"`
	LegacyName     string `envconfig:"HOTELSUITE_DB_NAME"`
	LegacySSLMode  string `envconfig:"HOTELSUITE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"HOTELSUITE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"HOTELSUITE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"HOTELSUITE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"HOTELSUITE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"HOTELSUITE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"HOTELSUITE_REDIS_ADDR"`
	Password     string        `envconfig:"HOTELSUITE_REDIS_PASSWORD"`
	DB           int           `envconfig:"HOTELSUITE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"HOTELSUITE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"HOTELSUITE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"HOTELSUITE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"HOTELSUITE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"HOTELSUITE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"HOTELSUITE_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"HOTELSUITE_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"HOTELSUITE_JWT_EXPIRATION_MINUTES" default:"60"`
}

// APIConfig describes the REST backend consumed by the resource façades.
type APIConfig struct {
	BaseURL      string        `envconfig:"HOTELSUITE_API_BASE_URL" required:"true"`
	TokenKey     string        `envconfig:"HOTELSUITE_API_TOKEN_KEY" default:"auth_token"`
	LoginPath    string        `envconfig:"HOTELSUITE_API_LOGIN_PATH" default:"/login"`
	Timeout      time.Duration `envconfig:"HOTELSUITE_API_TIMEOUT" default:"15s"`
	RetryCount   int           `envconfig:"HOTELSUITE_API_RETRY_COUNT" default:"0"`
	ServiceToken string        `envconfig:"HOTELSUITE_API_SERVICE_TOKEN"`
}

type FurnitureConfig struct {
	RoomID       string        `envconfig:"HOTELSUITE_FURNITURE_ROOM_ID" default:"main"`
	StorageKey   string        `envconfig:"HOTELSUITE_FURNITURE_STORAGE_KEY" default:"furniture"`
	WriteTimeout time.Duration `envconfig:"HOTELSUITE_FURNITURE_WRITE_TIMEOUT" default:"5s"`
	// Remote selects what LoadFromDatabase reads: the furniture table or the REST collection.
	Remote string `envconfig:"HOTELSUITE_FURNITURE_REMOTE" default:"database"`
}

func (f FurnitureConfig) validate() error {
	switch f.Remote {
	case FurnitureRemoteDatabase, FurnitureRemoteAPI:
		return nil
	}
	return fmt.Errorf("%s must be %q or %q", EnvFurnitureRemote, FurnitureRemoteDatabase, FurnitureRemoteAPI)
}

type SceneConfig struct {
	AssetBaseURL     string        `envconfig:"HOTELSUITE_SCENE_ASSET_BASE_URL" default:"http://localhost:3000/assets"`
	SettleDelay      time.Duration `envconfig:"HOTELSUITE_SCENE_SETTLE_DELAY" default:"500ms"`
	FetchConcurrency int           `envconfig:"HOTELSUITE_SCENE_FETCH_CONCURRENCY" default:"4"`
}

type DashboardConfig struct {
	PollInterval    time.Duration `envconfig:"HOTELSUITE_DASHBOARD_POLL_INTERVAL" default:"30s"`
	EstablishmentID string        `envconfig:"HOTELSUITE_DASHBOARD_ESTABLISHMENT_ID"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"HOTELSUITE_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"HOTELSUITE_AUTO_MIGRATE" default:"false"`
}

// CacheTTL keeps a cached overview alive for two refresh cycles, so one missed
// cycle does not empty the dashboard.
func (d DashboardConfig) CacheTTL() time.Duration {
	return 2 * d.PollInterval
}

func (d DashboardConfig) validate() error {
	if d.PollInterval < MinPollInterval || d.PollInterval > MaxPollInterval {
		return fmt.Errorf("%s must be between %s and %s", EnvDashboardPollInterval, MinPollInterval, MaxPollInterval)
	}
	return nil
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
