package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "MENUFORGE_DB_DSN"
	EnvDBHost = "MENUFORGE_DB_HOST"
	EnvDBUser = "MENUFORGE_DB_USER"
	EnvDBName = "MENUFORGE_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	Server       ServerConfig
	DB           DBConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if !cfg.FeatureFlags.UseSQLite {
		if err := cfg.DB.ensureDSN(); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MENUFORGE_APP_ENV" default:"dev"`
	Port         string `envconfig:"MENUFORGE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"MENUFORGE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MENUFORGE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServerConfig struct {
	ReadTimeout  time.Duration `envconfig:"MENUFORGE_SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"MENUFORGE_SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `envconfig:"MENUFORGE_SERVER_IDLE_TIMEOUT" default:"60s"`
}

type DBConfig struct {
	DSN string `envconfig:"MENUFORGE_DB_DSN"`

	LegacyHost     string `envconfig:"MENUFORGE_DB_HOST"`
	LegacyPort     int    `envconfig:"MENUFORGE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MENUFORGE_DB_USER"`
	LegacyPassword string `envconfig:"MENUFORGE_DB_PASSWORD"`
	LegacyName     string `envconfig:"MENUFORGE_DB_NAME"`
	LegacySSLMode  string `envconfig:"MENUFORGE_DB_SSLMODE" default:"disable"`

	SQLitePath string `envconfig:"MENUFORGE_SQLITE_PATH" default:"menuforge.db"`

	MaxOpenConns    int           `envconfig:"MENUFORGE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MENUFORGE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MENUFORGE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MENUFORGE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"MENUFORGE_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"MENUFORGE_AUTO_MIGRATE" default:"false"`
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
