package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environments, each read from <env>.yaml
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment variable read by the service
const EnvPrefix = "LC"

// ConfigPaths are searched in order for <env>.yaml
var ConfigPaths = []string{"./configs", "../configs", "../../configs"}

// DotEnvPaths are tried in order; the first readable file wins
var DotEnvPaths = []string{".env", "../.env", "../../.env", "./configs/.env", "../configs/.env"}

var errNoDotEnv = errors.New("no .env file found in search paths")

// envKind says how an override variable is parsed
type envKind int

const (
	envString envKind = iota
	// envPositive ignores values that are not integers above zero
	envPositive
	// envNonNegative ignores values that are not integers of zero or more
	envNonNegative
)

// envOverrides map explicit variables to config keys on top of viper's automatic LC_ binding
var envOverrides = []struct {
	env  string
	key  string
	kind envKind
}{
	{"LC_DB_DRIVER", "database.driver", envString},
	{"LC_DB_HOST", "database.host", envString},
	{"LC_DB_PORT", "database.port", envString},
	{"LC_DB_USERNAME", "database.username", envString},
	{"LC_DB_PASSWORD", "database.password", envString},
	{"LC_DB_NAME", "database.database", envString},
	{"LC_DB_SSL_MODE", "database.sslMode", envString},
	{"LC_SERVER_HOST", "server.host", envString},
	{"LC_SERVER_PORT", "server.port", envString},
	{"LC_LOGGER_LEVEL", "logger.level", envString},
	{"LC_LOGGER_FORMAT", "logger.format", envString},
	{"LC_METRICS_PATH", "metrics.path", envString},
	{"LC_COB_TENANT", "cob.tenantIdentifier", envString},
	{"LC_COB_TENANT_TZ", "cob.tenantTimezone", envString},
	{"LC_DB_MAX_OPEN_CONNS", "database.maxOpenConns", envPositive},
	{"LC_DB_MAX_IDLE_CONNS", "database.maxIdleConns", envPositive},
	{"LC_DB_CONN_MAX_LIFETIME_MINUTES", "database.connMaxLifetime", envPositive},
	{"LC_DB_CONN_MAX_IDLE_TIME_MINUTES", "database.connMaxIdleTime", envPositive},
	{"LC_DB_QUERY_TIMEOUT_SECONDS", "database.queryTimeout", envPositive},
	{"LC_COB_IN_CLAUSE_PARAMETER_SIZE_LIMIT", "cob.inClauseParameterSizeLimit", envPositive},
	{"LC_DB_RETRY_ATTEMPTS", "database.retryAttempts", envNonNegative},
	{"LC_DB_RETRY_DELAY_SECONDS", "database.retryDelay", envNonNegative},
}

// LoadConfig loads the configuration of the environment named by LC_ENV, development by default
func LoadConfig() (*Config, error) {
	if err := loadDotEnv(); err != nil && !errors.Is(err, errNoDotEnv) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	env := strings.ToLower(os.Getenv(EnvPrefix + "_ENV"))
	if env == "" {
		env = Development
	}
	return Load(env, ConfigPaths...)
}

// Load reads <env>.yaml from the first matching path, applies defaults and environment
// overrides and validates the result
func Load(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	applyEnvOverrides(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	cfg.Environment = env
	scaleDurations(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadDotEnv() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return godotenv.Load(path)
	}
	return errNoDotEnv
}

// setDefaults covers everything except the database name and credentials.
// Durations are plain numbers in the unit scaleDurations applies.
func setDefaults(v *viper.Viper) {
	defaults := map[string]any{
		"server.host":              "0.0.0.0",
		"server.port":              8080,
		"server.readTimeout":       15,
		"server.writeTimeout":      60,
		"server.idleTimeout":       60,
		"server.readHeaderTimeout": 10,
		"server.shutdownTimeout":   10,

		"database.driver":          "postgres",
		"database.port":            "5432",
		"database.sslMode":         "disable",
		"database.maxOpenConns":    25,
		"database.maxIdleConns":    10,
		"database.connMaxLifetime": 30,
		"database.connMaxIdleTime": 15,
		"database.queryTimeout":    30,
		"database.retryAttempts":   3,
		"database.retryDelay":      1,
		"database.autoMigrate":     true,

		"logger.level":      "info",
		"logger.format":     "json",
		"logger.output":     "stdout",
		"logger.callerInfo": true,

		"metrics.enabled": true,
		"metrics.path":    "/metrics",

		"cob.inClauseParameterSizeLimit": 65000,
		"cob.tenantIdentifier":           "default",
		"cob.tenantTimezone":             "UTC",
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

func applyEnvOverrides(v *viper.Viper) {
	for _, o := range envOverrides {
		raw := os.Getenv(o.env)
		if raw == "" {
			continue
		}
		if o.kind == envString {
			v.Set(o.key, raw)
			continue
		}

		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || (n == 0 && o.kind == envPositive) {
			continue
		}
		v.Set(o.key, n)
	}
}

// scaleDurations turns the raw numbers decoded into duration fields into real durations
func scaleDurations(cfg *Config) {
	scale := func(d *time.Duration, unit time.Duration) { *d *= unit }

	scale(&cfg.Server.ReadTimeout, time.Second)
	scale(&cfg.Server.WriteTimeout, time.Second)
	scale(&cfg.Server.IdleTimeout, time.Second)
	scale(&cfg.Server.ReadHeaderTimeout, time.Second)
	scale(&cfg.Server.ShutdownTimeout, time.Second)
	scale(&cfg.Database.ConnMaxLifetime, time.Minute)
	scale(&cfg.Database.ConnMaxIdleTime, time.Minute)
	scale(&cfg.Database.QueryTimeout, time.Second)
	scale(&cfg.Database.RetryDelay, time.Second)
}
