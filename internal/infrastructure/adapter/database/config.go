package database

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var (
	sqlLogLevels     = []string{"silent", "debug", "info", "warn", "error"}
	postgresSSLModes = []string{"disable", "prefer", "require", "verify-ca", "verify-full"}
)

// Config is the connection and pool configuration of the lock store database
type Config struct {
	Driver          string
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string // file path or URI for sqlite
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	QueryTimeout    time.Duration
	LogLevel        string
	RetryAttempts   int
	RetryDelay      time.Duration
}

// DefaultConfig reads LC_DB_* variables over built-in defaults. Credentials have no default.
func DefaultConfig() *Config {
	return &Config{
		Driver:          envOr("LC_DB_DRIVER", DriverPostgres),
		Host:            os.Getenv("LC_DB_HOST"),
		Port:            envInt("LC_DB_PORT", 5432),
		Username:        os.Getenv("LC_DB_USERNAME"),
		Password:        os.Getenv("LC_DB_PASSWORD"),
		Database:        os.Getenv("LC_DB_NAME"),
		SSLMode:         envOr("LC_DB_SSL_MODE", "disable"),
		MaxOpenConns:    envInt("LC_DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    envInt("LC_DB_MAX_IDLE_CONNS", 25),
		ConnMaxLifetime: time.Duration(envInt("LC_DB_CONN_MAX_LIFETIME_MINUTES", 5)) * time.Minute,
		ConnMaxIdleTime: time.Duration(envInt("LC_DB_CONN_MAX_IDLE_TIME_MINUTES", 5)) * time.Minute,
		QueryTimeout:    time.Duration(envInt("LC_DB_QUERY_TIMEOUT_SECONDS", 30)) * time.Second,
		LogLevel:        envOr("LC_LOGGER_LEVEL", "info"),
		RetryAttempts:   envInt("LC_DB_RETRY_ATTEMPTS", 3),
		RetryDelay:      time.Duration(envInt("LC_DB_RETRY_DELAY_SECONDS", 1)) * time.Second,
	}
}

// Validate reports every problem found in c
func (c *Config) Validate() error {
	var problems []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Errorf(format, args...))
		}
	}

	check(c.Database != "", "database name is required")
	switch c.Driver {
	case DriverPostgres:
		check(c.Host != "", "database host is required")
		check(c.Port > 0 && c.Port <= 65535, "invalid port number: %d", c.Port)
		check(c.Username != "", "database username is required")
		check(slices.Contains(postgresSSLModes, c.SSLMode), "invalid SSL mode: %s", c.SSLMode)
	case DriverSQLite:
	default:
		check(false, "unsupported database driver: %s", c.Driver)
	}

	check(c.MaxOpenConns > 0, "max open connections must be positive, got: %d", c.MaxOpenConns)
	check(c.MaxIdleConns > 0, "max idle connections must be positive, got: %d", c.MaxIdleConns)
	check(c.QueryTimeout > 0, "query timeout must be positive")
	check(c.RetryAttempts >= 0, "retry attempts must be non-negative, got: %d", c.RetryAttempts)
	check(c.RetryDelay >= 0, "retry delay must be non-negative, got: %s", c.RetryDelay)
	check(slices.Contains(sqlLogLevels, c.LogLevel), "invalid log level: %s", c.LogLevel)

	return errors.Join(problems...)
}

// DSN returns the connection string for the configured driver
func (c *Config) DSN() string {
	if c.Driver == DriverSQLite {
		return c.Database
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return n
}
