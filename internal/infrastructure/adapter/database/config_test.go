package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/loan-cob-lock/internal/infrastructure/config"
)

func validPostgresConfig() *Config {
	return &Config{
		Driver:       DriverPostgres,
		Host:         "localhost",
		Port:         5432,
		Username:     "fineract",
		Database:     "fineract_tenant",
		SSLMode:      "disable",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
		QueryTimeout: time.Second,
		LogLevel:     "info",
	}
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid postgres", func(c *Config) {}, ""},
		{"missing name", func(c *Config) { c.Database = "" }, "database name is required"},
		{"missing host", func(c *Config) { c.Host = "" }, "database host is required"},
		{"bad port", func(c *Config) { c.Port = 70000 }, "invalid port number: 70000"},
		{"missing username", func(c *Config) { c.Username = "" }, "database username is required"},
		{"bad ssl mode", func(c *Config) { c.SSLMode = "always" }, "invalid SSL mode: always"},
		{"unknown driver", func(c *Config) { c.Driver = "oracle" }, "unsupported database driver: oracle"},
		{"no open conns", func(c *Config) { c.MaxOpenConns = 0 }, "max open connections must be positive, got: 0"},
		{"no timeout", func(c *Config) { c.QueryTimeout = 0 }, "query timeout must be positive"},
		{"negative retries", func(c *Config) { c.RetryAttempts = -1 }, "retry attempts must be non-negative, got: -1"},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }, "invalid log level: trace"},
		{"sqlite needs no host", func(c *Config) {
			c.Driver = DriverSQLite
			c.Host = ""
			c.Username = ""
		}, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := validPostgresConfig()
			tc.mutate(c)

			err := c.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.wantErr)
		})
	}
}

func TestConfigDSN(t *testing.T) {
	c := validPostgresConfig()
	c.Password = "secret"
	assert.Equal(t, "host=localhost port=5432 user=fineract password=secret dbname=fineract_tenant sslmode=disable", c.DSN())

	sqliteConfig := NewTestSQLiteConfig()
	assert.Equal(t, sqliteConfig.Database, sqliteConfig.DSN())
	assert.NoError(t, sqliteConfig.Validate())
}

func TestDefaultConfig_ReadsEnvironment(t *testing.T) {
	t.Setenv("LC_DB_DRIVER", "sqlite")
	t.Setenv("LC_DB_NAME", "locks.db")
	t.Setenv("LC_DB_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("LC_DB_RETRY_DELAY_SECONDS", "2")

	c := DefaultConfig()

	assert.Equal(t, DriverSQLite, c.Driver)
	assert.Equal(t, "locks.db", c.Database)
	assert.Equal(t, 25, c.MaxOpenConns)
	assert.Equal(t, 2*time.Second, c.RetryDelay)
}

func TestCreateConfigFromAppConfig(t *testing.T) {
	for _, key := range []string{"LC_DB_DRIVER", "LC_DB_HOST", "LC_DB_USERNAME", "LC_DB_PASSWORD", "LC_DB_NAME"} {
		t.Setenv(key, "")
	}

	appConfig := &config.Config{}
	appConfig.Database.Driver = DriverPostgres
	appConfig.Database.Host = "db.internal"
	appConfig.Database.Port = "6543"
	appConfig.Database.Username = "cob"
	appConfig.Database.Database = "tenant_default"
	appConfig.Database.MaxOpenConns = 40
	appConfig.Database.QueryTimeout = 3 * time.Second
	appConfig.Logger.Level = "warn"

	c := CreateConfigFromAppConfig(appConfig)

	require.NotNil(t, c)
	assert.Equal(t, "db.internal", c.Host)
	assert.Equal(t, 6543, c.Port)
	assert.Equal(t, "cob", c.Username)
	assert.Equal(t, "tenant_default", c.Database)
	assert.Equal(t, 40, c.MaxOpenConns)
	assert.Equal(t, 3*time.Second, c.QueryTimeout)
	assert.Equal(t, "warn", c.LogLevel)
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Zero(t, ParsePort(""))
	assert.Zero(t, ParsePort("0"))
	assert.Zero(t, ParsePort("99999"))
	assert.Zero(t, ParsePort("pg"))
}

func TestConfigValidate_ReportsEveryProblem(t *testing.T) {
	c := validPostgresConfig()
	c.Host = ""
	c.MaxIdleConns = 0

	err := c.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database host is required")
	assert.Contains(t, err.Error(), "max idle connections must be positive, got: 0")
}
