package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Metrics     MetricsConfig  `mapstructure:"metrics"`
	COB         COBConfig      `mapstructure:"cob"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	AutoMigrate     bool          `mapstructure:"autoMigrate"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// MetricsConfig contains Prometheus exposition settings
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// COBConfig contains close-of-business step settings
type COBConfig struct {
	// InClauseParameterSizeLimit bounds the parameters bound into one read or one write batch
	InClauseParameterSizeLimit int    `mapstructure:"inClauseParameterSizeLimit"`
	TenantIdentifier           string `mapstructure:"tenantIdentifier"`
	TenantTimezone             string `mapstructure:"tenantTimezone"`
}

// Validate checks that the required settings are present and consistent
func (c *Config) Validate() error {
	var missing []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		missing = append(missing, "server.port")
	}
	if c.Database.Driver == "" {
		missing = append(missing, "database.driver")
	}
	if c.Database.Database == "" {
		missing = append(missing, "database.database")
	}
	if c.Database.Driver == "postgres" {
		if c.Database.Host == "" {
			missing = append(missing, "database.host")
		}
		if c.Database.Username == "" {
			missing = append(missing, "database.username")
		}
	}
	if c.COB.InClauseParameterSizeLimit <= 0 {
		missing = append(missing, "cob.inClauseParameterSizeLimit")
	}
	if c.COB.TenantIdentifier == "" {
		missing = append(missing, "cob.tenantIdentifier")
	}

	if len(missing) > 0 {
		return fmt.Errorf("invalid or missing configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
