package database

import (
	"strconv"

	"github.com/amirhossein-jamali/loan-cob-lock/internal/infrastructure/config"
)

// CreateConfigFromAppConfig layers the application configuration over DefaultConfig.
// Connection identity already set through LC_DB_* variables wins over the file.
func CreateConfigFromAppConfig(conf *config.Config) *Config {
	c := DefaultConfig()
	db := conf.Database

	c.Driver = firstNonZero(db.Driver, c.Driver)
	c.Host = firstNonZero(c.Host, db.Host)
	c.Username = firstNonZero(c.Username, db.Username)
	c.Password = firstNonZero(c.Password, db.Password)
	c.Database = firstNonZero(c.Database, db.Database)
	c.SSLMode = firstNonZero(db.SSLMode, c.SSLMode)
	c.LogLevel = firstNonZero(conf.Logger.Level, c.LogLevel)
	if port := ParsePort(db.Port); port > 0 {
		c.Port = port
	}

	overridePositive(&c.MaxOpenConns, db.MaxOpenConns)
	overridePositive(&c.MaxIdleConns, db.MaxIdleConns)
	overridePositive(&c.ConnMaxLifetime, db.ConnMaxLifetime)
	overridePositive(&c.ConnMaxIdleTime, db.ConnMaxIdleTime)
	overridePositive(&c.QueryTimeout, db.QueryTimeout)
	overridePositive(&c.RetryDelay, db.RetryDelay)
	if db.RetryAttempts >= 0 {
		c.RetryAttempts = db.RetryAttempts
	}

	return c
}

// firstNonZero returns the first of its arguments that is not the zero value
// (same semantics as cmp.Or, which requires Go 1.22)
func firstNonZero[T comparable](vals ...T) T {
	var zero T
	for _, v := range vals {
		if v != zero {
			return v
		}
	}
	return zero
}

func overridePositive[T ~int | ~int64](dst *T, v T) {
	if v > 0 {
		*dst = v
	}
}

// ParsePort returns port as a number, or 0 when it is not a valid TCP port
func ParsePort(port string) int {
	p, err := strconv.Atoi(port)
	if err != nil || p <= 0 || p > 65535 {
		return 0
	}
	return p
}
