package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErr "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/error"
)

// ErrNotConnected is returned when the manager is used before Connect
var ErrNotConnected = errors.New("database not connected")

var connectionFailures = []string{
	"connection refused",
	"connection reset",
	"no connection",
	"database is closed",
	"no such host",
}

// toDomainError translates a driver error raised during op into a domain error
func toDomainError(err error, op string) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())
	timedOut := errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) ||
		strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded")

	switch {
	case timedOut:
		return fmt.Errorf("%w: %s timed out", domainErr.ErrDatabaseConnection, op)
	case strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint"):
		return domainErr.ErrDuplicateLock
	}
	for _, fragment := range connectionFailures {
		if strings.Contains(msg, fragment) {
			return domainErr.ErrDatabaseConnection
		}
	}
	return domainErr.ErrInternalServer
}
