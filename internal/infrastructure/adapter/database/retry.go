package database

import (
	"context"
	"math/rand"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/core"
)

// connectRetry is the backoff policy used while opening the pool.
// Lock store calls are never retried.
type connectRetry struct {
	Attempts int
	Initial  time.Duration
	Max      time.Duration
	// Jitter adds up to this share of the delay at random (0.0-1.0)
	Jitter float64
}

func defaultConnectRetry() connectRetry {
	return connectRetry{
		Attempts: 3,
		Initial:  time.Second,
		Max:      10 * time.Second,
		Jitter:   0.2,
	}
}

// backoff returns the delay before retry number attempt (zero based)
func (p connectRetry) backoff(attempt int) time.Duration {
	delay := p.Initial << uint(attempt)
	if p.Max > 0 && (delay > p.Max || delay <= 0) {
		delay = p.Max
	}
	if p.Jitter > 0 {
		delay += time.Duration(float64(delay) * p.Jitter * rand.Float64())
	}
	return delay
}

// do calls connect until it succeeds, fails permanently or runs out of attempts
func (p connectRetry) do(ctx context.Context, log coreport.Logger, connect func() error) error {
	attempts := max(p.Attempts, 1)

	for attempt := 1; ; attempt++ {
		err := connect()
		if err == nil {
			return nil
		}
		if attempt >= attempts || !isRetryableConnectError(err) {
			return err
		}

		delay := p.backoff(attempt - 1)
		log.Warn("Database connection failed, retrying", map[string]any{
			"attempt":     attempt,
			"attempts":    attempts,
			"error":       err.Error(),
			"retry_after": delay.String(),
		})

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

var retryableConnectErrors = []string{
	"connection reset",
	"connection refused",
	"timeout",
	"too many connections",
	"the database system is starting up",
	"server closed",
	"broken pipe",
	"no such host",
	"eof",
}

func isRetryableConnectError(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, fragment := range retryableConnectErrors {
		if strings.Contains(msg, fragment) {
			return true
		}
	}
	return false
}
