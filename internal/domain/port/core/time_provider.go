package core

import (
	"time"
)

// TimeProvider abstracts wall-clock time for the domain.
// COB business dates never come from here; they are supplied by the scheduler.
type TimeProvider interface {
	// Now returns the current wall-clock time
	Now() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) time.Duration
}
