package clock

import (
	"time"

	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/core"
)

// System reads the host clock
type System struct{}

var _ core.TimeProvider = System{}

// NewSystem returns the host clock
func NewSystem() System {
	return System{}
}

func (System) Now() time.Time {
	return time.Now()
}

func (System) Since(t time.Time) time.Duration {
	return time.Since(t)
}
