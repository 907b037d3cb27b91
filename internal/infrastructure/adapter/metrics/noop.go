package metrics

import (
	"time"

	coreport "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/core"
)

// NoopMetrics discards every observation
type NoopMetrics struct{}

var _ coreport.Metrics = NoopMetrics{}

// NewNoopMetrics returns a Metrics that records nothing
func NewNoopMetrics() NoopMetrics {
	return NoopMetrics{}
}

// ObserveStep does nothing
func (NoopMetrics) ObserveStep(string, string, time.Duration) {}

// AddLocksApplied does nothing
func (NoopMetrics) AddLocksApplied(string, int) {}

// ObserveStoreChunk does nothing
func (NoopMetrics) ObserveStoreChunk(string, int) {}
