package core

import "time"

// Step outcomes reported to metrics
const (
	OutcomeFinished = "finished"
	OutcomeFailed   = "failed"
)

// Metrics records operational measurements of COB steps and their store calls
type Metrics interface {
	// ObserveStep records one step invocation and how long it took
	ObserveStep(step, outcome string, duration time.Duration)
	// AddLocksApplied counts newly written locks for an owner
	AddLocksApplied(owner string, count int)
	// ObserveStoreChunk counts one bounded store call ("read" or "write") and its size
	ObserveStoreChunk(op string, size int)
}
