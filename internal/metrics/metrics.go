// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Auth failure reasons.
const (
	ReasonMissingKey = "missing_key"
	ReasonInvalidKey = "invalid_key"
)

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Authentication gate
	IncAuthFailure(reason string) // reason: "missing_key" or "invalid_key"

	// User endpoints
	IncUserCreated()
	IncValidationFailure()

	// Error mapping
	IncPanicRecovered()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
