package metrics

import (
	"log/slog"
	"sync/atomic"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	AuthMissingKey     uint64
	AuthInvalidKey     uint64
	UsersCreated       uint64
	ValidationFailures uint64
	PanicsRecovered    uint64
}

// LogValue implements slog.LogValuer so a snapshot logs as a group.
func (s Snapshot) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("auth_missing_key", s.AuthMissingKey),
		slog.Uint64("auth_invalid_key", s.AuthInvalidKey),
		slog.Uint64("users_created", s.UsersCreated),
		slog.Uint64("validation_failures", s.ValidationFailures),
		slog.Uint64("panics_recovered", s.PanicsRecovered),
	)
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	authMissingKey     atomic.Uint64
	authInvalidKey     atomic.Uint64
	usersCreated       atomic.Uint64
	validationFailures atomic.Uint64
	panicsRecovered    atomic.Uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		AuthMissingKey:     m.authMissingKey.Load(),
		AuthInvalidKey:     m.authInvalidKey.Load(),
		UsersCreated:       m.usersCreated.Load(),
		ValidationFailures: m.validationFailures.Load(),
		PanicsRecovered:    m.panicsRecovered.Load(),
	}
}

// IncAuthFailure increments the counter for the given failure reason.
// Unknown reasons are counted as invalid keys.
func (m *InMemoryRecorder) IncAuthFailure(reason string) {
	if reason == ReasonMissingKey {
		m.authMissingKey.Add(1)
		return
	}
	m.authInvalidKey.Add(1)
}

// IncUserCreated increments user created counter.
func (m *InMemoryRecorder) IncUserCreated() {
	m.usersCreated.Add(1)
}

// IncValidationFailure increments validation failure counter.
func (m *InMemoryRecorder) IncValidationFailure() {
	m.validationFailures.Add(1)
}

// IncPanicRecovered increments recovered panic counter.
func (m *InMemoryRecorder) IncPanicRecovered() {
	m.panicsRecovered.Add(1)
}
