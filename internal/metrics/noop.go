package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncAuthFailure is a no-op.
func (n *NoopRecorder) IncAuthFailure(reason string) {}

// IncUserCreated is a no-op.
func (n *NoopRecorder) IncUserCreated() {}

// IncValidationFailure is a no-op.
func (n *NoopRecorder) IncValidationFailure() {}

// IncPanicRecovered is a no-op.
func (n *NoopRecorder) IncPanicRecovered() {}
