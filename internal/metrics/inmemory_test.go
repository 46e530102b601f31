package metrics

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestInMemoryRecorder_Counts(t *testing.T) {
	m := NewInMemory()

	m.IncAuthFailure(ReasonMissingKey)
	m.IncAuthFailure(ReasonInvalidKey)
	m.IncAuthFailure(ReasonInvalidKey)
	m.IncUserCreated()
	m.IncValidationFailure()
	m.IncValidationFailure()
	m.IncPanicRecovered()

	got := m.Snapshot()
	want := Snapshot{
		AuthMissingKey:     1,
		AuthInvalidKey:     2,
		UsersCreated:       1,
		ValidationFailures: 2,
		PanicsRecovered:    1,
	}

	if got != want {
		t.Errorf("Snapshot() = %+v, want %+v", got, want)
	}
}

func TestInMemoryRecorder_Concurrent(t *testing.T) {
	m := NewInMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.IncUserCreated()
		}()
	}
	wg.Wait()

	if got := m.Snapshot().UsersCreated; got != 50 {
		t.Errorf("UsersCreated = %d, want 50", got)
	}
}

func TestSnapshot_LogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	logger.Info("metrics", slog.Any("metrics", Snapshot{UsersCreated: 4}))

	if !strings.Contains(buf.String(), `"users_created":4`) {
		t.Errorf("expected users_created in log output, got %s", buf.String())
	}
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NewNoop()

	// Must not panic.
	r.IncAuthFailure(ReasonMissingKey)
	r.IncUserCreated()
	r.IncValidationFailure()
	r.IncPanicRecovered()
}
