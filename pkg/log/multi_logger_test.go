package log

import (
	"testing"

	"github.com/stretchr/testify/mock"
)

// mockLogger records events for testing
type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Log(event Event) {
	m.Called(event)
}

func TestMultiLoggerCallsAll(t *testing.T) {
	event := sampleEvent("req-1", OpListTimers, 200)

	m1 := &mockLogger{}
	m2 := &mockLogger{}
	m1.On("Log", event).Once()
	m2.On("Log", event).Once()

	multi := NewMultiLogger(m1, m2)
	multi.Log(event)

	m1.AssertExpectations(t)
	m2.AssertExpectations(t)
}

func TestMultiLoggerSkipsNil(t *testing.T) {
	m1 := &mockLogger{}
	m1.On("Log", mock.AnythingOfType("log.Event")).Once()

	multi := NewMultiLogger(nil, m1, nil)
	if multi.Len() != 1 {
		t.Errorf("Len() = %d, want 1", multi.Len())
	}

	multi.Log(sampleEvent("req-2", OpListTimers, 200))
	m1.AssertExpectations(t)
}

func TestMultiLoggerEmptyList(t *testing.T) {
	// Should not panic with empty logger list
	NewMultiLogger().Log(sampleEvent("req-3", OpListTimers, 200))
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NoopLogger{}
	l.Log(sampleEvent("req-4", OpListTimers, 200))
}

func TestOperationNames(t *testing.T) {
	for op := OpListTimers; op <= OpReplaceCurrentTimer; op++ {
		parsed, err := ParseOperation(op.String())
		if err != nil {
			t.Errorf("ParseOperation(%q) error = %v", op.String(), err)
			continue
		}
		if parsed != op {
			t.Errorf("ParseOperation(%q) = %v, want %v", op.String(), parsed, op)
		}
	}

	if op, err := ParseOperation("create-current-timer"); err != nil || op != OpCreateCurrentTimer {
		t.Errorf("ParseOperation(dashed) = %v, %v", op, err)
	}
	if _, err := ParseOperation("nope"); err == nil {
		t.Error("ParseOperation(nope) should fail")
	}
	if Operation(0).String() != "UNKNOWN" {
		t.Errorf("Operation(0).String() = %q", Operation(0).String())
	}
}

func TestOutcomeString(t *testing.T) {
	if OutcomeHTTPError.String() != "HTTP_ERROR" {
		t.Errorf("OutcomeHTTPError.String() = %q", OutcomeHTTPError.String())
	}
	if Outcome(9).String() != "UNKNOWN" {
		t.Errorf("Outcome(9).String() = %q", Outcome(9).String())
	}
}
