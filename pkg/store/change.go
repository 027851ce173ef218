package store

import (
	"time"

	"github.com/timekeep/timekeep-go/pkg/timer"
)

// ChangeKind identifies the mutation that produced a Change.
type ChangeKind uint8

const (
	// TimerAdded - a timer was appended to the history.
	TimerAdded ChangeKind = iota + 1

	// TimerUpdated - a history entry was replaced.
	TimerUpdated

	// TimersReplaced - the history was replaced wholesale.
	TimersReplaced

	// CurrentTimerAdded - a running timer was appended.
	CurrentTimerAdded

	// CurrentTimerUpdated - a running timer was replaced.
	CurrentTimerUpdated

	// CurrentTimerRemoved - running timers with an id were removed.
	CurrentTimerRemoved

	// CurrentTimersReplaced - the running timers were replaced wholesale.
	CurrentTimersReplaced

	// TimeoutChanged - the timeout was set.
	TimeoutChanged
)

// String returns the change kind name.
func (k ChangeKind) String() string {
	switch k {
	case TimerAdded:
		return "TIMER_ADDED"
	case TimerUpdated:
		return "TIMER_UPDATED"
	case TimersReplaced:
		return "TIMERS_REPLACED"
	case CurrentTimerAdded:
		return "CURRENT_TIMER_ADDED"
	case CurrentTimerUpdated:
		return "CURRENT_TIMER_UPDATED"
	case CurrentTimerRemoved:
		return "CURRENT_TIMER_REMOVED"
	case CurrentTimersReplaced:
		return "CURRENT_TIMERS_REPLACED"
	case TimeoutChanged:
		return "TIMEOUT_CHANGED"
	default:
		return "UNKNOWN"
	}
}

// Change describes a state change applied to the Store.
type Change struct {
	// Kind is the mutation that was applied.
	Kind ChangeKind

	// Timer is the added or updated timer. Nil for replace, remove and timeout changes.
	Timer timer.Timer

	// ID is the removed id for CurrentTimerRemoved.
	ID any

	// Index is the position of the added or updated timer.
	Index int

	// Count is the collection length after a replace, or the number of
	// removed entries for CurrentTimerRemoved.
	Count int

	// Timeout is the new value for TimeoutChanged.
	Timeout time.Duration

	// Time is when the change was applied.
	Time time.Time
}

// ChangeHandler receives store changes.
type ChangeHandler func(Change)
