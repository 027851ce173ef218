package store

import (
	"sync"
	"time"

	"github.com/timekeep/timekeep-go/pkg/timer"
)

// Store is the in-memory timer state. It is safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	timers        []timer.Timer
	currentTimers []timer.Timer

	defaultTimeout time.Duration
	timeout        time.Duration
	timeoutSet     bool

	// Observers in registration order
	handlers      []registeredHandler
	nextHandlerID uint64

	now func() time.Time
}

type registeredHandler struct {
	id uint64
	fn ChangeHandler
}

// State is a point-in-time copy of the Store.
type State struct {
	Timers         []timer.Timer
	CurrentTimers  []timer.Timer
	DefaultTimeout time.Duration
	Timeout        time.Duration
}

// New creates an empty store with the given default timeout.
func New(defaultTimeout time.Duration) *Store {
	return &Store{
		timers:         []timer.Timer{},
		currentTimers:  []timer.Timer{},
		defaultTimeout: defaultTimeout,
		now:            time.Now,
	}
}

// OnChange registers fn to be called after every state change.
// The returned function unregisters it.
func (s *Store) OnChange(fn ChangeHandler) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextHandlerID++
	id := s.nextHandlerID
	s.handlers = append(s.handlers, registeredHandler{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, h := range s.handlers {
			if h.id == id {
				s.handlers = append(s.handlers[:i:i], s.handlers[i+1:]...)
				return
			}
		}
	}
}

// AddTimer appends t to the timer history.
func (s *Store) AddTimer(t timer.Timer) {
	s.mu.Lock()
	s.timers = append(s.timers, t.Clone())
	c := Change{Kind: TimerAdded, Timer: t.Clone(), Index: len(s.timers) - 1}
	s.unlockAndNotify(c)
}

// UpdateTimer replaces the first history entry whose start equals t's start.
// It reports whether an entry was replaced.
func (s *Store) UpdateTimer(t timer.Timer) bool {
	s.mu.Lock()
	idx := indexOf(s.timers, timer.FieldStart, t.Start())
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.timers[idx] = t.Clone()
	s.unlockAndNotify(Change{Kind: TimerUpdated, Timer: t.Clone(), Index: idx})
	return true
}

// SetTimers replaces the timer history.
func (s *Store) SetTimers(ts []timer.Timer) {
	s.mu.Lock()
	s.timers = cloneAll(ts)
	s.unlockAndNotify(Change{Kind: TimersReplaced, Count: len(s.timers)})
}

// AddCurrentTimer appends t to the running timers.
func (s *Store) AddCurrentTimer(t timer.Timer) {
	s.mu.Lock()
	s.currentTimers = append(s.currentTimers, t.Clone())
	c := Change{Kind: CurrentTimerAdded, Timer: t.Clone(), Index: len(s.currentTimers) - 1}
	s.unlockAndNotify(c)
}

// UpdateCurrentTimer replaces the first running timer whose id equals t's id.
// It reports whether an entry was replaced.
func (s *Store) UpdateCurrentTimer(t timer.Timer) bool {
	s.mu.Lock()
	idx := indexOf(s.currentTimers, timer.FieldID, t.ID())
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.currentTimers[idx] = t.Clone()
	s.unlockAndNotify(Change{Kind: CurrentTimerUpdated, Timer: t.Clone(), Index: idx})
	return true
}

// RemoveCurrentTimer removes every running timer with the given id,
// keeping the order of the rest. It returns the number removed.
func (s *Store) RemoveCurrentTimer(id any) int {
	s.mu.Lock()
	kept := make([]timer.Timer, 0, len(s.currentTimers))
	for _, t := range s.currentTimers {
		if !timer.KeyEqual(t.ID(), id) {
			kept = append(kept, t)
		}
	}
	removed := len(s.currentTimers) - len(kept)
	if removed == 0 {
		s.mu.Unlock()
		return 0
	}
	s.currentTimers = kept
	s.unlockAndNotify(Change{Kind: CurrentTimerRemoved, ID: id, Count: removed})
	return removed
}

// SetCurrentTimers replaces the running timers.
func (s *Store) SetCurrentTimers(ts []timer.Timer) {
	s.mu.Lock()
	s.currentTimers = cloneAll(ts)
	s.unlockAndNotify(Change{Kind: CurrentTimersReplaced, Count: len(s.currentTimers)})
}

// SetTimeout sets the timeout reported by Timeout.
func (s *Store) SetTimeout(d time.Duration) {
	s.mu.Lock()
	s.timeout = d
	s.timeoutSet = true
	s.unlockAndNotify(Change{Kind: TimeoutChanged, Timeout: d})
}

// Timers returns a copy of the timer history.
func (s *Store) Timers() []timer.Timer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.timers)
}

// CurrentTimers returns a copy of the running timers.
func (s *Store) CurrentTimers() []timer.Timer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.currentTimers)
}

// CurrentTimer returns the first running timer with the given id.
func (s *Store) CurrentTimer(id any) (timer.Timer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := indexOf(s.currentTimers, timer.FieldID, id)
	if idx < 0 {
		return nil, false
	}
	return s.currentTimers[idx].Clone(), true
}

// DefaultTimeout returns the default timeout computed at startup.
func (s *Store) DefaultTimeout() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defaultTimeout
}

// Timeout returns the timeout set by SetTimeout, or the default timeout if
// none was set.
func (s *Store) Timeout() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.timeoutSet {
		return s.defaultTimeout
	}
	return s.timeout
}

// Snapshot returns a copy of the whole state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	timeout := s.defaultTimeout
	if s.timeoutSet {
		timeout = s.timeout
	}
	return State{
		Timers:         cloneAll(s.timers),
		CurrentTimers:  cloneAll(s.currentTimers),
		DefaultTimeout: s.defaultTimeout,
		Timeout:        timeout,
	}
}

// unlockAndNotify releases the write lock and delivers c to all observers.
// Must be called with s.mu held.
func (s *Store) unlockAndNotify(c Change) {
	c.Time = s.now()
	handlers := make([]ChangeHandler, len(s.handlers))
	for i, h := range s.handlers {
		handlers[i] = h.fn
	}
	s.mu.Unlock()

	for _, fn := range handlers {
		fn(c)
	}
}

func indexOf(ts []timer.Timer, field string, key any) int {
	for i, t := range ts {
		if timer.KeyEqual(t[field], key) {
			return i
		}
	}
	return -1
}

func cloneAll(ts []timer.Timer) []timer.Timer {
	out := make([]timer.Timer, len(ts))
	for i, t := range ts {
		out[i] = t.Clone()
	}
	return out
}
