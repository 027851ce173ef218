package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timekeep/timekeep-go/pkg/timer"
)

func TestNewStoreIsEmpty(t *testing.T) {
	s := New(6 * time.Minute)

	assert.Empty(t, s.Timers())
	assert.Empty(t, s.CurrentTimers())
	assert.Equal(t, 6*time.Minute, s.DefaultTimeout())
	assert.Equal(t, 6*time.Minute, s.Timeout())
}

func TestUpdateTimer_ReplacesInPlace(t *testing.T) {
	s := New(0)
	s.AddTimer(timer.Timer{"start": 1, "label": "a"})
	s.AddTimer(timer.Timer{"start": 2, "label": "b"})
	s.AddTimer(timer.Timer{"start": 3, "label": "c"})

	ok := s.UpdateTimer(timer.Timer{"start": 2, "label": "B"})
	require.True(t, ok)

	got := s.Timers()
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0]["label"])
	assert.Equal(t, "B", got[1]["label"])
	assert.Equal(t, "c", got[2]["label"])
}

func TestUpdateTimer_NoMatchIsNoop(t *testing.T) {
	s := New(0)
	s.AddTimer(timer.Timer{"start": 1})

	var changes []Change
	s.OnChange(func(c Change) { changes = append(changes, c) })

	assert.False(t, s.UpdateTimer(timer.Timer{"start": 99}))
	assert.Equal(t, []timer.Timer{{"start": 1}}, s.Timers())
	assert.Empty(t, changes)
}

func TestUpdateTimer_OnlyFirstDuplicateReplaced(t *testing.T) {
	s := New(0)
	s.AddTimer(timer.Timer{"start": 5, "n": 1})
	s.AddTimer(timer.Timer{"start": 5, "n": 2})

	s.UpdateTimer(timer.Timer{"start": 5, "n": 3})

	got := s.Timers()
	assert.Equal(t, 3, got[0]["n"])
	assert.Equal(t, 2, got[1]["n"])
}

func TestUpdateTimer_MatchesDecodedNumbers(t *testing.T) {
	s := New(0)
	s.SetTimers([]timer.Timer{{"start": float64(100)}})

	assert.True(t, s.UpdateTimer(timer.Timer{"start": 100, "done": true}))
	assert.Equal(t, true, s.Timers()[0]["done"])
}

func TestUpdateCurrentTimer(t *testing.T) {
	s := New(0)
	s.AddCurrentTimer(timer.Timer{"id": "1", "elapsed": 0})
	s.AddCurrentTimer(timer.Timer{"id": "2", "elapsed": 0})

	assert.True(t, s.UpdateCurrentTimer(timer.Timer{"id": "2", "elapsed": 10}))
	assert.False(t, s.UpdateCurrentTimer(timer.Timer{"id": 2, "elapsed": 20}), "number id must not match string id")

	got := s.CurrentTimers()
	assert.Equal(t, 0, got[0]["elapsed"])
	assert.Equal(t, 10, got[1]["elapsed"])
}

func TestRemoveCurrentTimer_RemovesAllMatchesKeepsOrder(t *testing.T) {
	s := New(0)
	s.SetCurrentTimers([]timer.Timer{
		{"id": 1, "n": "a"},
		{"id": 2, "n": "b"},
		{"id": 1, "n": "c"},
		{"id": 3, "n": "d"},
	})

	removed := s.RemoveCurrentTimer(1)
	assert.Equal(t, 2, removed)

	got := s.CurrentTimers()
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0]["n"])
	assert.Equal(t, "d", got[1]["n"])
}

func TestRemoveCurrentTimer_AbsentIDIsNoop(t *testing.T) {
	s := New(0)
	s.AddCurrentTimer(timer.Timer{"id": 1})

	var changes []Change
	s.OnChange(func(c Change) { changes = append(changes, c) })

	assert.Equal(t, 0, s.RemoveCurrentTimer(42))
	assert.Len(t, s.CurrentTimers(), 1)
	assert.Empty(t, changes)
}

func TestSetTimers_DiscardsPriorContent(t *testing.T) {
	s := New(0)
	s.AddTimer(timer.Timer{"start": 1})
	s.AddTimer(timer.Timer{"start": 2})

	s.SetTimers([]timer.Timer{{"start": 9}})
	assert.Equal(t, []timer.Timer{{"start": 9}}, s.Timers())

	s.SetTimers(nil)
	assert.Empty(t, s.Timers())
}

func TestSetCurrentTimers_DiscardsPriorContent(t *testing.T) {
	s := New(0)
	s.AddCurrentTimer(timer.Timer{"id": 1})

	s.SetCurrentTimers([]timer.Timer{{"id": 2}, {"id": 3}})
	assert.Equal(t, []timer.Timer{{"id": 2}, {"id": 3}}, s.CurrentTimers())
}

func TestSetTimeout(t *testing.T) {
	s := New(6 * time.Minute)
	s.SetTimeout(90 * time.Second)

	assert.Equal(t, 90*time.Second, s.Timeout())
	assert.Equal(t, 6*time.Minute, s.DefaultTimeout())

	s.SetTimeout(0)
	assert.Equal(t, time.Duration(0), s.Timeout(), "an explicit zero stays zero")
}

func TestCurrentTimerLookup(t *testing.T) {
	s := New(0)
	s.AddCurrentTimer(timer.Timer{"id": "7", "start": 1})

	got, ok := s.CurrentTimer("7")
	require.True(t, ok)
	assert.Equal(t, 1, got["start"])

	_, ok = s.CurrentTimer(7)
	assert.False(t, ok)
}

func TestReadsReturnCopies(t *testing.T) {
	s := New(0)
	in := timer.Timer{"id": 1, "elapsed": 0}
	s.AddCurrentTimer(in)

	// Mutating the inserted value or a read copy must not reach the store
	in["elapsed"] = 100
	out := s.CurrentTimers()
	out[0]["elapsed"] = 200

	got, _ := s.CurrentTimer(1)
	assert.Equal(t, 0, got["elapsed"])
}

func TestOnChange(t *testing.T) {
	s := New(0)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	var kinds []ChangeKind
	cancel := s.OnChange(func(c Change) {
		kinds = append(kinds, c.Kind)
		assert.Equal(t, fixed, c.Time)
	})

	s.AddTimer(timer.Timer{"start": 1})
	s.UpdateTimer(timer.Timer{"start": 1})
	s.SetTimers(nil)
	s.AddCurrentTimer(timer.Timer{"id": 1})
	s.UpdateCurrentTimer(timer.Timer{"id": 1})
	s.RemoveCurrentTimer(1)
	s.SetCurrentTimers(nil)
	s.SetTimeout(time.Second)

	assert.Equal(t, []ChangeKind{
		TimerAdded, TimerUpdated, TimersReplaced,
		CurrentTimerAdded, CurrentTimerUpdated, CurrentTimerRemoved, CurrentTimersReplaced,
		TimeoutChanged,
	}, kinds)

	cancel()
	s.AddTimer(timer.Timer{"start": 2})
	assert.Len(t, kinds, 8, "no callbacks after cancel")
}

func TestOnChange_HandlerMayReadStore(t *testing.T) {
	s := New(0)
	var seen int
	s.OnChange(func(c Change) {
		// Must not deadlock: handlers run outside the lock
		seen = len(s.CurrentTimers())
	})

	s.AddCurrentTimer(timer.Timer{"id": 1})
	assert.Equal(t, 1, seen)
}

func TestOnChange_RemovedPayload(t *testing.T) {
	s := New(0)
	s.SetCurrentTimers([]timer.Timer{{"id": "x"}, {"id": "x"}})

	var got Change
	s.OnChange(func(c Change) { got = c })
	s.RemoveCurrentTimer("x")

	assert.Equal(t, CurrentTimerRemoved, got.Kind)
	assert.Equal(t, "x", got.ID)
	assert.Equal(t, 2, got.Count)
}

func TestSnapshot(t *testing.T) {
	s := New(time.Minute)
	s.AddTimer(timer.Timer{"start": 1})
	s.AddCurrentTimer(timer.Timer{"id": 2})

	snap := s.Snapshot()
	assert.Len(t, snap.Timers, 1)
	assert.Len(t, snap.CurrentTimers, 1)
	assert.Equal(t, time.Minute, snap.DefaultTimeout)
	assert.Equal(t, time.Minute, snap.Timeout)
}

func TestConcurrentMutations(t *testing.T) {
	s := New(0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			s.AddTimer(timer.Timer{"start": i})
		}(i)
		go func(i int) {
			defer wg.Done()
			s.AddCurrentTimer(timer.Timer{"id": i})
			s.RemoveCurrentTimer(i)
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.Timers(), 50)
	assert.Empty(t, s.CurrentTimers())
}

func TestChangeKindString(t *testing.T) {
	assert.Equal(t, "TIMER_ADDED", TimerAdded.String())
	assert.Equal(t, "CURRENT_TIMER_REMOVED", CurrentTimerRemoved.String())
	assert.Equal(t, "UNKNOWN", ChangeKind(0).String())
}
