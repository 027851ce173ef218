// Package store holds the in-memory timer state mirrored from the remote
// timer API.
//
// The Store keeps two ordered collections:
//   - the persisted timer history, keyed by a timer's "start" value
//   - the currently running timers, keyed by a timer's "id" value
//
// plus the default timeout computed at startup. Keys are not unique: updates
// replace only the first match and removal drops every match.
//
// # Mutations
//
// All state changes go through the mutation methods (AddTimer, UpdateTimer,
// AddCurrentTimer, UpdateCurrentTimer, RemoveCurrentTimer, SetTimers,
// SetCurrentTimers, SetTimeout). Each one is atomic with respect to the
// others; there is no ordering between concurrent callers beyond that.
//
// # Observers
//
// OnChange registers a callback that receives a Change for every mutation
// that altered the state. Callbacks run synchronously on the mutating
// goroutine after the store lock is released.
//
//	s := store.New(6 * time.Minute)
//	cancel := s.OnChange(func(c store.Change) {
//	    fmt.Println(c.Kind)
//	})
//	defer cancel()
package store
