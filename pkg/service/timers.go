package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/timekeep/timekeep-go/pkg/store"
	"github.com/timekeep/timekeep-go/pkg/timer"
)

// Config configures a Timers service.
type Config struct {
	// Logger receives operational logs, including suppressed persist
	// failures. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Timers applies remote timer operations to a Store.
type Timers struct {
	store  *store.Store
	remote Remote
	logger *slog.Logger
}

// New creates a Timers service over st and remote.
func New(st *store.Store, remote Remote, cfg Config) *Timers {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Timers{
		store:  st,
		remote: remote,
		logger: logger,
	}
}

// Store returns the store the service mutates.
func (s *Timers) Store() *store.Store {
	return s.store
}

// FetchTimers replaces the timer history with the server's.
func (s *Timers) FetchTimers(ctx context.Context) error {
	ts, err := s.remote.ListTimers(ctx)
	if err != nil {
		return err
	}
	s.store.SetTimers(ts)
	s.logger.Debug("fetched timers", "count", len(ts))
	return nil
}

// FetchCurrentTimers replaces the running timers with the server's.
func (s *Timers) FetchCurrentTimers(ctx context.Context) error {
	ts, err := s.remote.ListCurrentTimers(ctx)
	if err != nil {
		return err
	}
	s.store.SetCurrentTimers(ts)
	s.logger.Debug("fetched current timers", "count", len(ts))
	return nil
}

// AddTimer posts t to the timer history and appends t itself, not the
// server's response, to the store.
func (s *Timers) AddTimer(ctx context.Context, t timer.Timer) error {
	if _, err := s.remote.CreateTimer(ctx, t); err != nil {
		return err
	}
	s.store.AddTimer(t)
	return nil
}

// AddCurrentTimer posts t to the running timers and appends the server's
// response to the store.
func (s *Timers) AddCurrentTimer(ctx context.Context, t timer.Timer) error {
	created, err := s.remote.CreateCurrentTimer(ctx, t)
	if err != nil {
		return err
	}
	s.store.AddCurrentTimer(created)
	return nil
}

// RemoveCurrentTimer deletes the running timer on the server, then removes
// every local entry with that id.
func (s *Timers) RemoveCurrentTimer(ctx context.Context, id any) error {
	if err := s.remote.DeleteCurrentTimer(ctx, id); err != nil {
		return err
	}
	s.store.RemoveCurrentTimer(id)
	return nil
}

// UpdateCurrentTimer replaces the local running timer with t's id. No request
// is made; use PersistCurrentTimer to save it.
func (s *Timers) UpdateCurrentTimer(t timer.Timer) {
	s.store.UpdateCurrentTimer(t)
}

// PersistCurrentTimer saves the local running timer with the given id to the
// server. If no such timer exists nothing is sent. Failures are logged and
// not returned.
func (s *Timers) PersistCurrentTimer(ctx context.Context, id any) {
	t, ok := s.store.CurrentTimer(id)
	if !ok {
		s.logger.Debug("persist skipped, timer not found", "id", timer.PathID(id))
		return
	}
	if err := s.remote.ReplaceCurrentTimer(ctx, id, t); err != nil {
		s.logger.Error("Failed to persist timers", "id", timer.PathID(id), "error", err)
	}
}

// PersistAll persists every running timer, once per distinct id. Ids are
// compared by their URL form, so a numeric 1 and a string "1" share one PUT
// and only the first of them is sent.
func (s *Timers) PersistAll(ctx context.Context) {
	seen := make(map[string]bool)
	for _, t := range s.store.CurrentTimers() {
		key := timer.PathID(t.ID())
		if seen[key] {
			continue
		}
		seen[key] = true
		s.PersistCurrentTimer(ctx, t.ID())
	}
}

// Refresh fetches the timer history and the running timers concurrently.
// It returns the first error; a failed fetch does not cancel the other one,
// and a collection whose fetch succeeded is still replaced.
func (s *Timers) Refresh(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return s.FetchTimers(ctx) })
	g.Go(func() error { return s.FetchCurrentTimers(ctx) })
	return g.Wait()
}
