package timekeep_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timekeep/timekeep-go/cmd/timekeep-api/api"
	"github.com/timekeep/timekeep-go/pkg/client"
	"github.com/timekeep/timekeep-go/pkg/config"
	tklog "github.com/timekeep/timekeep-go/pkg/log"
	"github.com/timekeep/timekeep-go/pkg/service"
	"github.com/timekeep/timekeep-go/pkg/store"
	"github.com/timekeep/timekeep-go/pkg/timer"
)

type e2e struct {
	backend *api.Store
	server  *httptest.Server
	svc     *service.Timers
	logs    *bytes.Buffer
	traffic string
}

// newE2E wires the stand-in backend, client, service and store together.
func newE2E(t *testing.T) *e2e {
	t.Helper()

	backend, err := api.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	mux := http.NewServeMux()
	for _, collection := range []string{api.CollectionTimers, api.CollectionCurrentTimers} {
		r := api.NewResourceAPI(backend, collection)
		mux.HandleFunc(r.Path(), r.HandleCollection)
		mux.HandleFunc(r.Prefix(), r.HandleItem)
	}
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	traffic := filepath.Join(t.TempDir(), "traffic.tklog")
	fileLogger, err := tklog.NewFileLogger(traffic)
	require.NoError(t, err)
	t.Cleanup(func() { fileLogger.Close() })

	c, err := client.New(client.Config{BaseURL: server.URL, TrafficLogger: fileLogger})
	require.NoError(t, err)

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, nil))

	timeout := config.DefaultTimeoutFromEnv(func(key string) (string, bool) {
		if key == config.EnvDefaultTimeout {
			return "5", true
		}
		return "", false
	})

	return &e2e{
		backend: backend,
		server:  server,
		svc:     service.New(store.New(timeout), c, service.Config{Logger: logger}),
		logs:    logs,
		traffic: traffic,
	}
}

func TestE2E_TimerLifecycle(t *testing.T) {
	env := newE2E(t)
	ctx := context.Background()
	st := env.svc.Store()

	assert.Equal(t, 300000*time.Millisecond, st.DefaultTimeout())

	var mu sync.Mutex
	var kinds []store.ChangeKind
	cancel := st.OnChange(func(c store.Change) {
		mu.Lock()
		kinds = append(kinds, c.Kind)
		mu.Unlock()
	})
	defer cancel()

	// Start a running timer; the server assigns the id.
	require.NoError(t, env.svc.AddCurrentTimer(ctx, timer.Timer{"start": 1000}))
	current := st.CurrentTimers()
	require.Len(t, current, 1)
	id := current[0].ID()
	assert.Equal(t, "1", id)

	// Edit locally, then save.
	env.svc.UpdateCurrentTimer(current[0].With("elapsed", 42))
	env.svc.PersistCurrentTimer(ctx, id)

	saved, err := env.backend.Get(api.CollectionCurrentTimers, "1")
	require.NoError(t, err)
	assert.Equal(t, float64(42), saved["elapsed"])

	// Finish: record history, remove the running timer.
	require.NoError(t, env.svc.AddTimer(ctx, timer.Timer{"start": 1000, "end": 5000}))
	require.NoError(t, env.svc.RemoveCurrentTimer(ctx, id))
	assert.Empty(t, st.CurrentTimers())

	// A fresh fetch agrees with local state.
	require.NoError(t, env.svc.Refresh(ctx))
	assert.Empty(t, st.CurrentTimers())
	require.Len(t, st.Timers(), 1)
	assert.Equal(t, float64(5000), st.Timers()[0]["end"])

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []store.ChangeKind{
		store.CurrentTimerAdded,
		store.CurrentTimerUpdated,
		store.TimerAdded,
		store.CurrentTimerRemoved,
	}, kinds[:4])
}

func TestE2E_PersistFailureIsLoggedNotReturned(t *testing.T) {
	env := newE2E(t)
	ctx := context.Background()

	// Known locally, unknown on the server: PUT gets 404.
	env.svc.Store().SetCurrentTimers([]timer.Timer{{"id": "ghost", "start": 1}})
	env.svc.PersistCurrentTimer(ctx, "ghost")

	assert.Contains(t, env.logs.String(), "Failed to persist timers")
	assert.Len(t, env.svc.Store().CurrentTimers(), 1)
}

func TestE2E_RemoveUnknownTimerFails(t *testing.T) {
	env := newE2E(t)
	ctx := context.Background()

	env.svc.Store().SetCurrentTimers([]timer.Timer{{"id": "ghost"}})

	err := env.svc.RemoveCurrentTimer(ctx, "ghost")
	assert.True(t, errors.Is(err, client.ErrUnexpectedStatus))
	assert.Len(t, env.svc.Store().CurrentTimers(), 1, "failed delete keeps the local timer")
}

func TestE2E_ServerDownKeepsState(t *testing.T) {
	env := newE2E(t)
	ctx := context.Background()

	require.NoError(t, env.svc.AddCurrentTimer(ctx, timer.Timer{"start": 1}))
	env.server.Close()

	assert.Error(t, env.svc.Refresh(ctx))
	assert.Len(t, env.svc.Store().CurrentTimers(), 1)
}

func TestE2E_TrafficLogRecordsExchanges(t *testing.T) {
	env := newE2E(t)
	ctx := context.Background()

	require.NoError(t, env.svc.AddCurrentTimer(ctx, timer.Timer{"start": 1}))
	env.svc.PersistCurrentTimer(ctx, "404")
	env.svc.Store().SetCurrentTimers([]timer.Timer{{"id": "9"}})
	env.svc.PersistCurrentTimer(ctx, "9")
	require.NoError(t, env.svc.FetchTimers(ctx))

	reader, err := tklog.NewReader(env.traffic)
	require.NoError(t, err)
	defer reader.Close()

	events, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, tklog.OpCreateCurrentTimer, events[0].Operation)
	assert.Equal(t, http.StatusCreated, events[0].StatusCode)

	assert.Equal(t, tklog.OpReplaceCurrentTimer, events[1].Operation)
	assert.Equal(t, "/currentTimers/9", events[1].Path)
	assert.True(t, events[1].Failed())

	assert.Equal(t, tklog.OpListTimers, events[2].Operation)
	assert.NotEmpty(t, events[2].RequestID)
}
