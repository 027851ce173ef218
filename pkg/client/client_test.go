package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timekeep/timekeep-go/pkg/log"
	"github.com/timekeep/timekeep-go/pkg/timer"
)

// recordingLogger keeps traffic events for assertions.
type recordingLogger struct {
	mu     sync.Mutex
	events []log.Event
}

func (r *recordingLogger) Log(e log.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingLogger) all() []log.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]log.Event(nil), r.events...)
}

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *recordingLogger) {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	rec := &recordingLogger{}
	c, err := New(Config{BaseURL: srv.URL, TrafficLogger: rec, UserAgent: "timekeep-test"})
	require.NoError(t, err)
	return c, rec
}

func TestNewDefaults(t *testing.T) {
	c, err := New(Config{})
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
}

func TestNewRejectsInvalidBaseURL(t *testing.T) {
	for _, raw := range []string{"ftp://example.com", "not a url", "http://", "://x"} {
		_, err := New(Config{BaseURL: raw})
		assert.ErrorIs(t, err, ErrInvalidBaseURL, raw)
	}
}

func TestNewTrimsTrailingSlash(t *testing.T) {
	c, err := New(Config{BaseURL: "http://localhost:8080/api/"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api", c.BaseURL())
}

func TestListTimers(t *testing.T) {
	c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/timers", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "timekeep-test", r.Header.Get("User-Agent"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Write([]byte(`[{"id":"1","start":100},{"id":"2","start":200}]`))
	})

	ts, err := c.ListTimers(context.Background())
	require.NoError(t, err)
	require.Len(t, ts, 2)
	assert.Equal(t, "2", ts[1].ID())

	events := rec.all()
	require.Len(t, events, 1)
	assert.Equal(t, log.OpListTimers, events[0].Operation)
	assert.Equal(t, http.StatusOK, events[0].StatusCode)
	assert.Equal(t, log.OutcomeSuccess, events[0].Outcome)
	assert.NotEmpty(t, events[0].RequestID)
}

func TestListCurrentTimers(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/currentTimers", r.URL.Path)
		w.Write([]byte(`[]`))
	})

	ts, err := c.ListCurrentTimers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ts)
}

func TestCreateCurrentTimer_ReturnsResponseBody(t *testing.T) {
	c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/currentTimers", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(1), body["id"])

		body["elapsed"] = 5
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(body)
	})

	got, err := c.CreateCurrentTimer(context.Background(), timer.Timer{"id": 1, "start": 100})
	require.NoError(t, err)
	assert.Equal(t, float64(5), got["elapsed"])

	events := rec.all()
	require.Len(t, events, 1)
	assert.Positive(t, events[0].RequestSize)
	assert.Positive(t, events[0].ResponseSize)
}

func TestCreateTimer(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/timers", r.URL.Path)
		io.Copy(w, r.Body)
	})

	got, err := c.CreateTimer(context.Background(), timer.Timer{"start": 42})
	require.NoError(t, err)
	assert.True(t, timer.KeyEqual(got.Start(), 42))
}

func TestDeleteCurrentTimer(t *testing.T) {
	c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/currentTimers/7", r.URL.Path)
		w.Write([]byte(`not json, ignored`))
	})

	require.NoError(t, c.DeleteCurrentTimer(context.Background(), float64(7)))
	assert.Equal(t, log.OpDeleteCurrentTimer, rec.all()[0].Operation)
}

func TestReplaceCurrentTimer(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/currentTimers/a b", r.URL.Path)
		assert.Equal(t, "/currentTimers/a%20b", r.URL.EscapedPath())

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a b", body["id"])
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.ReplaceCurrentTimer(context.Background(), "a b", timer.Timer{"id": "a b"}))
}

func TestStatusError(t *testing.T) {
	c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `"Not found"`, http.StatusNotFound)
	})

	err := c.DeleteCurrentTimer(context.Background(), "9")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
	assert.Equal(t, http.MethodDelete, se.Method)
	assert.Equal(t, "/currentTimers/9", se.Path)
	assert.Equal(t, `"Not found"`, se.Body)
	assert.Contains(t, se.Error(), "404")

	events := rec.all()
	require.Len(t, events, 1)
	assert.Equal(t, log.OutcomeHTTPError, events[0].Outcome)
	assert.Equal(t, http.StatusNotFound, events[0].StatusCode)
	assert.NotEmpty(t, events[0].Error)
}

func TestStatusErrorBodyTruncated(t *testing.T) {
	long := make([]byte, 2*maxErrorBody)
	for i := range long {
		long[i] = 'x'
	}
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write(long)
	})

	_, err := c.ListTimers(context.Background())
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Len(t, se.Body, maxErrorBody)
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	rec := &recordingLogger{}
	c, err := New(Config{BaseURL: url, TrafficLogger: rec})
	require.NoError(t, err)

	_, err = c.ListCurrentTimers(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnexpectedStatus)

	events := rec.all()
	require.Len(t, events, 1)
	assert.Equal(t, log.OutcomeTransportError, events[0].Outcome)
	assert.Zero(t, events[0].StatusCode)
}

func TestContextCancelled(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListTimers(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecodeErrors(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"}`))
	})

	_, err := c.ListTimers(context.Background())
	assert.Error(t, err)

	_, err = c.CreateTimer(context.Background(), timer.Timer{"start": 1})
	assert.NoError(t, err, "an object is a valid create response")
}
