// Package client implements the HTTP client for the remote timer API.
//
// The API exposes two collections, /timers and /currentTimers, as plain JSON
// REST resources. The client issues exactly one request per call: there are no
// retries and no timeouts beyond the caller's context and the configured
// *http.Client. Every exchange is reported to a traffic log.Logger.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/timekeep/timekeep-go/pkg/log"
	"github.com/timekeep/timekeep-go/pkg/timer"
)

// DefaultBaseURL is the hosted timer API.
const DefaultBaseURL = "https://66b2011c1ca8ad33d4f6173f.mockapi.io"

// API paths.
const (
	TimersPath        = "/timers"
	CurrentTimersPath = "/currentTimers"
)

// maxErrorBody caps how much of an error response body is kept in StatusError.
const maxErrorBody = 512

// Client errors.
var (
	ErrInvalidBaseURL   = errors.New("invalid base URL")
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

// Error implements error.
func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: %s %d", e.Method, e.Path, ErrUnexpectedStatus, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Is reports ErrUnexpectedStatus as matching.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// Config configures a Client.
type Config struct {
	// BaseURL is the API root (default: DefaultBaseURL).
	BaseURL string

	// HTTPClient performs the requests (default: http.DefaultClient).
	HTTPClient *http.Client

	// TrafficLogger receives one event per exchange.
	// If nil, traffic is not logged.
	TrafficLogger log.Logger

	// UserAgent is sent with every request if set.
	UserAgent string
}

// Client talks to the remote timer API.
type Client struct {
	base      *url.URL
	baseURL   string
	http      *http.Client
	traffic   log.Logger
	userAgent string

	now func() time.Time
}

// New creates a client from cfg.
func New(cfg Config) (*Client, error) {
	raw := cfg.BaseURL
	if raw == "" {
		raw = DefaultBaseURL
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, raw)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	traffic := cfg.TrafficLogger
	if traffic == nil {
		traffic = log.NoopLogger{}
	}

	return &Client{
		base:      base,
		baseURL:   strings.TrimRight(base.String(), "/"),
		http:      httpClient,
		traffic:   traffic,
		userAgent: cfg.UserAgent,
		now:       time.Now,
	}, nil
}

// BaseURL returns the API root the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListTimers fetches the timer history (GET /timers).
func (c *Client) ListTimers(ctx context.Context) ([]timer.Timer, error) {
	data, err := c.do(ctx, log.OpListTimers, http.MethodGet, TimersPath, nil)
	if err != nil {
		return nil, err
	}
	return timer.DecodeList(data)
}

// ListCurrentTimers fetches the running timers (GET /currentTimers).
func (c *Client) ListCurrentTimers(ctx context.Context) ([]timer.Timer, error) {
	data, err := c.do(ctx, log.OpListCurrentTimers, http.MethodGet, CurrentTimersPath, nil)
	if err != nil {
		return nil, err
	}
	return timer.DecodeList(data)
}

// CreateTimer posts t to the timer history and returns the stored record.
func (c *Client) CreateTimer(ctx context.Context, t timer.Timer) (timer.Timer, error) {
	data, err := c.do(ctx, log.OpCreateTimer, http.MethodPost, TimersPath, t)
	if err != nil {
		return nil, err
	}
	return timer.Decode(data)
}

// CreateCurrentTimer posts t to the running timers and returns the stored record.
func (c *Client) CreateCurrentTimer(ctx context.Context, t timer.Timer) (timer.Timer, error) {
	data, err := c.do(ctx, log.OpCreateCurrentTimer, http.MethodPost, CurrentTimersPath, t)
	if err != nil {
		return nil, err
	}
	return timer.Decode(data)
}

// DeleteCurrentTimer deletes the running timer with the given id.
// The response body is ignored.
func (c *Client) DeleteCurrentTimer(ctx context.Context, id any) error {
	_, err := c.do(ctx, log.OpDeleteCurrentTimer, http.MethodDelete, currentTimerPath(id), nil)
	return err
}

// ReplaceCurrentTimer stores t as the running timer with the given id.
// The response body is ignored.
func (c *Client) ReplaceCurrentTimer(ctx context.Context, id any, t timer.Timer) error {
	_, err := c.do(ctx, log.OpReplaceCurrentTimer, http.MethodPut, currentTimerPath(id), t)
	return err
}

func currentTimerPath(id any) string {
	return CurrentTimersPath + "/" + url.PathEscape(timer.PathID(id))
}

// do performs one exchange and returns the response body of a 2xx response.
func (c *Client) do(ctx context.Context, op log.Operation, method, path string, body any) ([]byte, error) {
	event := log.Event{
		Timestamp: c.now(),
		RequestID: uuid.NewString(),
		Operation: op,
		Method:    method,
		Host:      c.base.Host,
		Path:      path,
	}
	start := time.Now()

	fail := func(outcome log.Outcome, err error) ([]byte, error) {
		event.Duration = time.Since(start)
		event.Outcome = outcome
		event.Error = err.Error()
		c.traffic.Log(event)
		return nil, err
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fail(log.OutcomeTransportError, fmt.Errorf("%s %s: encode request: %w", method, path, err))
		}
		event.RequestSize = len(data)
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fail(log.OutcomeTransportError, fmt.Errorf("%s %s: %w", method, path, err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", event.RequestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fail(log.OutcomeTransportError, fmt.Errorf("%s %s: %w", method, path, err))
	}
	defer resp.Body.Close()

	event.StatusCode = resp.StatusCode
	data, err := io.ReadAll(resp.Body)
	event.ResponseSize = len(data)
	if err != nil {
		return fail(log.OutcomeTransportError, fmt.Errorf("%s %s: read response: %w", method, path, err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(data))
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}
		return fail(log.OutcomeHTTPError, &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       msg,
		})
	}

	event.Duration = time.Since(start)
	event.Outcome = log.OutcomeSuccess
	c.traffic.Log(event)
	return data, nil
}
