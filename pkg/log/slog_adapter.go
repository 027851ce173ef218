package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes traffic events to an slog.Logger.
// Useful for development when you want to see requests in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes successful exchanges at Debug level and failed ones at Warn.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("request_id", event.RequestID),
		slog.String("operation", event.Operation.String()),
		slog.String("method", event.Method),
		slog.String("path", event.Path),
		slog.Duration("duration", event.Duration),
		slog.String("outcome", event.Outcome.String()),
	}

	if event.Host != "" {
		attrs = append(attrs, slog.String("host", event.Host))
	}
	if event.StatusCode != 0 {
		attrs = append(attrs, slog.Int("status", event.StatusCode))
	}
	if event.RequestSize > 0 {
		attrs = append(attrs, slog.Int("request_size", event.RequestSize))
	}
	if event.ResponseSize > 0 {
		attrs = append(attrs, slog.Int("response_size", event.ResponseSize))
	}

	level := slog.LevelDebug
	if event.Failed() {
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error", event.Error))
	}

	a.logger.LogAttrs(context.Background(), level, "api request", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
