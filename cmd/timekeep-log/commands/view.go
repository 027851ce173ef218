// Package commands implements the timekeep-log CLI commands.
package commands

import (
	"fmt"
	"io"

	"github.com/timekeep/timekeep-go/pkg/log"
)

const timeFormat = "2006-01-02T15:04:05.000000Z"

// RunView writes the events of path matching opts in human-readable form.
func RunView(path string, opts FilterOptions, w io.Writer) error {
	reader, err := openFiltered(path, opts)
	if err != nil {
		return err
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
}

// formatEvent writes one line per exchange, plus an error line for failures:
//
//	timestamp [req:id] METHOD path -> status OPERATION (duration)
func formatEvent(w io.Writer, event log.Event) {
	status := "---"
	if event.StatusCode != 0 {
		status = fmt.Sprintf("%d", event.StatusCode)
	}

	fmt.Fprintf(w, "%s [req:%s] %-6s %s -> %s %s (%s)\n",
		event.Timestamp.UTC().Format(timeFormat),
		shortenRequestID(event.RequestID),
		event.Method,
		event.Path,
		status,
		event.Operation,
		event.Duration,
	)

	if event.RequestSize > 0 || event.ResponseSize > 0 {
		fmt.Fprintf(w, "  bytes: sent=%d received=%d\n", event.RequestSize, event.ResponseSize)
	}
	if event.Failed() {
		fmt.Fprintf(w, "  %s: %s\n", event.Outcome, event.Error)
	}
}

// shortenRequestID returns the first 8 characters of the request ID.
func shortenRequestID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	if id == "" {
		return "--------"
	}
	return id
}
