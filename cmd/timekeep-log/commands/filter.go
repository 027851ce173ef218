package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/timekeep/timekeep-go/pkg/log"
)

// FilterOptions specifies filtering criteria shared by all commands.
type FilterOptions struct {
	RequestID  string
	Operation  string
	Method     string
	Status     string
	FailedOnly bool
	TimeStart  string
	TimeEnd    string
}

// Build converts the options to a log.Filter.
func (o FilterOptions) Build() (log.Filter, error) {
	filter := log.Filter{
		RequestID:  o.RequestID,
		Method:     o.Method,
		FailedOnly: o.FailedOnly,
	}

	if o.Operation != "" {
		op, err := log.ParseOperation(o.Operation)
		if err != nil {
			return filter, err
		}
		filter.Operation = &op
	}

	if o.Status != "" {
		class, err := parseStatusClass(o.Status)
		if err != nil {
			return filter, err
		}
		filter.StatusClass = class
	}

	if o.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, o.TimeStart)
		if err != nil {
			return filter, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}

	if o.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, o.TimeEnd)
		if err != nil {
			return filter, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}

	return filter, nil
}

// parseStatusClass accepts "4", "4xx" or "404" (class of the code).
func parseStatusClass(s string) (int, error) {
	s = strings.TrimSuffix(strings.ToLower(s), "xx")
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid status class: %s (use e.g. 2xx, 4xx, 5xx)", s)
	}
	if n >= 100 {
		n /= 100
	}
	if n > 5 {
		return 0, fmt.Errorf("invalid status class: %d", n)
	}
	return n, nil
}

// openFiltered opens path with the given options applied.
func openFiltered(path string, opts FilterOptions) (*log.Reader, error) {
	filter, err := opts.Build()
	if err != nil {
		return nil, err
	}
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return reader, nil
}

// RunFilter writes the events of path matching opts to a new log file.
func RunFilter(path, output string, opts FilterOptions, w io.Writer) error {
	reader, err := openFiltered(path, opts)
	if err != nil {
		return err
	}
	defer reader.Close()

	logger, err := log.NewFileLogger(output)
	if err != nil {
		return fmt.Errorf("failed to create output logger: %w", err)
	}
	defer logger.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		logger.Log(event)
	}

	fmt.Fprintf(w, "Filtered %d events to %s\n", logger.Count(), output)
	return nil
}
