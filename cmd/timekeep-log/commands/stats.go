package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/timekeep/timekeep-go/pkg/log"
)

// Stats holds aggregate statistics about a traffic log.
type Stats struct {
	TotalEvents   int
	ByOperation   map[log.Operation]*OperationStats
	ByOutcome     map[log.Outcome]int
	ByStatusClass map[int]int
	TimeRange     struct {
		Start time.Time
		End   time.Time
	}
}

// OperationStats holds latency figures for one operation.
type OperationStats struct {
	Count    int
	Failures int
	Total    time.Duration
	Max      time.Duration
}

// Mean returns the mean request duration.
func (o *OperationStats) Mean() time.Duration {
	if o.Count == 0 {
		return 0
	}
	return o.Total / time.Duration(o.Count)
}

// Collect aggregates the events of reader.
func Collect(reader *log.Reader) (*Stats, error) {
	stats := &Stats{
		ByOperation:   make(map[log.Operation]*OperationStats),
		ByOutcome:     make(map[log.Outcome]int),
		ByStatusClass: make(map[int]int),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return stats, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.ByOutcome[event.Outcome]++
		if class := event.StatusClass(); class > 0 {
			stats.ByStatusClass[class]++
		}

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		op, ok := stats.ByOperation[event.Operation]
		if !ok {
			op = &OperationStats{}
			stats.ByOperation[event.Operation] = op
		}
		op.Count++
		op.Total += event.Duration
		if event.Duration > op.Max {
			op.Max = event.Duration
		}
		if event.Failed() {
			op.Failures++
		}
	}
}

// RunStats analyzes the events of path matching opts and prints statistics.
func RunStats(path string, opts FilterOptions, w io.Writer) error {
	reader, err := openFiltered(path, opts)
	if err != nil {
		return err
	}
	defer reader.Close()

	stats, err := Collect(reader)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Timekeep Traffic Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Requests: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Requests by Operation:")
	ops := make([]log.Operation, 0, len(stats.ByOperation))
	for op := range stats.ByOperation {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	for _, op := range ops {
		s := stats.ByOperation[op]
		fmt.Fprintf(w, "  %-24s %d (failed %d, mean %s, max %s)\n",
			op.String()+":", s.Count, s.Failures,
			s.Mean().Round(time.Microsecond), s.Max.Round(time.Microsecond))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Requests by Status:")
	for class := 1; class <= 5; class++ {
		if count := stats.ByStatusClass[class]; count > 0 {
			fmt.Fprintf(w, "  %-24s %d\n", fmt.Sprintf("%dxx:", class), count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Requests by Outcome:")
	for _, o := range []log.Outcome{log.OutcomeSuccess, log.OutcomeHTTPError, log.OutcomeTransportError} {
		if count := stats.ByOutcome[o]; count > 0 {
			fmt.Fprintf(w, "  %-24s %d\n", o.String()+":", count)
		}
	}
}
