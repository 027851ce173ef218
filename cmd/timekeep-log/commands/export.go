package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/timekeep/timekeep-go/pkg/log"
)

// exportRecord is the JSON form of an event, with names instead of codes.
type exportRecord struct {
	Timestamp    string  `json:"timestamp"`
	RequestID    string  `json:"request_id"`
	Operation    string  `json:"operation"`
	Method       string  `json:"method"`
	Host         string  `json:"host,omitempty"`
	Path         string  `json:"path"`
	StatusCode   int     `json:"status_code,omitempty"`
	DurationMS   float64 `json:"duration_ms"`
	RequestSize  int     `json:"request_size,omitempty"`
	ResponseSize int     `json:"response_size,omitempty"`
	Outcome      string  `json:"outcome"`
	Error        string  `json:"error,omitempty"`
}

func newExportRecord(e log.Event) exportRecord {
	return exportRecord{
		Timestamp:    e.Timestamp.UTC().Format(timeFormat),
		RequestID:    e.RequestID,
		Operation:    e.Operation.String(),
		Method:       e.Method,
		Host:         e.Host,
		Path:         e.Path,
		StatusCode:   e.StatusCode,
		DurationMS:   float64(e.Duration.Microseconds()) / 1000,
		RequestSize:  e.RequestSize,
		ResponseSize: e.ResponseSize,
		Outcome:      e.Outcome.String(),
		Error:        e.Error,
	}
}

// RunExport exports the events of path matching opts to the given format.
// An empty output writes to w.
func RunExport(path, format, output string, opts FilterOptions, w io.Writer) error {
	if format != "jsonl" && format != "csv" {
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}

	reader, err := openFiltered(path, opts)
	if err != nil {
		return err
	}
	defer reader.Close()

	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if format == "csv" {
		return exportCSV(reader, w)
	}
	return exportJSONL(reader, w)
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(newExportRecord(event)); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "request_id", "operation", "method", "path", "status_code", "duration_ms", "outcome", "error"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		rec := newExportRecord(event)
		row := []string{
			rec.Timestamp,
			rec.RequestID,
			rec.Operation,
			rec.Method,
			rec.Path,
			strconv.Itoa(rec.StatusCode),
			strconv.FormatFloat(rec.DurationMS, 'f', 3, 64),
			rec.Outcome,
			rec.Error,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
