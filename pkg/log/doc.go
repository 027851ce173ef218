// Package log provides request traffic logging for the timer API client.
//
// This package defines the Logger interface and the Event type recording one
// HTTP exchange with the remote timer API. It is separate from operational
// logging (slog): the traffic log is a complete machine-readable trace of what
// the client sent and what came back.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.TrafficLogger = log.NewSlogAdapter(slog.Default())
//
//	// For later analysis: write to binary file
//	cfg.TrafficLogger, _ = log.NewFileLogger("/var/log/timekeep/client.tklog")
//
//	// Both: use MultiLogger
//	cfg.TrafficLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with the .tklog extension.
// The timekeep-log CLI tool provides viewing, export and statistics.
package log
