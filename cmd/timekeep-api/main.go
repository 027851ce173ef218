// Command timekeep-api serves a local stand-in for the hosted timer REST API.
//
// It offers the same resources as the hosted API:
//   - /timers and /timers/{id}
//   - /currentTimers and /currentTimers/{id}
//
// Records are opaque JSON objects persisted in SQLite. POST assigns the next
// sequential id unless the body carries one.
//
// Usage:
//
//	timekeep-api [flags]
//
// Flags:
//
//	-port int          HTTP server port (default 8080)
//	-db string         SQLite database path (default "./timekeep-api.db")
//	-log-level string  Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Serve on port 9000 and point the client at it
//	timekeep-api -port 9000
//	timekeep -api-url http://localhost:9000
//
//	# Use an in-memory database
//	timekeep-api -db :memory:
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

// Version information - set at build time via ldflags
var (
	Version   = "0.1.0"
	BuildDate = "dev"
	GitCommit = "unknown"
)

var (
	port        = flag.Int("port", 8080, "HTTP server port")
	dbPath      = flag.String("db", "./timekeep-api.db", "SQLite database path")
	logLevel    = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	showVersion = flag.Bool("version", false, "Show version information")
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	if *showVersion {
		fmt.Printf("timekeep-api %s (built %s, commit %s)\n", Version, BuildDate, GitCommit)
		return 0
	}

	log.SetFlags(log.Ldate | log.Ltime)
	if *logLevel == "debug" {
		log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	}

	srv, err := NewServer(ServerConfig{
		Port:    *port,
		DBPath:  *dbPath,
		Version: Version,
		Verbose: *logLevel == "debug" || *logLevel == "info",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create server: %v\n", err)
		return 1
	}
	defer srv.Close()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Shutting down...")
		srv.Close()
	}()

	log.Printf("Starting timekeep-api on http://localhost:%d", *port)
	log.Printf("Database: %s", *dbPath)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(os.Stderr, "Error: server failed: %v\n", err)
		return 1
	}

	return 0
}
