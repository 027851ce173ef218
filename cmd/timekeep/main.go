// Command timekeep is an interactive terminal client for the timer API.
//
// It mirrors the remote timer history and running timers in a local store,
// echoes every store change, and periodically saves running timers back to
// the API.
//
// Usage:
//
//	timekeep [flags]
//
// Flags:
//
//	-config string       Configuration file path (YAML)
//	-api-url string      Timer API base URL
//	-log-level string    Log level: debug, info, warn, error
//	-traffic-log string  Write request traffic to this .tklog file
//	-autosave duration   Interval between autosaves of running timers (0 disables)
//
// Environment variables TIMEKEEP_API_URL, TIMEKEEP_LOG_LEVEL,
// TIMEKEEP_TRAFFIC_LOG, TIMEKEEP_AUTOSAVE and TIMEKEEP_DEFAULT_TIMEOUT
// override the file; flags override both.
//
// Examples:
//
//	# Use the hosted API
//	timekeep
//
//	# Use a local stand-in and record traffic
//	timekeep -api-url http://localhost:8080 -traffic-log ./timekeep.tklog
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/timekeep/timekeep-go/cmd/timekeep/interactive"
	"github.com/timekeep/timekeep-go/pkg/client"
	"github.com/timekeep/timekeep-go/pkg/config"
	tklog "github.com/timekeep/timekeep-go/pkg/log"
	"github.com/timekeep/timekeep-go/pkg/service"
	"github.com/timekeep/timekeep-go/pkg/store"
)

// Version information - set at build time via ldflags
var (
	Version   = "0.1.0"
	BuildDate = "dev"
	GitCommit = "unknown"
)

var (
	configFile  = flag.String("config", "", "Configuration file path (YAML)")
	apiURL      = flag.String("api-url", "", "Timer API base URL")
	logLevel    = flag.String("log-level", "", "Log level: debug, info, warn, error")
	trafficLog  = flag.String("traffic-log", "", "Write request traffic to this .tklog file")
	autosave    = flag.Duration("autosave", config.DefaultAutosave, "Interval between autosaves of running timers (0 disables)")
	showVersion = flag.Bool("version", false, "Show version information")
)

// shutdownTimeout bounds the final save of running timers.
const shutdownTimeout = 10 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	if *showVersion {
		fmt.Printf("timekeep %s (built %s, commit %s)\n", Version, BuildDate, GitCommit)
		return 0
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	console := &consoleWriter{w: os.Stderr}
	setupLogging(console, level)
	logger := slog.New(slog.NewTextHandler(console, &slog.HandlerOptions{Level: level}))

	loggers := []tklog.Logger{tklog.NewSlogAdapter(logger)}
	if cfg.TrafficLog != "" {
		fileLogger, err := tklog.NewFileLogger(cfg.TrafficLog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open traffic log: %v\n", err)
			return 1
		}
		defer fileLogger.Close()
		loggers = append(loggers, fileLogger)
		log.Printf("Traffic log: %s", fileLogger.Path())
	}

	c, err := client.New(client.Config{
		BaseURL:       cfg.APIURL,
		TrafficLogger: tklog.NewMultiLogger(loggers...),
		UserAgent:     "timekeep/" + Version,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	st := store.New(cfg.DefaultTimeout)
	svc := service.New(st, c, service.Config{Logger: logger})

	log.Printf("API: %s", c.BaseURL())
	log.Printf("Default timeout: %s", interactive.FormatDuration(st.DefaultTimeout()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sh, err := interactive.New(svc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	// Route log output through readline to avoid interfering with input
	console.Set(sh.Stdout())

	if err := svc.Refresh(ctx); err != nil {
		log.Printf("Warning: initial refresh failed: %v", err)
	} else {
		log.Printf("Loaded %d timers, %d running", len(st.Timers()), len(st.CurrentTimers()))
	}

	stopWatch := sh.WatchChanges()
	defer stopWatch()

	if cfg.Autosave > 0 {
		go runAutosave(ctx, svc, cfg.Autosave)
	}

	go sh.Run(ctx, cancel)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("Received signal: %v", sig)
	case <-ctx.Done():
		// Interactive quit
	}

	log.Println("Saving running timers...")
	saveCtx, saveCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	svc.PersistAll(saveCtx)
	saveCancel()

	log.Println("Goodbye!")
	return 0
}

// loadConfig layers the config file, the environment and explicitly set flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "api-url":
			cfg.APIURL = *apiURL
		case "log-level":
			cfg.LogLevel = *logLevel
		case "traffic-log":
			cfg.TrafficLog = *trafficLog
		case "autosave":
			cfg.Autosave = *autosave
		}
	})
	return cfg, cfg.Validate()
}

func setupLogging(w io.Writer, level slog.Level) {
	log.SetOutput(w)
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	switch {
	case level <= slog.LevelDebug:
		log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
	case level >= slog.LevelWarn:
		log.SetFlags(log.Ltime)
	}
}

// runAutosave saves running timers every interval until ctx is done.
func runAutosave(ctx context.Context, svc *service.Timers, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			saveCtx, cancel := context.WithTimeout(ctx, interval)
			svc.PersistAll(saveCtx)
			cancel()
		}
	}
}

// consoleWriter is an io.Writer whose destination can be switched once the
// readline shell exists.
type consoleWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (c *consoleWriter) Set(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.w = w
}

func (c *consoleWriter) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.w.Write(p)
}
