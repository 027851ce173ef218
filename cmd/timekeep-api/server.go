package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/timekeep/timekeep-go/cmd/timekeep-api/api"
)

// ServerConfig holds configuration for the HTTP server.
type ServerConfig struct {
	Port    int
	DBPath  string
	Version string
	Verbose bool
}

// Server is the stand-in timer REST API.
type Server struct {
	config        ServerConfig
	mux           *http.ServeMux
	server        *http.Server
	store         *api.Store
	timers        *api.ResourceAPI
	currentTimers *api.ResourceAPI
	closeOnce     sync.Once
	closeErr      error
}

// NewServer creates a new server with the given configuration.
func NewServer(cfg ServerConfig) (*Server, error) {
	store, err := api.NewStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	s := &Server{
		config:        cfg,
		mux:           http.NewServeMux(),
		store:         store,
		timers:        api.NewResourceAPI(store, api.CollectionTimers),
		currentTimers: api.NewResourceAPI(store, api.CollectionCurrentTimers),
	}

	s.registerRoutes()

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// registerRoutes sets up all HTTP routes.
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/info", s.handleInfo)

	for _, r := range []*api.ResourceAPI{s.timers, s.currentTimers} {
		s.mux.HandleFunc(r.Path(), r.HandleCollection)
		s.mux.HandleFunc(r.Prefix(), r.HandleItem)
	}
}

// Handler returns the root handler with request logging applied.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		if id := r.Header.Get("X-Request-ID"); id != "" {
			rec.Header().Set("X-Request-ID", id)
		}

		s.mux.ServeHTTP(rec, r)

		if s.config.Verbose || rec.status >= http.StatusBadRequest {
			log.Printf("%s %s -> %d (%s) %s",
				r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Microsecond),
				r.Header.Get("X-Request-ID"))
		}
	})
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.version(),
	})
}

// handleInfo returns the server version and resource counts.
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	timerCount, err := s.store.Count(api.CollectionTimers)
	if err != nil {
		log.Printf("Failed to count timers: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to count timers"})
		return
	}
	currentCount, err := s.store.Count(api.CollectionCurrentTimers)
	if err != nil {
		log.Printf("Failed to count current timers: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to count current timers"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"version":             s.version(),
		"timer_count":         timerCount,
		"current_timer_count": currentCount,
	})
}

func (s *Server) version() string {
	if s.config.Version == "" {
		return "dev"
	}
	return s.config.Version
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Close shuts down the server and closes the store.
func (s *Server) Close() error {
	s.closeOnce.Do(func() {
		s.server.Close()
		s.closeErr = s.store.Close()
	})
	return s.closeErr
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
