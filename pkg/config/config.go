// Package config loads timekeep settings from a YAML file and the environment.
//
// Precedence, lowest to highest: built-in defaults, the YAML file, TIMEKEEP_*
// environment variables, command-line flags (applied by the commands).
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/timekeep/timekeep-go/pkg/client"
)

// Environment variables.
const (
	EnvAPIURL         = "TIMEKEEP_API_URL"
	EnvLogLevel       = "TIMEKEEP_LOG_LEVEL"
	EnvTrafficLog     = "TIMEKEEP_TRAFFIC_LOG"
	EnvAutosave       = "TIMEKEEP_AUTOSAVE"
	EnvDefaultTimeout = "TIMEKEEP_DEFAULT_TIMEOUT"
)

// FallbackTimeout is used when no usable default timeout is configured.
const FallbackTimeout = 6 * time.Minute

// DefaultAutosave is the default interval between autosaves of running timers.
const DefaultAutosave = 30 * time.Second

// Config errors.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

// LookupFunc resolves an environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Config holds timekeep settings.
type Config struct {
	// APIURL is the timer API base URL.
	APIURL string `yaml:"api_url"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// TrafficLog is the .tklog file path; empty disables the traffic file.
	TrafficLog string `yaml:"traffic_log"`

	// Autosave is the interval between autosaves of running timers; 0 disables it.
	Autosave time.Duration `yaml:"autosave"`

	// DefaultTimeout is resolved from TIMEKEEP_DEFAULT_TIMEOUT only; it is
	// not read from the file.
	DefaultTimeout time.Duration `yaml:"-"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		APIURL:         client.DefaultBaseURL,
		LogLevel:       "info",
		Autosave:       DefaultAutosave,
		DefaultTimeout: FallbackTimeout,
	}
}

// Load reads the YAML file at path over the defaults. A missing file, or an
// empty path, yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, filepath.Base(path), err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the file-backed settings to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides settings from TIMEKEEP_* variables and resolves the
// default timeout.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	if v, ok := lookup(EnvAPIURL); ok && v != "" {
		c.APIURL = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvTrafficLog); ok {
		c.TrafficLog = v
	}
	if v, ok := lookup(EnvAutosave); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvAutosave, err)
		}
		c.Autosave = d
	}
	c.DefaultTimeout = DefaultTimeoutFromEnv(lookup)
	return c.Validate()
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Autosave < 0 {
		return fmt.Errorf("%w: autosave must not be negative", ErrInvalidConfig)
	}
	if c.APIURL == "" {
		return fmt.Errorf("%w: api_url is empty", ErrInvalidConfig)
	}
	return nil
}

// ParseLevel maps a level name to an slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %s (use: debug, info, warn, error)", s)
	}
}
