// Package logging configures the process-wide structured logger used by the
// native builds (server, static build, terminal preview).
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum log level to record (debug, info, warn, error).
	Level string
	// Format selects the output format: "text" or "json".
	Format string
	// Prefix is prepended to every line in text mode.
	Prefix string
	// Output is where log lines are written. Defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "text",
		Prefix: "cake",
		Output: os.Stderr,
	}
}

// New builds a logger from cfg without installing it globally.
func New(cfg Config) (*clog.Logger, error) {
	level, err := clog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	logger := clog.NewWithOptions(out, clog.Options{
		Level:           level,
		Prefix:          cfg.Prefix,
		ReportTimestamp: true,
	})
	switch strings.ToLower(cfg.Format) {
	case "", "text":
	case "json":
		logger.SetFormatter(clog.JSONFormatter)
	default:
		return nil, fmt.Errorf("invalid log format %q: must be text or json", cfg.Format)
	}
	return logger, nil
}

// Init builds a logger from cfg and installs it as the default logger, which
// is what the console package writes to in native builds.
func Init(cfg Config) (*clog.Logger, error) {
	logger, err := New(cfg)
	if err != nil {
		return nil, err
	}
	clog.SetDefault(logger)
	return logger, nil
}

// Default returns the process-wide logger.
func Default() *clog.Logger {
	return clog.Default()
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() *clog.Logger {
	return clog.NewWithOptions(io.Discard, clog.Options{})
}
