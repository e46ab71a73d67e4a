// Package logging configures the global zerolog logger and hands out
// component-scoped child loggers.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config controls the global logger.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string

	// Format is the output format (json, console).
	Format string

	// EnableCaller adds caller information to logs.
	EnableCaller bool

	// Output overrides the log destination (default: stderr).
	Output io.Writer
}

var (
	mu   sync.Mutex
	root zerolog.Logger = newLogger(Config{Level: "info", Format: "console"})
)

// Init configures the global logger. Safe to call more than once; the last
// call wins.
func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	root = newLogger(cfg)
}

// Component returns a child logger tagged with a component name.
func Component(name string) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return root.With().Str("component", name).Logger()
}

func newLogger(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	if !strings.EqualFold(cfg.Format, "json") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	logger := zerolog.New(out).Level(parseLevel(cfg.Level)).With().Timestamp()
	if cfg.EnableCaller {
		logger = logger.Caller()
	}
	return logger.Logger()
}

func parseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}
