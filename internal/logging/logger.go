package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string // "console" (default) or "json"
	Output io.Writer
}

// New constructs a slog logger plus the level variable it observes. The level
// variable is handed to the configuration loader so a log-level key in the
// config file takes effect without ambient global state.
func New(opts Options) (*slog.Logger, *slog.LevelVar, error) {
	level, ok := ParseLevel(opts.Level)
	if !ok && strings.TrimSpace(opts.Level) != "" {
		return nil, nil, fmt.Errorf("log level: unsupported value %q", opts.Level)
	}
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	var handler slog.Handler
	switch format {
	case "", "console":
		handler = newConsoleHandler(out, levelVar)
	case "json":
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: levelVar})
	default:
		return nil, nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}
	return slog.New(handler), levelVar, nil
}

// ParseLevel maps a level name onto a slog level. The second return value
// reports whether the name is recognized; callers that must not change the
// active level on bad input (the config loader) check it before applying.
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error", "fatal":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}
