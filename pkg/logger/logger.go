// Package logger builds the zerolog logger shared across the service.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger at the given minimum level. In the development
// environment output is a human-friendly console writer; everywhere else it
// is line-delimited JSON suitable for log shippers.
func New(level, env string) zerolog.Logger {
	return NewWithOutput(level, env, os.Stdout)
}

// NewWithOutput is New with an explicit destination, used by tests to
// capture log lines.
func NewWithOutput(level, env string, out io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if env == "development" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Str("service", "board-api").
		Logger()
}

// parseLevel converts a level name to a zerolog.Level, defaulting to info
// for empty or unrecognised values.
func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
