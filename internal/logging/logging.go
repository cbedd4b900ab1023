// Package logging configures structured logging with zerolog.
//
// The TUI owns the terminal, so folio never logs to stdout or stderr while
// running: the sink is the configured log file, or io.Discard when logging
// is disabled. Components derive their loggers via NewLogger and tag every
// event with a component field (api, pager, app).
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Level is the minimum severity to record.
type Level string

const (
	// LevelDebug logs debug messages and above.
	LevelDebug Level = "debug"

	// LevelInfo logs info messages and above.
	LevelInfo Level = "info"

	// LevelWarn logs warning messages and above.
	LevelWarn Level = "warn"

	// LevelError logs error messages only.
	LevelError Level = "error"
)

// Config holds logger configuration.
type Config struct {
	// Level is the minimum log level to output.
	Level Level

	// Pretty enables human-readable console output instead of JSON lines.
	Pretty bool

	// Output is the writer logs go to (default: io.Discard).
	Output io.Writer
}

// DefaultConfig returns the default logger configuration: info level, JSON
// lines, discarded output.
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Pretty: false,
		Output: io.Discard,
	}
}

// Setup configures the global zerolog logger and returns it.
func Setup(cfg Config) zerolog.Logger {
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	output := cfg.Output
	if output == nil {
		output = io.Discard
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: output}
	}

	logger := zerolog.New(output).With().Timestamp().Logger()
	log.Logger = logger
	return logger
}

// NewLogger derives a logger tagged with the given component name.
func NewLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// parseLevel maps a level string to zerolog's level, defaulting to info.
func parseLevel(level Level) zerolog.Level {
	switch strings.ToLower(string(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
