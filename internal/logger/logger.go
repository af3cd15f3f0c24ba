package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var base zerolog.Logger

// Init configures the global JSON logger.
//
// Parameters:
//   - level: debug|info|warn|error (unknown values fall back to info)
//   - pretty: human-readable console output instead of JSON
//
// Values normally come from config (LOG_LEVEL / LOG_PRETTY).
func Init(level string, pretty bool) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var w io.Writer = os.Stdout
	if pretty {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	base = zerolog.New(w).With().Timestamp().Logger().Level(parseLevel(level))
}

// L returns the global logger. Call Init() once on startup; uninitialized
// use falls back to info-level JSON output.
func L() *zerolog.Logger {
	if base.GetLevel() == zerolog.NoLevel {
		Init("info", false)
	}
	return &base
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
