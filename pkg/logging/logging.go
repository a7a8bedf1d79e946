// Package logging configures structured logging for tipcalc binaries.
//
// Usage:
//
//	logging.Setup()                                 // from LOG_LEVEL / LOG_FORMAT
//	logging.SetupWithOptions(os.Stderr, logging.Options{Level: slog.LevelDebug})
//
// Environment variables:
//
//	LOG_LEVEL:  debug, info, warn, error (default: info)
//	LOG_FORMAT: text (colored, default) or json
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Options selects the handler built by SetupWithOptions.
type Options struct {
	Level slog.Level
	JSON  bool

	// NoColor disables ANSI colors in text output.
	NoColor bool
}

// Setup configures logging to stderr from the environment.
func Setup() {
	SetupWithOptions(os.Stderr, OptionsFromEnv())
}

// SetupWithLevel configures colored logging to stderr at the given level.
func SetupWithLevel(level slog.Level) {
	SetupWithOptions(os.Stderr, Options{Level: level})
}

// SetupWithOptions installs a default slog logger writing to w.
func SetupWithOptions(w io.Writer, opts Options) {
	slog.SetDefault(slog.New(NewHandler(w, opts)))
}

// NewHandler builds the slog handler described by opts.
func NewHandler(w io.Writer, opts Options) slog.Handler {
	if opts.JSON {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: opts.Level})
	}
	return tint.NewHandler(w, &tint.Options{
		Level:      opts.Level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
		NoColor:    opts.NoColor,
	})
}

// OptionsFromEnv reads LOG_LEVEL and LOG_FORMAT.
func OptionsFromEnv() Options {
	return Options{
		Level: ParseLevel(os.Getenv("LOG_LEVEL")),
		JSON:  strings.EqualFold(os.Getenv("LOG_FORMAT"), "json"),
	}
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
