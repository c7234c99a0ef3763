package logger

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	corelogger "github.com/kilianp07/observer/core/logger"
)

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// NopLogger implements Logger with no-op methods.
type NopLogger = corelogger.NopLogger

// New returns a Logger for the given component. The output format follows
// Configure, or the APP_ENV variable when Configure was not called.
func New(component string) Logger {
	return NewZerologLogger(component)
}

// Configure applies the global level and output format. Format is "json",
// "console" or empty to keep the APP_ENV based default.
func Configure(level, format string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	switch strings.ToLower(format) {
	case "", "json", "console":
		outputFormat = strings.ToLower(format)
	default:
		return fmt.Errorf("unknown log format %s", format)
	}
	return nil
}

// ParseLevel converts a level name into a zerolog level. Empty means info.
func ParseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %s", level)
	}
	return lvl, nil
}
