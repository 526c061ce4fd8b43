// Package logger provides the process-wide leveled logger for portbridge.
//
// It wraps log/slog with a text handler and package-level helpers so the rest
// of the codebase does not need to thread a logger instance around. The CLI
// initializes it once with the configured level; everything else just logs.
package logger

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Config controls logger initialization.
type Config struct {
	// Level is one of "debug", "info", "warn" or "error". Unknown values
	// fall back to "info".
	Level string
}

var (
	defaultLogger *slog.Logger
	levelVar      slog.LevelVar
	once          sync.Once
)

// Init initializes the default logger. It is safe to call multiple times;
// only the first call configures the handler. Packages that log before Init
// is called get the default "info" level.
func Init(cfg Config) {
	once.Do(func() {
		levelVar.Set(ParseLevel(cfg.Level))
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: &levelVar,
		})
		defaultLogger = slog.New(handler)
		slog.SetDefault(defaultLogger)
	})
}

// ParseLevel converts a level name to a slog.Level, defaulting to Info.
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

// get returns the default logger, initializing it on first use. Going
// through Init unconditionally keeps the read of defaultLogger ordered after
// the once-guarded write, so concurrent first loggers do not race.
func get() *slog.Logger {
	Init(Config{})
	return defaultLogger
}

// Debug logs at Debug level.
func Debug(msg string, args ...any) {
	get().Debug(msg, args...)
}

// Info logs at Info level.
func Info(msg string, args ...any) {
	get().Info(msg, args...)
}

// Warn logs at Warn level.
func Warn(msg string, args ...any) {
	get().Warn(msg, args...)
}

// Error logs at Error level.
func Error(msg string, args ...any) {
	get().Error(msg, args...)
}

// Fatal logs at Error level and exits the process.
func Fatal(msg string, args ...any) {
	get().Error(msg, args...)
	os.Exit(1)
}

// With returns a logger carrying the given attributes.
func With(args ...any) *slog.Logger {
	return get().With(args...)
}
