// Package util provides shared utilities for parsekit.
package util

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu       sync.RWMutex
	logLevel = new(slog.LevelVar)
	logger   *slog.Logger
)

func init() {
	logLevel.Set(slog.LevelInfo)
	logger = newLogger(os.Stderr)
}

func newLogger(w io.Writer) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Format time as HH:MM:SS
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(interface{ Format(string) string }); ok {
					return slog.String(slog.TimeKey, t.Format("15:04:05"))
				}
			}
			return a
		},
	})
	return slog.New(handler)
}

// SetLogOutput redirects the default logger to w.
func SetLogOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w)
}

// Debug logs a debug message using the default logger.
func Debug(format string, args ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Debug(fmt.Sprintf(format, args...))
}

// Warn logs a warning message using the default logger.
func Warn(format string, args ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Warn(fmt.Sprintf(format, args...))
}

// SetVerbose switches the default logger between debug and info level.
func SetVerbose(verbose bool) {
	if verbose {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// SetQuiet limits the default logger to errors.
func SetQuiet(quiet bool) {
	if quiet {
		logLevel.Set(slog.LevelError)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// With returns a logger with additional attributes.
func With(args ...any) *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger.With(args...)
}
