// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/porter/internal/core/ports"
	"go.trai.ch/zerr"
)

// Logger implements ports.Logger using log/slog. Structured errors carry
// their metadata into the log attributes.
type Logger struct {
	mu     sync.RWMutex
	logger *slog.Logger
}

// New creates a Logger writing human-readable output to stderr.
func New() ports.Logger {
	return &Logger{
		logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})),
	}
}

// SetOutput replaces the logger's output destination. Thread-safe.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error. zerr metadata is flattened into log attributes so
// structured context survives into the log stream.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	attrs := []any{}
	var zErr *zerr.Error
	if e, ok := err.(*zerr.Error); ok {
		zErr = e
	}
	if zErr != nil {
		for k, v := range zErr.Metadata() {
			attrs = append(attrs, slog.Any(k, v))
		}
	}
	l.logger.Error(err.Error(), attrs...)
}
