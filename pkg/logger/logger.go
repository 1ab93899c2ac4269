// Package logger provides logging functionality for the dependency analyzer.
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// defaultLogger is a thread-safe logger backed by zerolog.
type defaultLogger struct {
	mu     sync.Mutex
	logger zerolog.Logger
}

// NewDefaultLogger creates a new default logger writing to stderr, so that reports
// printed on stdout stay clean.
func NewDefaultLogger() Logger {
	return NewLogger(os.Stderr)
}

// NewLogger creates a logger writing human readable lines to w.
func NewLogger(w io.Writer) Logger {
	writer := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}
	return &defaultLogger{
		logger: zerolog.New(writer).With().Timestamp().Logger(),
	}
}

// Logf writes a formatted message with thread safety.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.logger.Info().Msgf(format, args...)
}
