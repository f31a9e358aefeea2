// Package logging provides a pluggable logging facade for the engine.
//
// The engine only ever logs through the Logger interface; callers embedding
// the engine in a larger application can supply their own backend, and
// library use without any wiring gets a no-op logger.
package logging

import (
	"os"

	charm "github.com/charmbracelet/log"
)

// Logger is the interface for logging backends.
type Logger interface {
	Debug(message string, keyvals ...any)
	Info(message string, keyvals ...any)
	Warn(message string, keyvals ...any)
	Error(message string, keyvals ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}

type consoleLogger struct {
	l *charm.Logger
}

// NewConsole returns a logger that writes human-readable output to stderr.
// When debug is true, debug-level messages are emitted as well.
func NewConsole(debug bool) Logger {
	l := charm.NewWithOptions(os.Stderr, charm.Options{
		ReportTimestamp: true,
	})
	if debug {
		l.SetLevel(charm.DebugLevel)
	}
	return &consoleLogger{l: l}
}

func (c *consoleLogger) Debug(message string, keyvals ...any) {
	c.l.Debug(message, keyvals...)
}

func (c *consoleLogger) Info(message string, keyvals ...any) {
	c.l.Info(message, keyvals...)
}

func (c *consoleLogger) Warn(message string, keyvals ...any) {
	c.l.Warn(message, keyvals...)
}

func (c *consoleLogger) Error(message string, keyvals ...any) {
	c.l.Error(message, keyvals...)
}
