// Package logging wraps a logr.Logger with the few verbosity levels the
// decoders use. The zero configuration discards everything.
package logging

import (
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

const (
	LevelInfo  = 0
	LevelDebug = 1
	LevelTrace = 2
)

// Logger is a thin wrapper around logr.Logger.
type Logger struct {
	log logr.Logger
}

// New wraps log. A logger without a sink is replaced by logr.Discard().
func New(log logr.Logger) *Logger {
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	return &Logger{log: log}
}

// Discard returns a Logger that drops all messages.
func Discard() *Logger {
	return &Logger{log: logr.Discard()}
}

// NewWriter returns a logr.Logger that prints to w, enabling messages up to
// the given verbosity.
func NewWriter(w io.Writer, verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(w, args)
	}, funcr.Options{Verbosity: verbosity})
}

// WithName returns a Logger with name appended to the logger's name.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{log: l.log.WithName(name)}
}

// Logr returns the underlying logr.Logger.
func (l *Logger) Logr() logr.Logger {
	return l.log
}

// Info logs at the default level.
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Info(msg, keysAndValues...)
}

// Warn logs a non-fatal problem at info level, tagged so it stands out.
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.log.Info(msg, append([]interface{}{"warning", true}, keysAndValues...)...)
}

// Debug logs at V(LevelDebug).
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.V(LevelDebug).Info(msg, keysAndValues...)
}

// Trace logs at V(LevelTrace), used for per-command detail.
func (l *Logger) Trace(msg string, keysAndValues ...interface{}) {
	l.log.V(LevelTrace).Info(msg, keysAndValues...)
}

// Error logs err regardless of verbosity.
func (l *Logger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(err, msg, keysAndValues...)
}
