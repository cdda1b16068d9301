// Package logger provides the small leveled logger used by the loaders and
// the sales simulator. Three levels: Quiet suppresses everything, Normal
// prints info and warnings, Verbose adds per-customer debug detail.
package logger

import (
	"fmt"
	"io"
	"os"
)

// Level controls logger verbosity.
type Level int

const (
	Quiet Level = iota
	Normal
	Verbose
)

// Logger writes leveled, prefixed lines to a single output.
type Logger struct {
	level Level
	out   io.Writer
}

// New creates a logger at the given level. A nil out defaults to os.Stderr.
func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{level: level, out: out}
}

// Nop returns a logger that discards everything. Handy as a default for
// components that accept an optional logger.
func Nop() *Logger {
	return &Logger{level: Quiet, out: io.Discard}
}

// Debugf logs per-item detail, visible only at Verbose.
func (l *Logger) Debugf(format string, args ...any) {
	l.printf(Verbose, "      ", format, args...)
}

// Infof logs normal progress output.
func (l *Logger) Infof(format string, args ...any) {
	l.printf(Normal, "", format, args...)
}

// Warnf logs recoverable problems, like records skipped during a load.
func (l *Logger) Warnf(format string, args ...any) {
	l.printf(Normal, "warning: ", format, args...)
}

func (l *Logger) printf(min Level, prefix, format string, args ...any) {
	if l == nil || l.level < min {
		return
	}
	fmt.Fprintf(l.out, prefix+format+"\n", args...)
}
