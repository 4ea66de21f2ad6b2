// Package logger provides prefixed, colored component loggers.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"
)

// ErrNilWriter is returned by New when no output is given.
var ErrNilWriter = errors.New("logger output is nil")

const colorReset = "\033[0m"

// Logger writes lines of the form "[PREFIX] [LEVEL] message".
type Logger struct {
	prefix string
	color  string
	out    *log.Logger
}

// New creates a logger tagged with prefix. The tag is wrapped in color, an
// ANSI escape; an empty color writes the tag plain.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	return &Logger{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

func (l *Logger) print(level, msg string) {
	tag := fmt.Sprintf("[%s]", l.prefix)
	if l.color != "" {
		tag = l.color + tag + colorReset
	}
	l.out.Printf("%s [%s] %s", tag, level, msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print("INFO", msg)
}

// Warn logs a recoverable problem.
func (l *Logger) Warn(msg string) {
	l.print("WARN", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.print("ERROR", msg)
}
