// File: logx.go
// Title: Leveled Logger Implementation
// Description: Implements a small leveled logger for command diagnostics.
//              Entries are written as timestamped text lines; the report
//              output of the tools goes to stdout unlogged, so the logger
//              defaults to stderr.
// Author: janAlonola
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-21
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with leveled text output

package logx

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Fields holds optional key/value context attached to a logger
type Fields map[string]any

// Logger writes leveled, timestamped text lines to an output writer
type Logger struct {
	level  Level
	output io.Writer
	fields Fields

	mu sync.Mutex
}

// New creates a logger writing to stderr at the given level
func New(level Level) *Logger {
	return &Logger{
		level:  level,
		output: os.Stderr,
	}
}

// NewWithOutput creates a logger writing to the given writer.
// Useful for capturing output in tests.
func NewWithOutput(level Level, output io.Writer) *Logger {
	return &Logger{
		level:  level,
		output: output,
	}
}

// With returns a copy of the logger with the given fields attached to
// every entry it writes
func (l *Logger) With(fields Fields) *Logger {
	merged := make(Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Logger{
		level:  l.level,
		output: l.output,
		fields: merged,
	}
}

// Level returns the minimum level the logger emits
func (l *Logger) Level() Level {
	return l.level
}

// Debugf logs a formatted message at debug level
func (l *Logger) Debugf(format string, args ...any) {
	l.log(LevelDebug, format, args...)
}

// Infof logs a formatted message at info level
func (l *Logger) Infof(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

// Warnf logs a formatted message at warn level
func (l *Logger) Warnf(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

// Errorf logs a formatted message at error level
func (l *Logger) Errorf(format string, args ...any) {
	l.log(LevelError, format, args...)
}

func (l *Logger) log(level Level, format string, args ...any) {
	if level < l.level {
		return
	}

	var b strings.Builder
	b.WriteString(time.Now().Format("2006-01-02 15:04:05"))
	b.WriteByte(' ')
	fmt.Fprintf(&b, "%-5s ", level)
	fmt.Fprintf(&b, format, args...)

	if len(l.fields) > 0 {
		keys := make([]string, 0, len(l.fields))
		for k := range l.fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, l.fields[k])
		}
	}
	b.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.output, b.String())
}
