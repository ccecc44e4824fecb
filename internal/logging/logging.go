// Package logging provides a simple leveled logger on top of go-hclog.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) hclog() hclog.Level {
	switch l {
	case LevelDebug:
		return hclog.Debug
	case LevelInfo:
		return hclog.Info
	case LevelWarn:
		return hclog.Warn
	case LevelError:
		return hclog.Error
	default:
		return hclog.Off
	}
}

// ParseLevel parses a log level string.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger is a printf-style leveled logger.
type Logger struct {
	hc hclog.Logger
}

// New creates a logger writing to w. A nil w means stderr.
func New(level Level, w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{
		hc: hclog.New(&hclog.LoggerOptions{
			Name:       "ls-blackbody",
			Level:      level.hclog(),
			Output:     w,
			TimeFormat: "15:04:05.000",
		}),
	}
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level Level) {
	l.hc.SetLevel(level.hclog())
}

// Named returns a sub-logger tagged with a component name.
func (l *Logger) Named(name string) *Logger {
	return &Logger{hc: l.hc.Named(name)}
}

// With returns a logger that attaches key/value pairs to every line.
func (l *Logger) With(args ...interface{}) *Logger {
	return &Logger{hc: l.hc.With(args...)}
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.hc.IsDebug() {
		l.hc.Debug(fmt.Sprintf(format, args...))
	}
}

// Info logs an info message.
func (l *Logger) Info(format string, args ...interface{}) {
	if l.hc.IsInfo() {
		l.hc.Info(fmt.Sprintf(format, args...))
	}
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.hc.IsWarn() {
		l.hc.Warn(fmt.Sprintf(format, args...))
	}
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	if l.hc.IsError() {
		l.hc.Error(fmt.Sprintf(format, args...))
	}
}

// Discard returns a logger that discards all output.
func Discard() *Logger {
	return &Logger{hc: hclog.NewNullLogger()}
}
