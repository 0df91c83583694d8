// ABOUTME: Logrus-backed logger implementation with structured JSON output
// ABOUTME: Adapts logrus to the core Logger interface used across the service

package logrus

import (
	"io"
	"os"

	sirupsen "github.com/sirupsen/logrus"
)

// Logger implements the core Logger interface on top of logrus.
type Logger struct {
	log *sirupsen.Logger
}

// NewLogger creates a JSON-formatted logger writing to stdout at the given level.
// Unknown level strings fall back to info.
func NewLogger(level string) *Logger {
	log := sirupsen.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&sirupsen.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})

	parsed, err := sirupsen.ParseLevel(level)
	if err != nil {
		parsed = sirupsen.InfoLevel
	}
	log.SetLevel(parsed)

	return &Logger{log: log}
}

// SetOutput redirects log output, mainly for tests.
func (l *Logger) SetOutput(w io.Writer) {
	l.log.SetOutput(w)
}

// Debug logs a debug message with structured fields.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(sirupsen.Fields(fields)).Debug(msg)
}

// Info logs an info message with structured fields.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(sirupsen.Fields(fields)).Info(msg)
}

// Warn logs a warning message with structured fields.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(sirupsen.Fields(fields)).Warn(msg)
}

// Error logs an error message with structured fields.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(sirupsen.Fields(fields)).Error(msg)
}
