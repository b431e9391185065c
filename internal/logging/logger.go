// Package logging defines the structured logging abstraction used across the
// parsers and commands, with a logrus-backed implementation and a mock for
// tests.
package logging

// Field is a key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// Logger is the structured logging interface the rest of the code depends on.
// Implementations must be safe for concurrent use.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// Fatal logs the message and terminates the program.
	Fatal(msg string, fields ...Field)

	// WithError returns a derived logger with an error field attached.
	WithError(err error) Logger

	// WithField returns a derived logger with one extra field attached.
	WithField(key string, value interface{}) Logger

	// WithFields returns a derived logger with the given fields attached.
	WithFields(fields ...Field) Logger
}
