// Package interfaces defines the contracts between maintenance workflows and their adapters.
//
//nolint:revive // Package name 'interfaces' is intentional for domain layer
package interfaces

// Logger is the structured logger every workflow reports progress through.
// Implementations must be safe to call with no fields.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field is a key/value pair attached to a log record
type Field struct {
	Key   string
	Value any
}

// F creates a Field
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// NoOpLogger discards everything; services fall back to it when given a nil logger
type NoOpLogger struct{}

func (*NoOpLogger) Debug(string, ...Field) {}
func (*NoOpLogger) Info(string, ...Field)  {}
func (*NoOpLogger) Warn(string, ...Field)  {}
func (*NoOpLogger) Error(string, ...Field) {}
