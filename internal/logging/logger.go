// Package logging keeps the rest of the code independent of the logging
// framework. Log output goes to stderr so it never mixes with answers.
package logging

// Logger is a structured, levelled logger.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a logger that attaches err to every entry.
	WithError(err error) Logger
	WithField(key string, value interface{}) Logger
	WithFields(fields ...Field) Logger
}

// Field is a key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// Standard field names.
const (
	FieldFile      = "file_path"
	FieldPage      = "page"
	FieldCount     = "count"
	FieldOperation = "operation"
	FieldModel     = "model"
	FieldBackend   = "backend"
	FieldDuration  = "duration_ms"
)
