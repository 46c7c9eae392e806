package port

// Fields - structured data attached to a log record
type Fields map[string]interface{}

// LoggerPort defines the logging contract used across the service
type LoggerPort interface {
	Info(msg string, fields Fields)

	Warn(msg string, fields Fields)

	Error(msg string, err error, fields Fields)

	Debug(msg string, fields Fields)
	// WithFields returns a logger that adds fields to every record
	WithFields(fields Fields) LoggerPort
}
