package logger

// Logger is the diagnostic log used by the store and the UI.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	// Close releases the log destination. Console loggers do not close their writer.
	Close() error
}
