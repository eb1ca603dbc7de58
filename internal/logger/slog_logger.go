package logger

import (
	"io"
	"log/slog"

	"github.com/natefinch/lumberjack"
)

// SlogLogger adapts a *slog.Logger to Logger.
type SlogLogger struct {
	logger *slog.Logger
	closer io.Closer
}

// NewConsoleLogger logs human-readable lines to w.
func NewConsoleLogger(level string, w io.Writer) *SlogLogger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	return &SlogLogger{logger: slog.New(slog.NewTextHandler(w, opts))}
}

// NewFileLogger logs JSON lines to a rotated file.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) *SlogLogger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}

	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	return &SlogLogger{logger: slog.New(slog.NewJSONHandler(writer, opts)), closer: writer}
}

func (l *SlogLogger) Debug(args ...interface{}) { l.logger.Debug(formatArgs(args...)) }
func (l *SlogLogger) Info(args ...interface{})  { l.logger.Info(formatArgs(args...)) }
func (l *SlogLogger) Warn(args ...interface{})  { l.logger.Warn(formatArgs(args...)) }
func (l *SlogLogger) Error(args ...interface{}) { l.logger.Error(formatArgs(args...)) }

func (l *SlogLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Nop discards everything.
type Nop struct{}

func (Nop) Debug(...interface{}) {}
func (Nop) Info(...interface{})  {}
func (Nop) Warn(...interface{})  {}
func (Nop) Error(...interface{}) {}
func (Nop) Close() error         { return nil }
