package model

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines the interface for logging operations
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	IsLevelEnabled(level LogLevel) bool
}

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// ParseLogLevel maps "debug", "info", "warn" and "error" to a LogLevel
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogLevelDebug, nil
	case "info", "":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	default:
		return LogLevelInfo, ErrInvalidLogLevel{Level: s}
	}
}

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case LogLevelDebug:
		return zapcore.DebugLevel
	case LogLevelWarn:
		return zapcore.WarnLevel
	case LogLevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// DefaultLogger implements the Logger interface on top of a zap SugaredLogger
type DefaultLogger struct {
	atom   zap.AtomicLevel
	logger *zap.SugaredLogger
}

// NewDefaultLogger creates a console logger writing to stderr at the given level
func NewDefaultLogger(level LogLevel) *DefaultLogger {
	return newDefaultLogger(level, os.Stderr, false)
}

// NewProductionLogger creates a JSON logger writing to stderr at the given level
func NewProductionLogger(level LogLevel) *DefaultLogger {
	return newDefaultLogger(level, os.Stderr, true)
}

func newDefaultLogger(level LogLevel, w io.Writer, production bool) *DefaultLogger {
	var encoderConfig zapcore.EncoderConfig
	var encoder zapcore.Encoder
	if production {
		encoderConfig = zap.NewProductionEncoderConfig()
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	atom := zap.NewAtomicLevelAt(level.zapLevel())
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), atom)

	return &DefaultLogger{
		atom:   atom,
		logger: zap.New(core).Sugar(),
	}
}

// SetLevel changes the minimum level that is written. It is safe to call
// while other goroutines are logging; loggers returned by Named share the level.
func (l *DefaultLogger) SetLevel(level LogLevel) {
	l.atom.SetLevel(level.zapLevel())
}

// Named returns a logger with name appended to the logger's name
func (l *DefaultLogger) Named(name string) *DefaultLogger {
	return &DefaultLogger{
		atom:   l.atom,
		logger: l.logger.Named(name),
	}
}

// Debug logs a debug message
func (l *DefaultLogger) Debug(format string, args ...interface{}) {
	if l.IsLevelEnabled(LogLevelDebug) {
		l.logger.Debugf(format, args...)
	}
}

// Info logs an informational message
func (l *DefaultLogger) Info(format string, args ...interface{}) {
	if l.IsLevelEnabled(LogLevelInfo) {
		l.logger.Infof(format, args...)
	}
}

// Warn logs a warning message
func (l *DefaultLogger) Warn(format string, args ...interface{}) {
	if l.IsLevelEnabled(LogLevelWarn) {
		l.logger.Warnf(format, args...)
	}
}

// Error logs an error message
func (l *DefaultLogger) Error(format string, args ...interface{}) {
	if l.IsLevelEnabled(LogLevelError) {
		l.logger.Errorf(format, args...)
	}
}

// IsLevelEnabled returns true if the given log level is enabled
func (l *DefaultLogger) IsLevelEnabled(level LogLevel) bool {
	return l.atom.Enabled(level.zapLevel())
}

// Sync flushes any buffered log entries
func (l *DefaultLogger) Sync() error {
	return l.logger.Sync()
}

// NoOpLogger is a logger implementation that discards all log messages
type NoOpLogger struct{}

// NewNoOpLogger creates a new NoOpLogger
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// Debug discards the debug message
func (l *NoOpLogger) Debug(format string, args ...interface{}) {}

// Info discards the informational message
func (l *NoOpLogger) Info(format string, args ...interface{}) {}

// Warn discards the warning message
func (l *NoOpLogger) Warn(format string, args ...interface{}) {}

// Error discards the error message
func (l *NoOpLogger) Error(format string, args ...interface{}) {}

// IsLevelEnabled always returns false for NoOpLogger
func (l *NoOpLogger) IsLevelEnabled(level LogLevel) bool {
	return false
}

var (
	// DefaultLoggerInstance is the default logger used by the package
	DefaultLoggerInstance Logger = NewDefaultLogger(LogLevelInfo)
)

// SetDefaultLogger sets the default logger instance
func SetDefaultLogger(logger Logger) {
	DefaultLoggerInstance = logger
}

// GetDefaultLogger returns the current default logger instance
func GetDefaultLogger() Logger {
	return DefaultLoggerInstance
}
