// Package logging provides structured logging for the shelf backend: a zap
// logger teed to the console and a lumberjack-rotated log file.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger with the backend's console+file output wiring.
//
// Composition:
//   - file writer with rotation (file_writer.go)
//   - console+file tee core (multi_core.go)
//   - encoder configs (encoder_config.go)
//
// Example:
//
//	logger := logging.New(true, "shelf.log", zapcore.DebugLevel)
//	defer logger.Sync()
//	logger.Info("book imported", zap.String("title", title))
type Logger struct {
	zap   *zap.Logger
	sugar *zap.SugaredLogger
}

// New creates a Logger.
//
// isDev selects colored human-readable console output; production mode
// encodes JSON on both sinks. The log file at path is created on first
// write and rotated with the package defaults.
func New(isDev bool, path string, level zapcore.Level) *Logger {
	core := NewMultiCore(level, path, isDev)
	return fromCore(core)
}

// NewWithCore builds a Logger over an arbitrary core. Used by tests to
// capture output in a buffer.
func NewWithCore(core zapcore.Core) *Logger {
	return fromCore(core)
}

func fromCore(core zapcore.Core) *Logger {
	z := zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(1),
	)
	return &Logger{zap: z, sugar: z.Sugar()}
}

// Sync flushes buffered entries. Call before exit.
func (l *Logger) Sync() error {
	if l == nil || l.zap == nil {
		return nil
	}
	return l.zap.Sync()
}

// Debug logs at DebugLevel with structured fields.
func (l *Logger) Debug(msg string, fields ...zap.Field) { l.zap.Debug(msg, fields...) }

// Info logs at InfoLevel with structured fields.
func (l *Logger) Info(msg string, fields ...zap.Field) { l.zap.Info(msg, fields...) }

// Warn logs at WarnLevel with structured fields.
func (l *Logger) Warn(msg string, fields ...zap.Field) { l.zap.Warn(msg, fields...) }

// Error logs at ErrorLevel with structured fields.
func (l *Logger) Error(msg string, fields ...zap.Field) { l.zap.Error(msg, fields...) }

// Fatal logs at FatalLevel and then exits.
func (l *Logger) Fatal(msg string, fields ...zap.Field) { l.zap.Fatal(msg, fields...) }

// Infow logs at InfoLevel with loosely-typed key-value pairs.
//
// Example:
//
//	logger.Infow("book imported", "title", title, "author", author)
func (l *Logger) Infow(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, keysAndValues...)
}

// Errorw logs at ErrorLevel with loosely-typed key-value pairs.
func (l *Logger) Errorw(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, keysAndValues...)
}
