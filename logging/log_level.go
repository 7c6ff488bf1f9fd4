package logging

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// ParseLevel parses a log level string, case-insensitively. Empty or
// unrecognized input yields the default. This never errors: a bad
// SHELF_LOG_LEVEL value should not keep the application from starting.
//
// Valid levels: debug, info, warn/warning, error, fatal.
func ParseLevel(s string, def zapcore.Level) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return def
	}
}
