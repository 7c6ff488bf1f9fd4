package logging

import (
	"time"

	"go.uber.org/zap/zapcore"
)

// Field names used by the JSON log output. Keeping them as constants means
// log consumers and tests agree on the keys.
const (
	FieldTimestamp  = "ts"
	FieldLevel      = "level"
	FieldCaller     = "caller"
	FieldMessage    = "msg"
	FieldStacktrace = "stacktrace"
)

// NewJSONEncoderConfig returns the encoder configuration for file output:
// ISO8601 timestamps, lowercase level names, short caller paths.
//
// This is a pure function; it always returns the same configuration.
func NewJSONEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:       FieldTimestamp,
		LevelKey:      FieldLevel,
		CallerKey:     FieldCaller,
		MessageKey:    FieldMessage,
		StacktraceKey: FieldStacktrace,
		LineEnding:    zapcore.DefaultLineEnding,

		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// NewConsoleEncoderConfig returns the encoder configuration for terminal
// output: colored capitalized levels and compact clock-only timestamps.
func NewConsoleEncoderConfig() zapcore.EncoderConfig {
	cfg := NewJSONEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncodeTime = clockTimeEncoder
	cfg.EncodeDuration = zapcore.StringDurationEncoder
	return cfg
}

// clockTimeEncoder renders 15:04:05.000 for console readability.
func clockTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05.000"))
}
