package logging

import (
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation defaults. A shelf backend logs little; small files with a short
// retention window are plenty.
const (
	DefaultMaxSizeMB  = 20
	DefaultMaxBackups = 3
	DefaultMaxAgeDays = 14
)

// RotationConfig controls log file rotation. Zero-valued fields fall back
// to the package defaults.
type RotationConfig struct {
	// MaxSizeMB is the size in megabytes at which the file rotates.
	MaxSizeMB int
	// MaxBackups is how many rotated files to keep.
	MaxBackups int
	// MaxAgeDays is how long rotated files are retained.
	MaxAgeDays int
	// Compress gzips rotated files.
	Compress bool
}

// DefaultRotationConfig returns the package rotation defaults with
// compression enabled.
func DefaultRotationConfig() RotationConfig {
	return RotationConfig{
		MaxSizeMB:  DefaultMaxSizeMB,
		MaxBackups: DefaultMaxBackups,
		MaxAgeDays: DefaultMaxAgeDays,
		Compress:   true,
	}
}

// NewFileWriter returns a zapcore.WriteSyncer that appends to path and
// rotates via lumberjack. The file is created lazily on first write.
//
// Example:
//
//	writer := logging.NewFileWriter("shelf.log", logging.DefaultRotationConfig())
//	core := zapcore.NewCore(encoder, writer, level)
func NewFileWriter(path string, cfg RotationConfig) zapcore.WriteSyncer {
	if cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = DefaultMaxSizeMB
	}
	if cfg.MaxBackups == 0 {
		cfg.MaxBackups = DefaultMaxBackups
	}
	if cfg.MaxAgeDays == 0 {
		cfg.MaxAgeDays = DefaultMaxAgeDays
	}

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	})
}
