package logging

import (
	"os"

	"go.uber.org/zap/zapcore"
)

// NewMultiCore builds a core that tees every entry to the console and to a
// rotating log file. The file side always encodes JSON so the log can be
// processed by tooling; the console side is human-readable in development
// mode and JSON otherwise.
func NewMultiCore(level zapcore.Level, filePath string, isDev bool) zapcore.Core {
	fileWriter := NewFileWriter(filePath, DefaultRotationConfig())
	return NewMultiCoreWithWriters(level, zapcore.AddSync(os.Stdout), fileWriter, isDev)
}

// NewMultiCoreWithWriters is the writer-injectable variant used by tests
// and by callers that need custom destinations.
func NewMultiCoreWithWriters(level zapcore.Level, console, file zapcore.WriteSyncer, isDev bool) zapcore.Core {
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(NewJSONEncoderConfig()),
		file,
		level,
	)

	var consoleEncoder zapcore.Encoder
	if isDev {
		consoleEncoder = zapcore.NewConsoleEncoder(NewConsoleEncoderConfig())
	} else {
		consoleEncoder = zapcore.NewJSONEncoder(NewJSONEncoderConfig())
	}
	consoleCore := zapcore.NewCore(consoleEncoder, console, level)

	return zapcore.NewTee(consoleCore, fileCore)
}
