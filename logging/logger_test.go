package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// syncBuffer adapts bytes.Buffer to zapcore.WriteSyncer.
type syncBuffer struct {
	bytes.Buffer
}

func (b *syncBuffer) Sync() error { return nil }

func newCapturedLogger(level zapcore.Level) (*Logger, *syncBuffer) {
	buf := &syncBuffer{}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(NewJSONEncoderConfig()),
		buf,
		level,
	)
	return NewWithCore(core), buf
}

func TestLoggerWritesStructuredFields(t *testing.T) {
	logger, buf := newCapturedLogger(zapcore.DebugLevel)

	logger.Info("book imported",
		zap.String("title", "斗破苍穹"),
		zap.String("author", "天蚕土豆"),
	)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\noutput: %s", err, buf.String())
	}
	if entry[FieldMessage] != "book imported" {
		t.Errorf("message = %v, want %q", entry[FieldMessage], "book imported")
	}
	if entry["title"] != "斗破苍穹" {
		t.Errorf("title field = %v, want %q", entry["title"], "斗破苍穹")
	}
	if entry[FieldLevel] != "info" {
		t.Errorf("level = %v, want info", entry[FieldLevel])
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	logger, buf := newCapturedLogger(zapcore.WarnLevel)

	logger.Debug("hidden")
	logger.Info("also hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("below-level entries were written: %s", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("warn entry missing: %s", out)
	}
}

func TestLoggerSugaredPairs(t *testing.T) {
	logger, buf := newCapturedLogger(zapcore.InfoLevel)

	logger.Infow("book imported", "format", "txt", "size", 1024)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["format"] != "txt" {
		t.Errorf("format = %v, want txt", entry["format"])
	}
	if entry["size"] != float64(1024) {
		t.Errorf("size = %v, want 1024", entry["size"])
	}
}

func TestNilLoggerSyncIsSafe(t *testing.T) {
	var logger *Logger
	if err := logger.Sync(); err != nil {
		t.Errorf("nil logger Sync returned %v", err)
	}
}
