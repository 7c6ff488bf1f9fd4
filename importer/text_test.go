package importer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeTextUTF8Passthrough(t *testing.T) {
	in := "第一章 重生\nhello"
	got, err := DecodeText([]byte(in))
	if err != nil {
		t.Fatalf("DecodeText: %v", err)
	}
	if got != in {
		t.Errorf("UTF-8 input was altered: got %q", got)
	}
}

func TestDecodeTextGB18030(t *testing.T) {
	// "你好" in GB18030/GBK.
	gbk := []byte{0xC4, 0xE3, 0xBA, 0xC3}
	got, err := DecodeText(gbk)
	if err != nil {
		t.Fatalf("DecodeText: %v", err)
	}
	if got != "你好" {
		t.Errorf("DecodeText(GB18030) = %q, want 你好", got)
	}
}

func TestDecodeTextEmpty(t *testing.T) {
	got, err := DecodeText(nil)
	if err != nil {
		t.Fatalf("DecodeText: %v", err)
	}
	if got != "" {
		t.Errorf("DecodeText(nil) = %q, want empty", got)
	}
}

func TestReadBookText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.txt")
	if err := os.WriteFile(path, []byte{0xC4, 0xE3, 0xBA, 0xC3}, 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadBookText(path)
	if err != nil {
		t.Fatalf("ReadBookText: %v", err)
	}
	if got != "你好" {
		t.Errorf("ReadBookText = %q, want 你好", got)
	}

	if _, err := ReadBookText(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("missing file: want error, got nil")
	}
}
