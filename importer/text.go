package importer

import (
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// DecodeText converts raw book bytes to a UTF-8 string. Files that are
// already valid UTF-8 (including ASCII) pass through unchanged; anything
// else is assumed to be GB18030, which covers the GBK/GB2312 text files
// that dominate CJK book uploads.
func DecodeText(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := simplifiedchinese.GB18030.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("importer: GB18030 decode failed: %w", err)
	}
	return string(decoded), nil
}

// ReadBookText loads a text book from disk as UTF-8, transcoding legacy
// encodings. Used by consumers that need content rather than metadata (the
// blurb prompt, ad filtering).
func ReadBookText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("importer: failed to read %q: %w", path, err)
	}
	return DecodeText(data)
}
