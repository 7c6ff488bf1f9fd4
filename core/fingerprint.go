package core

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/blake2b"
)

// FingerprintFile computes the BLAKE2b-256 digest of a file as a lowercase
// hex string. The digest identifies a book's content regardless of its
// filename, so re-dropping a renamed file does not create a duplicate shelf
// entry.
func FingerprintFile(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("fingerprint: path cannot be empty")
	}
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("fingerprint: failed to open %q: %w", path, err)
	}
	defer f.Close()
	return FingerprintReader(f)
}

// FingerprintReader computes the BLAKE2b-256 digest of a reader's content
// as a lowercase hex string.
func FingerprintReader(r io.Reader) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("fingerprint: read failed: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
