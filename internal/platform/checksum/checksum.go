package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var ErrMismatch = errors.New("checksum mismatch")

// File returns the lowercase hex sha256 of the file at path.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func Verify(path, want string) error {
	got, err := File(path)
	if err != nil {
		return err
	}
	if got != strings.ToLower(strings.TrimSpace(want)) {
		return fmt.Errorf("%w: %s", ErrMismatch, path)
	}
	return nil
}
