package extract

import (
	"fmt"
	"os"
)

// WithTempFile writes data to a new temporary file and calls fn with its
// path. The file is removed when fn returns or panics. Each call gets its own
// file, so concurrent or sequential callers never see each other's data.
func WithTempFile(data []byte, pattern string, fn func(path string) error) error {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	path := f.Name()
	defer func() { _ = os.Remove(path) }()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	return fn(path)
}
