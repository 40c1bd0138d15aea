// Package artifact writes the cleaned-text download files.
package artifact

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidName is returned for artifact names that are not a plain file name.
var ErrInvalidName = errors.New("invalid artifact name")

// DefaultFileMode is the permission of written artifacts.
const DefaultFileMode os.FileMode = 0o644

// Writer stores artifacts in a single directory.
type Writer struct {
	dir  string
	mode os.FileMode
}

// New creates a writer rooted at dir. The directory is created on first write.
func New(dir string) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{dir: dir, mode: DefaultFileMode}
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// Write stores content under name and returns the path written. The content
// goes to a temporary file in the same directory which is then renamed over
// the destination, so a reader never sees a partial artifact.
func (w *Writer) Write(name, content string) (string, error) {
	if err := validName(name); err != nil {
		return "", err
	}
	if err := os.MkdirAll(w.dir, 0o750); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	dest := filepath.Join(w.dir, name)
	tmp, err := os.CreateTemp(w.dir, ".tmp-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	fail := func(err error) (string, error) {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", err
	}

	if _, err := tmp.WriteString(content); err != nil {
		return fail(fmt.Errorf("writing %s: %w", name, err))
	}
	if err := tmp.Sync(); err != nil {
		return fail(fmt.Errorf("syncing %s: %w", name, err))
	}
	if err := tmp.Chmod(w.mode); err != nil {
		return fail(fmt.Errorf("setting mode on %s: %w", name, err))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("closing %s: %w", name, err)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("replacing %s: %w", dest, err)
	}
	return dest, nil
}

// validName accepts only a bare file name: no directories, no "." or "..".
func validName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
