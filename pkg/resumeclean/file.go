package resumeclean

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// File is one uploaded resume.
type File struct {
	Name string
	Data []byte
}

// ReadFile loads the file at path. The File is named after the last path
// element so artifacts land beside each other in the output directory.
func ReadFile(path string) (File, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- path is chosen by the user
	if err != nil {
		return File{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return File{Name: filepath.Base(path), Data: data}, nil
}

// ReadFrom loads a file from r under the given name, e.g. stdin.
func ReadFrom(name string, r io.Reader) (File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return File{}, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return File{Name: name, Data: data}, nil
}

// DownloadName returns the artifact name for an uploaded file: the name with
// its final extension removed, plus "_cleaned.txt". A name without an
// extension is used whole.
func DownloadName(filename string) string {
	base := filepath.Base(filename)
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return base + "_cleaned.txt"
}
