package extract

import (
	"errors"
	"fmt"
)

// Sentinel errors. Check with errors.Is.
var (
	// ErrUnsupportedFormat is returned for files whose extension is not accepted.
	ErrUnsupportedFormat = errors.New("unsupported file type")

	// ErrExtraction is returned when a format-specific extractor fails.
	ErrExtraction = errors.New("extraction failed")

	// ErrTooLarge is returned when a file exceeds the configured size limit.
	ErrTooLarge = errors.New("file too large")
)

// UnsupportedFormatError reports a file that was skipped because of its extension.
type UnsupportedFormatError struct {
	Filename  string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Extension == "" {
		return fmt.Sprintf("unsupported file type: %s has no extension", e.Filename)
	}
	return fmt.Sprintf("unsupported file type: .%s (%s)", e.Extension, e.Filename)
}

// Is reports whether target is ErrUnsupportedFormat.
func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// ExtractionError reports a failure inside a format-specific extractor.
type ExtractionError struct {
	Filename  string
	Extractor string
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s extraction failed for %s: %v", e.Extractor, e.Filename, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrExtraction.
func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtraction
}

// Errorf builds an ExtractionError with a formatted cause.
func Errorf(filename, extractor, format string, args ...any) error {
	return &ExtractionError{
		Filename:  filename,
		Extractor: extractor,
		Err:       fmt.Errorf(format, args...),
	}
}
