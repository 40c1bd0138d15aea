package resumeclean

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/resumeclean/pkg/extract"
)

// Exported error types. The extraction errors are re-exported from
// pkg/extract for use by consumers.
var (
	// ErrUnsupportedFormat marks a file skipped because of its extension.
	ErrUnsupportedFormat = extract.ErrUnsupportedFormat

	// ErrExtraction marks a file whose text could not be extracted.
	ErrExtraction = extract.ErrExtraction

	// ErrTooLarge marks a file over the configured size limit.
	ErrTooLarge = extract.ErrTooLarge

	// ErrCleaning marks a file whose text made the cleaner fail.
	ErrCleaning = errors.New("cleaning failed")
)

// UnsupportedFormatError provides the skipped file and extension.
// Use errors.As to check for this error type.
type UnsupportedFormatError = extract.UnsupportedFormatError

// ExtractionError provides the file and extractor that failed.
type ExtractionError = extract.ExtractionError

// CleaningError reports a failure (error or panic) inside the cleaner.
type CleaningError struct {
	Filename string
	Cleaner  string
	Err      error
}

func (e *CleaningError) Error() string {
	return fmt.Sprintf("%s cleaner failed for %s: %v", e.Cleaner, e.Filename, e.Err)
}

func (e *CleaningError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrCleaning.
func (e *CleaningError) Is(target error) bool {
	return target == ErrCleaning
}
