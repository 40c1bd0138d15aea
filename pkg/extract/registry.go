package extract

import (
	"context"
	"fmt"
	"sort"
)

// Registry dispatches sources to the extractor registered for their format.
type Registry struct {
	extractors map[Format]Extractor
}

// NewRegistry creates a registry serving the formats of the given extractors.
// Later extractors replace earlier ones for the same format.
func NewRegistry(extractors ...Extractor) *Registry {
	r := &Registry{extractors: make(map[Format]Extractor)}
	for _, ext := range extractors {
		r.Register(ext)
	}
	return r
}

// Register adds an extractor for every format it reports.
func (r *Registry) Register(ext Extractor) {
	for _, f := range ext.Formats() {
		r.extractors[f] = ext
	}
}

// For returns the extractor registered for a format.
func (r *Registry) For(f Format) (Extractor, error) {
	ext, ok := r.extractors[f]
	if !ok {
		return nil, fmt.Errorf("no extractor registered for format %s", f)
	}
	return ext, nil
}

// Formats returns the registered formats, sorted.
func (r *Registry) Formats() []Format {
	formats := make([]Format, 0, len(r.extractors))
	for f := range r.extractors {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}

// Extract detects the format of src from its name and runs the matching
// extractor. Unsupported extensions return an *UnsupportedFormatError.
func (r *Registry) Extract(ctx context.Context, src Source) (*Output, Format, error) {
	format, err := FormatFromFilename(src.Name)
	if err != nil {
		return nil, "", err
	}

	ext, err := r.For(format)
	if err != nil {
		return nil, format, &ExtractionError{Filename: src.Name, Extractor: string(format), Err: err}
	}

	out, err := Run(ctx, ext, src)
	if err != nil {
		return nil, format, err
	}

	if warning := SniffMismatch(src); warning != "" {
		out.Warnings = append(out.Warnings, warning)
	}
	return out, format, nil
}
