// Package extract is the boundary between uploaded files and the text
// cleaner. Each Extractor turns the bytes of one file into a single string
// with the document's line breaks preserved as '\n'.
package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Format identifies a supported input format.
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatDOCX  Format = "docx"
	FormatImage Format = "image"
)

// extensionFormats maps accepted extensions (lower case, no dot) to formats.
var extensionFormats = map[string]Format{
	"pdf":  FormatPDF,
	"docx": FormatDOCX,
	"png":  FormatImage,
	"jpg":  FormatImage,
	"jpeg": FormatImage,
}

// SupportedExtensions returns the accepted file extensions in display order.
func SupportedExtensions() []string {
	return []string{"pdf", "docx", "png", "jpg", "jpeg"}
}

// FormatFromFilename returns the format for a file name by its final
// extension, compared case-insensitively.
func FormatFromFilename(name string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if f, ok := extensionFormats[ext]; ok {
		return f, nil
	}
	return "", &UnsupportedFormatError{Filename: name, Extension: ext}
}

// Source is one uploaded file.
type Source struct {
	Name string
	Data []byte
}

// Output is the text extracted from one source.
type Output struct {
	// Text is the raw extracted text, valid UTF-8 with '\n' line breaks.
	Text string

	// Warnings are non-fatal problems, e.g. a failed table pass.
	Warnings []string
}

// Extractor turns a file into text.
type Extractor interface {
	// Extract returns the raw text of src.
	Extract(ctx context.Context, src Source) (*Output, error)

	// Name returns the extractor identifier.
	Name() string

	// Formats returns the formats this extractor serves.
	Formats() []Format
}

// CleanText makes extractor output safe for line processing: invalid UTF-8 is
// replaced, "\r\n" and lone '\r' become '\n', and the text is put in NFC so
// composed and decomposed accents compare equal.
func CleanText(s string) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "\uFFFD")
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return norm.NFC.String(s)
}

// Run calls ext, converting a panic inside the extractor into an
// ExtractionError so one bad file cannot take down a batch.
func Run(ctx context.Context, ext Extractor, src Source) (out *Output, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = &ExtractionError{
				Filename:  src.Name,
				Extractor: ext.Name(),
				Err:       fmt.Errorf("panic: %v", r),
			}
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err = ext.Extract(ctx, src)
	if err != nil {
		return nil, err
	}
	out.Text = CleanText(out.Text)
	return out, nil
}
