package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TextWriter prints records as human-readable blocks, one per file.
type TextWriter struct {
	w       *bufio.Writer
	written int
}

// NewTextWriter creates a text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

// Write prints a Record. Other values are printed with %v.
func (t *TextWriter) Write(data any) error {
	switch v := data.(type) {
	case Record:
		t.writeRecord(v)
	case *Record:
		t.writeRecord(*v)
	default:
		fmt.Fprintf(t.w, "%v\n", v)
	}
	return t.w.Flush()
}

// Flush flushes the buffer.
func (t *TextWriter) Flush() error {
	return t.w.Flush()
}

func (t *TextWriter) writeRecord(r Record) {
	if t.written > 0 {
		t.w.WriteString("\n")
	}
	t.written++

	if r.Format != "" {
		fmt.Fprintf(t.w, "=== %s (%s) ===\n", r.File, r.Format)
	} else {
		fmt.Fprintf(t.w, "=== %s ===\n", r.File)
	}

	switch r.Status {
	case StatusSkipped:
		fmt.Fprintf(t.w, "Skipped: %s\n", r.Error)
		return
	case StatusError:
		fmt.Fprintf(t.w, "Error processing file: %s\n", r.Error)
		return
	}

	for _, w := range r.Warnings {
		fmt.Fprintf(t.w, "Warning: %s\n", w)
	}
	if r.RawText != "" {
		t.section("Raw Extracted Text", r.RawText)
	}
	t.section("Cleaned Resume Text", r.CleanedText)
	if r.Artifact != "" {
		fmt.Fprintf(t.w, "Saved: %s\n", r.Artifact)
	}
}

func (t *TextWriter) section(title, body string) {
	fmt.Fprintf(t.w, "--- %s ---\n", title)
	if body == "" {
		t.w.WriteString("(empty)\n")
		return
	}
	t.w.WriteString(strings.TrimRight(body, "\n"))
	t.w.WriteString("\n")
}
