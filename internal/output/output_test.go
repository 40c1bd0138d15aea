package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/resumeclean/pkg/cleaner/boilerplate"
	"github.com/jmylchreest/resumeclean/pkg/extract"
	"github.com/jmylchreest/resumeclean/pkg/resumeclean"
)

func okRecord(name string) Record {
	return Record{
		File:         name,
		Format:       "pdf",
		Status:       StatusOK,
		RawText:      "Jane Doe\n3\n",
		CleanedText:  "Jane Doe",
		DownloadName: "jane_cleaned.txt",
	}
}

// --- NewWriter Factory Tests ---

func TestNewWriter(t *testing.T) {
	tests := []struct {
		format Format
		check  func(Writer) bool
	}{
		{FormatText, func(w Writer) bool { _, ok := w.(*TextWriter); return ok }},
		{"", func(w Writer) bool { _, ok := w.(*TextWriter); return ok }},
		{FormatJSON, func(w Writer) bool { _, ok := w.(*DocumentWriter); return ok }},
		{FormatJSONL, func(w Writer) bool { _, ok := w.(*JSONLWriter); return ok }},
		{FormatYAML, func(w Writer) bool { _, ok := w.(*DocumentWriter); return ok }},
	}

	for _, tt := range tests {
		w, err := NewWriter(&bytes.Buffer{}, tt.format)
		if err != nil {
			t.Errorf("NewWriter(%q) error = %v", tt.format, err)
			continue
		}
		if !tt.check(w) {
			t.Errorf("NewWriter(%q) returned %T", tt.format, w)
		}
	}
}

func TestNewWriter_UnsupportedFormat(t *testing.T) {
	_, err := NewWriter(&bytes.Buffer{}, Format("xml"))
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported output format") {
		t.Errorf("error = %v", err)
	}
}

// --- JSON Tests ---

func TestJSONWriter_SingleRecord(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONWriter(buf, true, "  ")
	_ = w.Write(okRecord("jane.pdf"))
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	var got Record
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("single record should be a JSON object: %v", err)
	}
	if got.File != "jane.pdf" || got.CleanedText != "Jane Doe" {
		t.Errorf("decoded = %+v", got)
	}
	if !strings.Contains(buf.String(), "\n  \"file\"") {
		t.Errorf("expected indented output, got %q", buf.String())
	}
}

func TestJSONWriter_MultipleRecords(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONWriter(buf, false, "")
	_ = w.Write(okRecord("a.pdf"))
	_ = w.Write(okRecord("b.pdf"))
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	var got []Record
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("multiple records should be a JSON array: %v", err)
	}
	if len(got) != 2 || got[1].File != "b.pdf" {
		t.Errorf("decoded = %+v", got)
	}
	if strings.Count(buf.String(), "\n") != 1 {
		t.Errorf("compact output should be one line, got %q", buf.String())
	}
}

func TestJSONWriter_NoHTMLEscaping(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONWriter(buf, false, "")
	rec := okRecord("a.pdf")
	rec.CleanedText = "R&D <lead>"
	_ = w.Write(rec)
	_ = w.Flush()

	if !strings.Contains(buf.String(), "R&D <lead>") {
		t.Errorf("output escaped HTML: %q", buf.String())
	}
}

func TestDocumentWriter_EmptyFlush(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONWriter(buf, true, "  ")
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty flush wrote %q", buf.String())
	}
}

// --- JSONL Tests ---

func TestJSONLWriter_OneLinePerRecord(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONLWriter(buf)
	_ = w.Write(okRecord("a.pdf"))
	_ = w.Write(okRecord("b.pdf"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for i, line := range lines {
		var r Record
		if err := json.Unmarshal([]byte(line), &r); err != nil {
			t.Errorf("line %d is not JSON: %v", i, err)
		}
	}
}

// --- YAML Tests ---

func TestYAMLWriter_SingleRecord(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewYAMLWriter(buf)
	_ = w.Write(okRecord("jane.pdf"))
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	var got Record
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if got.File != "jane.pdf" || got.RawText != "Jane Doe\n3\n" {
		t.Errorf("decoded = %+v", got)
	}
}

func TestYAMLWriter_MultipleRecords(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewYAMLWriter(buf)
	_ = w.Write(okRecord("a.pdf"))
	_ = w.Write(okRecord("b.pdf"))
	_ = w.Flush()

	var got []Record
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d records, want 2", len(got))
	}
}

// --- Text Tests ---

func TestTextWriter_Success(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewTextWriter(buf)
	rec := okRecord("jane.pdf")
	rec.Artifact = "out/jane_cleaned.txt"
	rec.Warnings = []string{"table extraction failed: bad stream"}
	_ = w.Write(rec)

	want := "=== jane.pdf (pdf) ===\n" +
		"Warning: table extraction failed: bad stream\n" +
		"--- Raw Extracted Text ---\n" +
		"Jane Doe\n3\n" +
		"--- Cleaned Resume Text ---\n" +
		"Jane Doe\n" +
		"Saved: out/jane_cleaned.txt\n"
	if got := buf.String(); got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
}

func TestTextWriter_ErrorsAndSeparation(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewTextWriter(buf)
	_ = w.Write(Record{File: "notes.txt", Status: StatusSkipped, Error: "unsupported file type: .txt (notes.txt)"})
	_ = w.Write(&Record{File: "bad.pdf", Format: "pdf", Status: StatusError, Error: "boom"})

	want := "=== notes.txt ===\n" +
		"Skipped: unsupported file type: .txt (notes.txt)\n" +
		"\n" +
		"=== bad.pdf (pdf) ===\n" +
		"Error processing file: boom\n"
	if got := buf.String(); got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
}

func TestTextWriter_EmptyCleanedText(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewTextWriter(buf)
	_ = w.Write(Record{File: "a.pdf", Status: StatusOK})

	if !strings.Contains(buf.String(), "--- Cleaned Resume Text ---\n(empty)\n") {
		t.Errorf("output = %q", buf.String())
	}
	if strings.Contains(buf.String(), "Raw Extracted Text") {
		t.Error("raw section printed without raw text")
	}
}

// --- Record Tests ---

func TestNewRecord(t *testing.T) {
	stats := boilerplate.NewStats()
	ok := &resumeclean.Result{
		Filename:     "cv.docx",
		Format:       extract.FormatDOCX,
		RawText:      "raw",
		CleanedText:  "clean",
		DownloadName: "cv_cleaned.txt",
		ArtifactPath: "/tmp/cv_cleaned.txt",
		Stats:        stats,
	}

	rec := NewRecord(ok, false)
	if rec.Status != StatusOK || rec.RawText != "" || rec.CleanedText != "clean" ||
		rec.Artifact != "/tmp/cv_cleaned.txt" || rec.Stats != stats || rec.Format != "docx" {
		t.Errorf("NewRecord(ok, false) = %+v", rec)
	}
	if rec := NewRecord(ok, true); rec.RawText != "raw" {
		t.Errorf("RawText = %q with showRaw", rec.RawText)
	}

	failed := &resumeclean.Result{
		Filename: "bad.pdf",
		Format:   extract.FormatPDF,
		Err:      extract.Errorf("bad.pdf", "pdf", "broken"),
	}
	rec = NewRecord(failed, true)
	if rec.Status != StatusError || rec.Error == "" || rec.CleanedText != "" {
		t.Errorf("NewRecord(failed) = %+v", rec)
	}

	skipped := &resumeclean.Result{
		Filename: "x.txt",
		Err:      &extract.UnsupportedFormatError{Filename: "x.txt", Extension: "txt"},
	}
	if rec := NewRecord(skipped, true); rec.Status != StatusSkipped {
		t.Errorf("Status = %q, want skipped", rec.Status)
	}

	other := &resumeclean.Result{Filename: "y.pdf", Err: errors.New("disk full")}
	if rec := NewRecord(other, true); rec.Status != StatusError || rec.Error != "disk full" {
		t.Errorf("NewRecord(other) = %+v", rec)
	}
}
