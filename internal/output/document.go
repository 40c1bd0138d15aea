package output

import (
	"bufio"
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// DocumentWriter buffers records and encodes them as one document on Flush:
// a single record on its own, several as a list.
type DocumentWriter struct {
	w      *bufio.Writer
	encode func(w io.Writer, v any) error
	items  []any
}

// NewJSONWriter creates a writer producing one JSON document.
func NewJSONWriter(w io.Writer, pretty bool, indent string) *DocumentWriter {
	return &DocumentWriter{
		w: bufio.NewWriter(w),
		encode: func(w io.Writer, v any) error {
			enc := json.NewEncoder(w)
			enc.SetEscapeHTML(false)
			if pretty {
				enc.SetIndent("", indent)
			}
			return enc.Encode(v)
		},
	}
}

// NewYAMLWriter creates a writer producing one YAML document.
func NewYAMLWriter(w io.Writer) *DocumentWriter {
	return &DocumentWriter{
		w: bufio.NewWriter(w),
		encode: func(w io.Writer, v any) error {
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(v); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

// Write buffers a single record.
func (d *DocumentWriter) Write(data any) error {
	d.items = append(d.items, data)
	return nil
}

// Flush encodes the buffered records. Nothing is written when there are none.
func (d *DocumentWriter) Flush() error {
	if len(d.items) == 0 {
		return nil
	}

	var v any = d.items
	if len(d.items) == 1 {
		v = d.items[0]
	}
	if err := d.encode(d.w, v); err != nil {
		return err
	}
	d.items = nil
	return d.w.Flush()
}

// JSONLWriter writes one JSON object per line as records arrive.
type JSONLWriter struct {
	w *bufio.Writer
}

// NewJSONLWriter creates a JSONL writer.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{w: bufio.NewWriter(w)}
}

// Write writes a single record as a JSON line.
func (j *JSONLWriter) Write(data any) error {
	enc := json.NewEncoder(j.w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return err
	}
	return j.w.Flush()
}

// Flush flushes the buffer.
func (j *JSONLWriter) Flush() error {
	return j.w.Flush()
}
