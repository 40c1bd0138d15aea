// Package pdf extracts the text layer of PDF files with github.com/ledongthuc/pdf.
//
// Body text is rebuilt line by line from glyph positions, pages in order.
// A second pass looks for tables (runs of rows that split into the same
// number of widely spaced cells) and appends them, flattened, after the body.
// A failure in the table pass never loses the body text.
package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/jmylchreest/resumeclean/pkg/extract"
)

// Config controls PDF extraction.
type Config struct {
	// Tables enables the table pass.
	Tables bool `json:"tables" yaml:"tables" mapstructure:"tables"`

	// RowTolerance is the vertical distance, in points, within which glyphs
	// belong to the same line.
	RowTolerance float64 `json:"row_tolerance" yaml:"row_tolerance" mapstructure:"row_tolerance" validate:"gt=0"`

	// SpaceGap is the horizontal gap, as a fraction of the font size, above
	// which a space is inserted between glyphs.
	SpaceGap float64 `json:"space_gap" yaml:"space_gap" mapstructure:"space_gap" validate:"gt=0"`

	// CellGap is the horizontal gap, as a multiple of the font size, that
	// separates table cells.
	CellGap float64 `json:"cell_gap" yaml:"cell_gap" mapstructure:"cell_gap" validate:"gtfield=SpaceGap"`

	// MinTableRows is the number of consecutive aligned rows that make a table.
	MinTableRows int `json:"min_table_rows" yaml:"min_table_rows" mapstructure:"min_table_rows" validate:"gte=2"`
}

// DefaultConfig returns the default extraction settings.
func DefaultConfig() *Config {
	return &Config{
		Tables:       true,
		RowTolerance: 2.0,
		SpaceGap:     0.2,
		CellGap:      2.0,
		MinTableRows: 3,
	}
}

// TableFinder locates tables in an open document.
type TableFinder func(ctx context.Context, r *pdf.Reader, config *Config) ([]Table, error)

// Extractor reads PDF files.
type Extractor struct {
	config     *Config
	findTables TableFinder
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTableFinder replaces the table pass, which defaults to FindTables.
func WithTableFinder(f TableFinder) Option {
	return func(e *Extractor) {
		e.findTables = f
	}
}

// New creates a PDF extractor. If config is nil, DefaultConfig() is used.
func New(config *Config, opts ...Option) *Extractor {
	if config == nil {
		config = DefaultConfig()
	}
	e := &Extractor{
		config:     config,
		findTables: FindTables,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns the extractor identifier.
func (e *Extractor) Name() string {
	return "pdf"
}

// Formats returns the formats served by this extractor.
func (e *Extractor) Formats() []extract.Format {
	return []extract.Format{extract.FormatPDF}
}

// Extract returns the body text of the PDF followed by any tables found.
// The document is staged in a temporary file for the duration of the call.
func (e *Extractor) Extract(ctx context.Context, src extract.Source) (*extract.Output, error) {
	var out *extract.Output

	err := extract.WithTempFile(src.Data, "resumeclean-*.pdf", func(path string) error {
		f, r, err := pdf.Open(path)
		if err != nil {
			return extract.Errorf(src.Name, e.Name(), "open pdf: %w", err)
		}
		defer func() { _ = f.Close() }()

		body, err := e.bodyText(ctx, r)
		if err != nil {
			return extract.Errorf(src.Name, e.Name(), "%w", err)
		}

		out = &extract.Output{Text: body}
		if strings.TrimSpace(body) == "" {
			out.Warnings = append(out.Warnings, "no text layer found; scanned PDFs need OCR")
		}

		if e.config.Tables {
			e.appendTables(ctx, r, out)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// bodyText rebuilds the text of every page, pages separated by a blank line.
func (e *Extractor) bodyText(ctx context.Context, r *pdf.Reader) (string, error) {
	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows := buildRows(page.Content().Text, e.config.RowTolerance)
		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			lines = append(lines, row.text(e.config.SpaceGap))
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return strings.Join(pages, "\n\n"), nil
}

// appendTables runs the table pass and appends its result to out. Errors and
// panics from the PDF library become an inline marker and a warning.
func (e *Extractor) appendTables(ctx context.Context, r *pdf.Reader, out *extract.Output) {
	tables, err := e.findTablesSafe(ctx, r)
	if err != nil {
		out.Text += fmt.Sprintf("\n[Error extracting tables: %v]", err)
		out.Warnings = append(out.Warnings, fmt.Sprintf("table extraction failed: %v", err))
		return
	}
	for _, t := range tables {
		out.Text += "\n" + t.String()
	}
}

func (e *Extractor) findTablesSafe(ctx context.Context, r *pdf.Reader) (tables []Table, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			tables = nil
			err = fmt.Errorf("%v", rec)
		}
	}()
	return e.findTables(ctx, r, e.config)
}
