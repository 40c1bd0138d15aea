package pdf

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// Table is a block of aligned rows found on one page.
type Table struct {
	Page int
	Rows [][]string
}

// String flattens the table: one line per row, columns padded to a common
// width and separated by two spaces.
func (t Table) String() string {
	var widths []int
	for _, r := range t.Rows {
		for i, c := range r {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if n := utf8.RuneCountInString(c); n > widths[i] {
				widths[i] = n
			}
		}
	}

	lines := make([]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		var sb strings.Builder
		for i, c := range r {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(c)
			if i < len(r)-1 {
				sb.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(c)))
			}
		}
		lines = append(lines, strings.TrimRight(sb.String(), " "))
	}
	return strings.Join(lines, "\n")
}

// FindTables scans every page of r for tables.
func FindTables(ctx context.Context, r *pdf.Reader, config *Config) ([]Table, error) {
	if config == nil {
		config = DefaultConfig()
	}
	var tables []Table
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows := buildRows(page.Content().Text, config.RowTolerance)
		for _, t := range tablesInRows(rows, config) {
			t.Page = i
			tables = append(tables, t)
		}
	}
	return tables, nil
}

// tablesInRows returns every run of at least MinTableRows consecutive rows
// that split into the same number (two or more) of cells.
func tablesInRows(rows []row, config *Config) []Table {
	var (
		tables []Table
		run    [][]string
	)
	flush := func() {
		if len(run) >= config.MinTableRows {
			tables = append(tables, Table{Rows: run})
		}
		run = nil
	}

	for _, r := range rows {
		cells := r.cells(config.SpaceGap, config.CellGap)
		if len(cells) < 2 {
			flush()
			continue
		}
		if len(run) > 0 && len(run[0]) != len(cells) {
			flush()
		}
		run = append(run, cells)
	}
	flush()
	return tables
}
