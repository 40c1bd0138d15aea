package pdf

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// defaultFontSize is assumed for glyphs that report no size.
const defaultFontSize = 10.0

// row is one visual line of glyphs, left to right. spaced[i] records that a
// whitespace glyph sat between glyphs[i-1] and glyphs[i].
type row struct {
	y      float64
	glyphs []pdf.Text
	spaced []bool
}

// buildRows groups glyphs into lines. PDF coordinates grow upwards, so rows
// come out top to bottom. Whitespace glyphs are not kept as text; each one
// marks a word break before the next glyph of its row, since fonts without
// widths report no gap between words.
func buildRows(texts []pdf.Text, tolerance float64) []row {
	glyphs := append([]pdf.Text(nil), texts...)
	sort.SliceStable(glyphs, func(i, j int) bool {
		if glyphs[i].Y != glyphs[j].Y {
			return glyphs[i].Y > glyphs[j].Y
		}
		return glyphs[i].X < glyphs[j].X
	})

	var lines [][]pdf.Text
	var ys []float64
	for _, g := range glyphs {
		if n := len(lines); n > 0 && ys[n-1]-g.Y <= tolerance {
			lines[n-1] = append(lines[n-1], g)
			continue
		}
		lines = append(lines, []pdf.Text{g})
		ys = append(ys, g.Y)
	}

	rows := make([]row, 0, len(lines))
	for i, line := range lines {
		sort.SliceStable(line, func(a, b int) bool {
			return line[a].X < line[b].X
		})

		r := row{y: ys[i]}
		pending := false
		for _, g := range line {
			if strings.TrimSpace(g.S) == "" {
				pending = len(r.glyphs) > 0
				continue
			}
			r.glyphs = append(r.glyphs, g)
			r.spaced = append(r.spaced, pending)
			pending = false
		}
		if len(r.glyphs) > 0 {
			rows = append(rows, r)
		}
	}
	return rows
}

// text joins the glyphs of the row, inserting a space at every whitespace
// glyph and wherever the gap to the previous glyph exceeds spaceGap times the
// font size.
func (r row) text(spaceGap float64) string {
	var sb strings.Builder
	for i, g := range r.glyphs {
		if i > 0 && (r.spaced[i] || gap(r.glyphs[i-1], g) > spaceGap*fontSize(g)) {
			sb.WriteByte(' ')
		}
		sb.WriteString(g.S)
	}
	return sb.String()
}

// cells splits the row wherever the gap between glyphs exceeds cellGap times
// the font size.
func (r row) cells(spaceGap, cellGap float64) []string {
	var (
		cells []string
		start int
	)
	for i := 1; i <= len(r.glyphs); i++ {
		if i < len(r.glyphs) && gap(r.glyphs[i-1], r.glyphs[i]) <= cellGap*fontSize(r.glyphs[i]) {
			continue
		}
		cell := row{y: r.y, glyphs: r.glyphs[start:i], spaced: r.spaced[start:i]}.text(spaceGap)
		cells = append(cells, strings.TrimSpace(cell))
		start = i
	}
	return cells
}

func gap(prev, next pdf.Text) float64 {
	return next.X - (prev.X + prev.W)
}

func fontSize(t pdf.Text) float64 {
	if t.FontSize <= 0 {
		return defaultFontSize
	}
	return t.FontSize
}
