package boilerplate

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize returns the classification form of a line: lower-cased, every
// run of whitespace replaced by one space, leading and trailing space removed.
// It is total and idempotent.
func Normalize(line string) string {
	// cases.Caser is stateful, so one per call.
	lowered := cases.Lower(language.Und).String(line)

	var b strings.Builder
	b.Grow(len(lowered))
	pending := false
	for _, r := range lowered {
		if isSpace(r) {
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteByte(' ')
			pending = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isSpace reports Unicode white space plus the ASCII file, group, record and
// unit separators (U+001C..U+001F) that some extractors emit between blocks.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func trim(s string) string {
	return strings.TrimFunc(s, isSpace)
}
