package extract

import (
	"strings"

	"golang.org/x/net/html/charset"
)

// DecodeText converts plain text of unknown encoding to clean UTF-8. A byte
// order mark selects UTF-8 or UTF-16; otherwise valid UTF-8 is kept and
// anything else is read as Windows-1252.
func DecodeText(data []byte) string {
	enc, _, _ := charset.DetermineEncoding(data, "text/plain")
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		decoded = data
	}
	return CleanText(strings.TrimPrefix(string(decoded), "\uFEFF"))
}
