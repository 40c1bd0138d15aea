package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// expectedMIME maps accepted extensions to the MIME type their content should have.
var expectedMIME = map[string]string{
	"pdf":  "application/pdf",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
}

// DetectMIME returns the MIME type sniffed from the content of data.
func DetectMIME(data []byte) string {
	return mimetype.Detect(data).String()
}

// SniffMismatch compares the content of src with the type its extension
// promises. It returns a warning when they disagree and "" otherwise.
// Extraction is still attempted; several extractors accept related types.
func SniffMismatch(src Source) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(src.Name), "."))
	want, ok := expectedMIME[ext]
	if !ok || len(src.Data) == 0 {
		return ""
	}

	detected := mimetype.Detect(src.Data)
	if detected.Is(want) {
		return ""
	}
	// A .docx is a zip archive; some writers produce content that only
	// sniffs as a generic zip.
	if ext == "docx" && detected.Is("application/zip") {
		return ""
	}
	return fmt.Sprintf("content of %s looks like %s, not .%s", src.Name, detected.String(), ext)
}
