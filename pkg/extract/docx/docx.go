// Package docx extracts the body paragraphs of Office Open XML documents.
//
// Only paragraphs that are direct children of the document body are read;
// table cells, headers, footers and text boxes are not. Within a paragraph
// the text of its runs (including runs inside hyperlinks) is concatenated,
// with <w:tab/> as '\t' and <w:br/>/<w:cr/> as '\n'.
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/jmylchreest/resumeclean/pkg/extract"
)

// documentPart is the main document inside the archive.
const documentPart = "word/document.xml"

// Extractor reads DOCX files.
type Extractor struct{}

// New creates a DOCX extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name returns the extractor identifier.
func (e *Extractor) Name() string {
	return "docx"
}

// Formats returns the formats served by this extractor.
func (e *Extractor) Formats() []extract.Format {
	return []extract.Format{extract.FormatDOCX}
}

// Extract joins the non-blank body paragraphs of the document with '\n'.
func (e *Extractor) Extract(ctx context.Context, src extract.Source) (*extract.Output, error) {
	paragraphs, err := Paragraphs(ctx, src.Data)
	if err != nil {
		return nil, extract.Errorf(src.Name, e.Name(), "%w", err)
	}

	kept := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if strings.TrimSpace(p) == "" {
			continue
		}
		kept = append(kept, p)
	}
	return &extract.Output{Text: strings.Join(kept, "\n")}, nil
}

// Paragraphs returns the text of every body paragraph in document order,
// blank ones included.
func Paragraphs(ctx context.Context, data []byte) ([]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == documentPart {
			part = f
			break
		}
	}
	if part == nil {
		return nil, fmt.Errorf("missing required file: %s", documentPart)
	}

	rc, err := part.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", documentPart, err)
	}
	defer func() { _ = rc.Close() }()

	paragraphs, err := parseBody(ctx, rc)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return paragraphs, nil
}

// parseBody streams document.xml and collects body paragraph text. Element
// names are matched on their local part so any namespace prefix works.
func parseBody(ctx context.Context, r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		stack      []string
		paragraphs []string
		current    strings.Builder
		inPara     bool
		inText     bool
		paraDepth  int
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name.Local)

			if !inPara {
				if isBodyParagraph(stack) {
					if err := ctx.Err(); err != nil {
						return nil, err
					}
					inPara = true
					paraDepth = len(stack)
					current.Reset()
				}
				continue
			}

			if !isRunChild(stack[paraDepth-1:]) {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				current.WriteByte('\t')
			case "br", "cr":
				current.WriteByte('\n')
			}

		case xml.CharData:
			if inText {
				current.Write(t)
			}

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unexpected end element %s", t.Name.Local)
			}
			if inText && t.Name.Local == "t" {
				inText = false
			}
			if inPara && len(stack) == paraDepth {
				paragraphs = append(paragraphs, current.String())
				inPara = false
			}
			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) != 0 {
		return nil, io.ErrUnexpectedEOF
	}
	return paragraphs, nil
}

// isBodyParagraph reports whether the element path ends at document/body/p.
func isBodyParagraph(stack []string) bool {
	return len(stack) == 3 &&
		stack[0] == "document" && stack[1] == "body" && stack[2] == "p"
}

// isRunChild reports whether a path starting at a paragraph names a direct
// child of one of its runs: p/r/x or p/hyperlink/r/x.
func isRunChild(path []string) bool {
	switch len(path) {
	case 3:
		return path[1] == "r"
	case 4:
		return path[1] == "hyperlink" && path[2] == "r"
	}
	return false
}
