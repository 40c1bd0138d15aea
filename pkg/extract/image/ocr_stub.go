//go:build !ocr

package image

import "context"

// Available reports whether OCR support was compiled in.
const Available = false

// tesseract is the stand-in used when the "ocr" build tag is not set.
type tesseract struct{}

func (tesseract) Recognize(context.Context, []byte, string) (string, error) {
	return "", ErrOCRNotEnabled
}
