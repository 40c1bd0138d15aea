//go:build ocr

package image

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Available reports whether OCR support was compiled in.
const Available = true

// tesseract recognizes text with a fresh gosseract client per image.
type tesseract struct{}

func (tesseract) Recognize(ctx context.Context, img []byte, language string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer func() { _ = client.Close() }()

	if err := client.SetLanguage(language); err != nil {
		return "", fmt.Errorf("failed to set language %q: %w", language, err)
	}
	if err := client.SetImageFromBytes(img); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return text, nil
}
