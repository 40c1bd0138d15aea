//go:build !ocr

package image

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/jmylchreest/resumeclean/pkg/extract"
)

func TestStubNotAvailable(t *testing.T) {
	if Available {
		t.Error("Available should be false without the ocr build tag")
	}
}

func TestStubExtractReturnsError(t *testing.T) {
	e, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = e.Extract(context.Background(), extract.Source{
		Name: "scan.png",
		Data: encodePNG(t, image.NewGray(image.Rect(0, 0, 2, 2))),
	})
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("expected ErrOCRNotEnabled, got %v", err)
	}
	if !errors.Is(err, extract.ErrExtraction) {
		t.Errorf("expected ErrExtraction, got %v", err)
	}
}
