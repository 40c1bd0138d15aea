// Package image extracts text from PNG and JPEG resumes with Tesseract OCR.
//
// Images are decoded, converted to grayscale and upscaled when small before
// recognition. OCR itself needs the "ocr" build tag and a Tesseract install:
//
//	go build -tags ocr ./...
//
// Without the tag every extraction fails with ErrOCRNotEnabled.
package image

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jmylchreest/resumeclean/pkg/extract"
)

// ErrOCRNotEnabled is returned when OCR support was not compiled in.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Recognizer runs OCR over an encoded image.
type Recognizer interface {
	Recognize(ctx context.Context, img []byte, language string) (string, error)
}

// Config controls image extraction.
type Config struct {
	// Language is the Tesseract language, "+" separated for several (e.g. "eng+fra").
	Language string `json:"language" yaml:"language" mapstructure:"language" validate:"required"`

	// MinSide is the length in pixels below which the shorter side of an
	// image is upscaled before OCR. Zero disables upscaling.
	MinSide int `json:"min_side" yaml:"min_side" mapstructure:"min_side" validate:"gte=0"`

	// Preprocess enables grayscale conversion and upscaling. When false the
	// original bytes go to the recognizer unchanged.
	Preprocess bool `json:"preprocess" yaml:"preprocess" mapstructure:"preprocess"`
}

// DefaultConfig returns the default OCR settings.
func DefaultConfig() *Config {
	return &Config{
		Language:   "eng",
		MinSide:    1000,
		Preprocess: true,
	}
}

// Extractor reads image files.
type Extractor struct {
	config     *Config
	recognizer Recognizer
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithRecognizer replaces the Tesseract recognizer.
func WithRecognizer(r Recognizer) Option {
	return func(e *Extractor) {
		e.recognizer = r
	}
}

// Validate checks the config for missing or out-of-range settings.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid image config: %w", err)
	}
	return nil
}

// New creates an image extractor. If config is nil, DefaultConfig() is used.
func New(config *Config, opts ...Option) (*Extractor, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	e := &Extractor{
		config:     config,
		recognizer: tesseract{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Name returns the extractor identifier.
func (e *Extractor) Name() string {
	return "image"
}

// Formats returns the formats served by this extractor.
func (e *Extractor) Formats() []extract.Format {
	return []extract.Format{extract.FormatImage}
}

// Extract returns the text Tesseract reads from the image.
func (e *Extractor) Extract(ctx context.Context, src extract.Source) (*extract.Output, error) {
	data := src.Data
	if e.config.Preprocess {
		prepared, err := Preprocess(data, e.config.MinSide)
		if err != nil {
			return nil, extract.Errorf(src.Name, e.Name(), "%w", err)
		}
		data = prepared
	}

	text, err := e.recognizer.Recognize(ctx, data, e.config.Language)
	if err != nil {
		return nil, extract.Errorf(src.Name, e.Name(), "%w", err)
	}
	return &extract.Output{Text: text}, nil
}
