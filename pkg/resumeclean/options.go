// Package resumeclean provides the public API for turning resume files into
// cleaned plain text.
package resumeclean

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/resumeclean/pkg/cleaner"
	"github.com/jmylchreest/resumeclean/pkg/extract"
	"github.com/jmylchreest/resumeclean/pkg/extract/pdf"
)

// DefaultMaxFileSize is the largest file processed unless configured otherwise.
const DefaultMaxFileSize = "25MB"

// Config holds all processor configuration.
type Config struct {
	// Pipeline components. Nil selects the defaults.
	Cleaner  cleaner.Cleaner
	Registry *extract.Registry

	// Download artifacts
	OutputDir      string `validate:"required_if=WriteArtifacts true"`
	WriteArtifacts bool

	// Limits, in bytes. Zero means unlimited.
	MaxFileSize int64 `validate:"gte=0"`

	// Extraction settings
	OCRLanguage string `validate:"required"`
	PDF         *pdf.Config
}

// DefaultConfig returns sensible defaults: no artifacts, 25MB limit, English OCR.
func DefaultConfig() Config {
	size, _ := ParseSize(DefaultMaxFileSize)
	return Config{
		OutputDir:   ".",
		MaxFileSize: size,
		OCRLanguage: "eng",
		PDF:         pdf.DefaultConfig(),
	}
}

// Option configures the Processor.
type Option func(*Config)

// WithCleaner sets the cleaner applied to extracted text.
func WithCleaner(c cleaner.Cleaner) Option {
	return func(cfg *Config) {
		cfg.Cleaner = c
	}
}

// WithRegistry sets the extractor registry.
func WithRegistry(r *extract.Registry) Option {
	return func(cfg *Config) {
		cfg.Registry = r
	}
}

// WithOutputDir enables download artifacts and writes them to dir.
func WithOutputDir(dir string) Option {
	return func(cfg *Config) {
		cfg.OutputDir = dir
		cfg.WriteArtifacts = true
	}
}

// WithArtifacts turns writing of download artifacts on or off.
func WithArtifacts(enabled bool) Option {
	return func(cfg *Config) {
		cfg.WriteArtifacts = enabled
	}
}

// WithMaxFileSize sets the size limit in bytes (0 = unlimited).
func WithMaxFileSize(n int64) Option {
	return func(cfg *Config) {
		cfg.MaxFileSize = n
	}
}

// WithOCRLanguage sets the Tesseract language(s), e.g. "eng" or "eng+deu".
func WithOCRLanguage(lang string) Option {
	return func(cfg *Config) {
		cfg.OCRLanguage = lang
	}
}

// WithPDFConfig sets the PDF extraction settings.
func WithPDFConfig(c *pdf.Config) Option {
	return func(cfg *Config) {
		cfg.PDF = c
	}
}

// ParseSize parses a human-readable size such as "25MB", "512 KiB" or "0".
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "0" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if n > 1<<62 {
		return 0, fmt.Errorf("invalid size %q: too large", s)
	}
	return int64(n), nil
}
