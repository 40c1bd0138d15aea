package resumeclean

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"

	"github.com/jmylchreest/resumeclean/internal/artifact"
	"github.com/jmylchreest/resumeclean/internal/logger"
	"github.com/jmylchreest/resumeclean/pkg/cleaner"
	"github.com/jmylchreest/resumeclean/pkg/cleaner/boilerplate"
	"github.com/jmylchreest/resumeclean/pkg/extract"
	"github.com/jmylchreest/resumeclean/pkg/extract/docx"
	"github.com/jmylchreest/resumeclean/pkg/extract/image"
	"github.com/jmylchreest/resumeclean/pkg/extract/pdf"
)

// Version returns the module version of the resumeclean library.
// Returns "(devel)" when built from source without version info.
func Version() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.Main.Version
	}
	return "(unknown)"
}

// Result is the outcome of processing one file. When Err is set no artifact
// was written. RawText and CleanedText are still filled if only the artifact
// write failed.
type Result struct {
	Filename     string
	Format       extract.Format
	RawText      string
	CleanedText  string
	DownloadName string
	ArtifactPath string // empty unless artifacts are enabled
	Warnings     []string

	// Stats and Dropped are filled when the cleaner is a boilerplate.Cleaner.
	Stats   *boilerplate.Stats
	Dropped []boilerplate.DroppedLine

	ExtractDuration time.Duration
	CleanDuration   time.Duration
	Err             error
}

// Skipped reports whether the file was rejected for its extension.
func (r *Result) Skipped() bool {
	return errors.Is(r.Err, ErrUnsupportedFormat)
}

// Failed reports whether the file produced no cleaned text.
func (r *Result) Failed() bool {
	return r.Err != nil
}

// Processor runs files through extraction and cleaning.
type Processor struct {
	registry *extract.Registry
	cleaner  cleaner.Cleaner
	artifact *artifact.Writer
	config   Config
}

// New creates a Processor.
func New(opts ...Option) (*Processor, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cl := cfg.Cleaner
	if cl == nil {
		cl = boilerplate.Default()
	}

	reg := cfg.Registry
	if reg == nil {
		var err error
		if reg, err = DefaultRegistry(cfg); err != nil {
			return nil, err
		}
	}

	p := &Processor{
		registry: reg,
		cleaner:  cl,
		config:   cfg,
	}
	if cfg.WriteArtifacts {
		p.artifact = artifact.New(cfg.OutputDir)
	}
	return p, nil
}

// DefaultRegistry wires the PDF, DOCX and image extractors.
func DefaultRegistry(cfg Config) (*extract.Registry, error) {
	imgCfg := image.DefaultConfig()
	if cfg.OCRLanguage != "" {
		imgCfg.Language = cfg.OCRLanguage
	}
	img, err := image.New(imgCfg)
	if err != nil {
		return nil, err
	}
	return extract.NewRegistry(
		pdf.New(cfg.PDF),
		docx.New(),
		img,
	), nil
}

// Registry returns the extractor registry in use.
func (p *Processor) Registry() *extract.Registry {
	return p.registry
}

// Cleaner returns the cleaner in use.
func (p *Processor) Cleaner() cleaner.Cleaner {
	return p.cleaner
}

// Process extracts and cleans one file. It never returns nil; failures are
// reported in Result.Err and leave the rest of the result empty.
func (p *Processor) Process(ctx context.Context, f File) *Result {
	result := &Result{
		Filename:     f.Name,
		DownloadName: DownloadName(f.Name),
	}
	log := logger.With("file", f.Name)

	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	if p.config.MaxFileSize > 0 && int64(len(f.Data)) > p.config.MaxFileSize {
		result.Err = &ExtractionError{
			Filename:  f.Name,
			Extractor: "limit",
			Err: fmt.Errorf("%w: %s exceeds limit of %s", ErrTooLarge,
				humanize.Bytes(uint64(len(f.Data))), humanize.Bytes(uint64(p.config.MaxFileSize))),
		}
		log.Warn("file rejected", "bytes", len(f.Data), "error", result.Err)
		return result
	}

	start := time.Now()
	out, format, err := p.registry.Extract(ctx, extract.Source{Name: f.Name, Data: f.Data})
	result.Format = format
	result.ExtractDuration = time.Since(start)
	if err != nil {
		result.Err = err
		if result.Skipped() {
			log.Warn("unsupported file type", "error", err)
		} else {
			log.Error("extraction failed", "format", format, "error", err)
		}
		return result
	}
	result.RawText = out.Text
	result.Warnings = out.Warnings
	for _, w := range out.Warnings {
		log.Warn("extraction warning", "format", format, "warning", w)
	}
	log.Debug("text extracted",
		"format", format,
		"mime", extract.DetectMIME(f.Data),
		"bytes", len(f.Data),
		"chars", len(out.Text),
		"duration", result.ExtractDuration)

	start = time.Now()
	if err := p.clean(result); err != nil {
		result.Err = err
		log.Error("cleaning failed", "cleaner", p.cleaner.Name(), "error", err)
		return result
	}
	result.CleanDuration = time.Since(start)
	log.Debug("text cleaned",
		"cleaner", p.cleaner.Name(),
		"input_size", len(result.RawText),
		"output_size", len(result.CleanedText),
		"duration", result.CleanDuration)

	if p.artifact != nil {
		path, err := p.artifact.Write(result.DownloadName, result.CleanedText)
		if err != nil {
			result.Err = fmt.Errorf("failed to write %s: %w", result.DownloadName, err)
			log.Error("artifact write failed", "error", err)
			return result
		}
		result.ArtifactPath = path
		log.Debug("artifact written", "path", path)
	}

	log.Info("processed",
		"format", format,
		"bytes", len(f.Data),
		"duration", result.ExtractDuration+result.CleanDuration)
	return result
}

// clean runs the cleaner over result.RawText, turning a panic into a
// CleaningError.
func (p *Processor) clean(result *Result) (err error) {
	defer func() {
		if r := recover(); r != nil {
			result.CleanedText = ""
			result.Stats = nil
			result.Dropped = nil
			err = &CleaningError{
				Filename: result.Filename,
				Cleaner:  p.cleaner.Name(),
				Err:      fmt.Errorf("panic: %v", r),
			}
		}
	}()

	if bc, ok := p.cleaner.(*boilerplate.Cleaner); ok {
		cr := bc.CleanWithStats(result.RawText)
		result.CleanedText = cr.Content
		result.Stats = cr.Stats
		result.Dropped = cr.Dropped
		return nil
	}

	cleaned, err := p.cleaner.Clean(result.RawText)
	if err != nil {
		return &CleaningError{Filename: result.Filename, Cleaner: p.cleaner.Name(), Err: err}
	}
	result.CleanedText = cleaned
	return nil
}

// ProcessAll processes files one after another in the given order. A failing
// file never stops the batch; once ctx is cancelled the remaining files are
// returned with the context error.
func (p *Processor) ProcessAll(ctx context.Context, files []File) []*Result {
	results := make([]*Result, 0, len(files))
	for r := range p.Stream(ctx, files) {
		results = append(results, r)
	}
	return results
}

// Stream processes files one after another and delivers each result as soon
// as it is ready. The channel is closed after the last file.
func (p *Processor) Stream(ctx context.Context, files []File) <-chan *Result {
	results := make(chan *Result, len(files))
	go func() {
		defer close(results)
		for _, f := range files {
			results <- p.Process(ctx, f)
		}
	}()
	return results
}

// Summary counts the outcomes of a batch.
type Summary struct {
	Total     int `json:"total" yaml:"total"`
	Succeeded int `json:"succeeded" yaml:"succeeded"`
	Failed    int `json:"failed" yaml:"failed"`
	Skipped   int `json:"skipped" yaml:"skipped"`
}

// Summarize counts results. Skipped files are also counted as failed.
func Summarize(results []*Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Skipped():
			s.Skipped++
			s.Failed++
		case r.Failed():
			s.Failed++
		default:
			s.Succeeded++
		}
	}
	return s
}

// AllFailed reports whether a non-empty batch produced no cleaned text at all.
func (s Summary) AllFailed() bool {
	return s.Total > 0 && s.Succeeded == 0
}
