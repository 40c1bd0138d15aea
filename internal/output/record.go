package output

import (
	"github.com/jmylchreest/resumeclean/pkg/cleaner/boilerplate"
	"github.com/jmylchreest/resumeclean/pkg/resumeclean"
)

// Record statuses.
const (
	StatusOK      = "ok"
	StatusError   = "error"
	StatusSkipped = "skipped"
)

// Record is the report entry for one processed file.
type Record struct {
	File         string             `json:"file" yaml:"file"`
	Format       string             `json:"format,omitempty" yaml:"format,omitempty"`
	Status       string             `json:"status" yaml:"status"`
	Error        string             `json:"error,omitempty" yaml:"error,omitempty"`
	Warnings     []string           `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	RawText      string             `json:"raw_text,omitempty" yaml:"raw_text,omitempty"`
	CleanedText  string             `json:"cleaned_text" yaml:"cleaned_text"`
	DownloadName string             `json:"download_name,omitempty" yaml:"download_name,omitempty"`
	Artifact     string             `json:"artifact,omitempty" yaml:"artifact,omitempty"`
	Stats        *boilerplate.Stats `json:"stats,omitempty" yaml:"stats,omitempty"`
}

// NewRecord builds the report entry for a result. The raw text is included
// only when showRaw is set. Failed files carry no text.
func NewRecord(r *resumeclean.Result, showRaw bool) Record {
	rec := Record{
		File:     r.Filename,
		Format:   string(r.Format),
		Status:   StatusOK,
		Warnings: r.Warnings,
	}

	switch {
	case r.Skipped():
		rec.Status = StatusSkipped
		rec.Error = r.Err.Error()
		return rec
	case r.Failed():
		rec.Status = StatusError
		rec.Error = r.Err.Error()
		return rec
	}

	if showRaw {
		rec.RawText = r.RawText
	}
	rec.CleanedText = r.CleanedText
	rec.DownloadName = r.DownloadName
	rec.Artifact = r.ArtifactPath
	rec.Stats = r.Stats
	return rec
}
