package resumeclean

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDownloadName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"resume.pdf", "resume_cleaned.txt"},
		{"John Smith CV.docx", "John Smith CV_cleaned.txt"},
		{"archive.v2.pdf", "archive.v2_cleaned.txt"},
		{"scan.JPEG", "scan_cleaned.txt"},
		{"noext", "noext_cleaned.txt"},
		{"dir/sub/resume.pdf", "resume_cleaned.txt"},
	}

	for _, tt := range tests {
		if got := DownloadName(tt.input); got != tt.want {
			t.Errorf("DownloadName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.pdf")
	if err := os.WriteFile(path, []byte("%PDF"), 0o600); err != nil {
		t.Fatal(err)
	}

	f, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if f.Name != "cv.pdf" || string(f.Data) != "%PDF" {
		t.Errorf("File = {%q, %q}", f.Name, f.Data)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadFrom(t *testing.T) {
	f, err := ReadFrom("stdin.docx", strings.NewReader("data"))
	if err != nil {
		t.Fatal(err)
	}
	if f.Name != "stdin.docx" || string(f.Data) != "data" {
		t.Errorf("File = {%q, %q}", f.Name, f.Data)
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"0", 0, false},
		{"", 0, false},
		{"25MB", 25_000_000, false},
		{"512 KiB", 512 * 1024, false},
		{"100", 100, false},
		{"lots", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseSize(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSize(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
