package boilerplate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if len(cfg.Phrases) != 3 {
		t.Errorf("expected 3 default phrases, got %v", cfg.Phrases)
	}
	if cfg.ShortNoiseLength != 5 {
		t.Errorf("expected ShortNoiseLength 5, got %d", cfg.ShortNoiseLength)
	}
	if !cfg.PreserveBlankLines {
		t.Error("expected PreserveBlankLines to be true")
	}
	if len(cfg.ExtraPatterns) != 0 {
		t.Errorf("expected no extra patterns, got %v", cfg.ExtraPatterns)
	}
}

func TestDefaultConfig_DoesNotShareSlices(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Phrases[0] = "mutated"

	if DefaultPhrases[0] != "confidential" {
		t.Error("DefaultConfig must copy DefaultPhrases")
	}
}

func TestPresetCompact(t *testing.T) {
	cfg := PresetCompact()
	if cfg.PreserveBlankLines {
		t.Error("expected PreserveBlankLines to be false")
	}
	if cfg.ShortNoiseLength != DefaultShortNoiseLength {
		t.Errorf("expected default ShortNoiseLength, got %d", cfg.ShortNoiseLength)
	}
}

func TestPreset(t *testing.T) {
	tests := []struct {
		name         string
		wantPreserve bool
		wantErr      bool
	}{
		{"", true, false},
		{"default", true, false},
		{"Compact", false, false},
		{"aggressive", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Preset(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Preset() error = %v", err)
			}
			if cfg.PreserveBlankLines != tt.wantPreserve {
				t.Errorf("PreserveBlankLines = %v, want %v", cfg.PreserveBlankLines, tt.wantPreserve)
			}
		})
	}
}

func TestConfigMerge(t *testing.T) {
	base := PresetCompact()
	other := &Config{
		Phrases:            []string{"confidential", "curriculum vitae template"},
		ExtraPatterns:      []string{`ref\.? \d+`},
		ShortNoiseLength:   3,
		PreserveBlankLines: true,
	}

	merged := base.Merge(other)

	if len(merged.Phrases) != 4 {
		t.Errorf("expected 4 deduplicated phrases, got %v", merged.Phrases)
	}
	if len(merged.ExtraPatterns) != 1 {
		t.Errorf("expected 1 pattern, got %v", merged.ExtraPatterns)
	}
	if merged.ShortNoiseLength != 3 {
		t.Errorf("expected ShortNoiseLength 3, got %d", merged.ShortNoiseLength)
	}
	if !merged.PreserveBlankLines {
		t.Error("expected PreserveBlankLines to be set by merge")
	}

	// base is not modified
	if len(base.Phrases) != 3 || base.PreserveBlankLines {
		t.Error("Merge must not modify the receiver")
	}
}

func TestConfigMerge_Nil(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.Merge(nil); got != cfg {
		t.Error("Merge(nil) should return the receiver")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"negative_length", func(c *Config) { c.ShortNoiseLength = -2 }, true},
		{"empty_phrase", func(c *Config) { c.Phrases = append(c.Phrases, "") }, true},
		{"bad_pattern", func(c *Config) { c.ExtraPatterns = []string{"(("} }, true},
		{"good_pattern", func(c *Config) { c.ExtraPatterns = []string{`page \d+`} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// --- LoadConfig Tests ---

func TestLoadConfig_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `phrases:
  - references available upon request
short_noise_length: 4
extra_patterns:
  - 'ref \d+'
preserve_blank_lines: true
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if len(cfg.Phrases) != 1 || cfg.Phrases[0] != "references available upon request" {
		t.Errorf("unexpected phrases %v", cfg.Phrases)
	}
	if cfg.ShortNoiseLength != 4 {
		t.Errorf("expected ShortNoiseLength 4, got %d", cfg.ShortNoiseLength)
	}
	if len(cfg.ExtraPatterns) != 1 || cfg.ExtraPatterns[0] != `ref \d+` {
		t.Errorf("unexpected patterns %v", cfg.ExtraPatterns)
	}
	if !cfg.PreserveBlankLines {
		t.Error("expected PreserveBlankLines")
	}
}

func TestLoadConfig_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	if err := os.WriteFile(path, []byte(`{"phrases": ["draft"]}`), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	merged := DefaultConfig().Merge(cfg)
	c, err := New(merged)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := Clean("DRAFT v2\nJane"); got != "DRAFT v2\nJane" {
		t.Errorf("default cleaner should keep draft line, got %q", got)
	}
	if got, _ := c.Clean("DRAFT v2\nJane"); got != "Jane" {
		t.Errorf("merged cleaner should drop draft line, got %q", got)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		file     string
		content  string
		contains string
	}{
		{"missing", "nope.yaml", "", "failed to read"},
		{"bad_extension", "rules.toml", "x = 1", "unsupported rules file format"},
		{"bad_yaml", "bad.yaml", "phrases: [unclosed", "failed to parse"},
		{"bad_pattern", "pat.yaml", "extra_patterns: ['((']", "invalid pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if tt.content != "" {
				if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
					t.Fatal(err)
				}
			}
			_, err := LoadConfig(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("expected error containing %q, got %v", tt.contains, err)
			}
		})
	}
}
