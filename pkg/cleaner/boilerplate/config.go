// Package boilerplate removes non-content lines from text extracted out of
// resumes and similar documents: bare page numbers, "page N of M" footers,
// confidentiality and copyright notices, separator rules and short
// punctuation-only fragments.
//
// Classification is line based. Each line is normalized (see Normalize) and
// tested against an ordered list of named rules; the first rule that matches
// drops the line. Surviving lines are emitted as written, trimmed.
package boilerplate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPhrases are the notices that mark a line as boilerplate wherever they
// appear in it.
var DefaultPhrases = []string{
	"confidential",
	"all rights reserved",
	"template by",
}

// DefaultShortNoiseLength is the exclusive character bound below which a line
// without any [a-z0-9] character is treated as noise.
const DefaultShortNoiseLength = 5

// Config defines the rule set of the boilerplate cleaner.
type Config struct {
	// Phrases drop any line whose normalized form contains one of them.
	Phrases []string `json:"phrases" yaml:"phrases" mapstructure:"phrases" validate:"dive,required"`

	// ShortNoiseLength drops lines shorter than this many characters that
	// contain no ASCII letter or digit. Zero disables the rule.
	ShortNoiseLength int `json:"short_noise_length" yaml:"short_noise_length" mapstructure:"short_noise_length" validate:"gte=0"`

	// ExtraPatterns are additional regular expressions that must match the
	// whole normalized line. They are tested after the built-in rules.
	ExtraPatterns []string `json:"extra_patterns,omitempty" yaml:"extra_patterns,omitempty" mapstructure:"extra_patterns" validate:"dive,required"`

	// PreserveBlankLines keeps blank input lines as paragraph breaks. Runs of
	// blank lines still collapse to a single one.
	PreserveBlankLines bool `json:"preserve_blank_lines" yaml:"preserve_blank_lines" mapstructure:"preserve_blank_lines"`
}

// DefaultConfig returns the standard resume rule set with paragraph breaks kept.
func DefaultConfig() *Config {
	return &Config{
		Phrases:            append([]string(nil), DefaultPhrases...),
		ShortNoiseLength:   DefaultShortNoiseLength,
		PreserveBlankLines: true,
	}
}

// PresetCompact returns the standard rule set with every blank line removed,
// so the output is one content line after another.
func PresetCompact() *Config {
	cfg := DefaultConfig()
	cfg.PreserveBlankLines = false
	return cfg
}

// Preset returns the named preset ("default" or "compact").
func Preset(name string) (*Config, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return DefaultConfig(), nil
	case "compact":
		return PresetCompact(), nil
	default:
		return nil, fmt.Errorf("unknown preset: %s (use default or compact)", name)
	}
}

// Validate checks the config for structural errors and uncompilable patterns.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid boilerplate config: %w", err)
	}
	for _, expr := range c.ExtraPatterns {
		if _, err := Pattern(expr); err != nil {
			return err
		}
	}
	return nil
}

// Merge merges another config into this one.
// Phrases and patterns are appended (deduplicated), a positive
// ShortNoiseLength overrides, and PreserveBlankLines is set if other sets it.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	merged := *c
	merged.Phrases = appendUnique(append([]string(nil), c.Phrases...), other.Phrases)
	merged.ExtraPatterns = appendUnique(append([]string(nil), c.ExtraPatterns...), other.ExtraPatterns)

	if other.ShortNoiseLength > 0 {
		merged.ShortNoiseLength = other.ShortNoiseLength
	}
	if other.PreserveBlankLines {
		merged.PreserveBlankLines = true
	}

	return &merged
}

func appendUnique(dst, src []string) []string {
	seen := make(map[string]bool, len(dst))
	for _, s := range dst {
		seen[s] = true
	}
	for _, s := range src {
		if !seen[s] {
			dst = append(dst, s)
			seen[s] = true
		}
	}
	return dst
}

// LoadConfig reads a rule set from a JSON or YAML file. Keys missing from the
// file keep their zero value; merge the result into DefaultConfig() to extend
// the standard rules instead of replacing them.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- rule file is chosen by the user
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return nil, fmt.Errorf("unsupported rules file format: %s (use .json, .yaml or .yml)", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
