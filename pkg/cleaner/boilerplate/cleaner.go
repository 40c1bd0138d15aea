package boilerplate

import (
	"regexp"
	"strings"
	"time"
)

var blankRunRegex = regexp.MustCompile(`\n{2,}`)

// Cleaner drops boilerplate lines from extracted text.
// It implements the cleaner.Cleaner interface and is safe for concurrent use.
type Cleaner struct {
	config *Config
	rules  []Rule
}

var defaultCleaner = Default()

// New creates a new Cleaner with the given configuration.
// If config is nil, DefaultConfig() is used.
func New(config *Config) (*Cleaner, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	rules, err := BuildRules(config)
	if err != nil {
		return nil, err
	}
	return &Cleaner{
		config: config,
		rules:  rules,
	}, nil
}

// Default returns a Cleaner using DefaultConfig.
func Default() *Cleaner {
	cfg := DefaultConfig()
	rules, _ := BuildRules(cfg)
	return &Cleaner{config: cfg, rules: rules}
}

// Clean cleans text with the default rule set.
func Clean(text string) string {
	return defaultCleaner.CleanWithStats(text).Content
}

// Name returns the cleaner name for logging.
func (c *Cleaner) Name() string {
	return "boilerplate"
}

// Config returns the configuration the cleaner was built from.
func (c *Cleaner) Config() *Config {
	return c.config
}

// RuleNames returns the rule names in evaluation order.
func (c *Cleaner) RuleNames() []string {
	names := make([]string, len(c.rules))
	for i, r := range c.rules {
		names[i] = r.Name
	}
	return names
}

// Clean removes noise lines from text. It never fails; the error is always nil.
func (c *Cleaner) Clean(text string) (string, error) {
	return c.CleanWithStats(text).Content, nil
}

// Classify reports whether a single line is noise and, if so, which rule
// matched first.
func (c *Cleaner) Classify(line string) (rule string, drop bool) {
	normalized := Normalize(line)
	for _, r := range c.rules {
		if r.Match(normalized) {
			return r.Name, true
		}
	}
	return "", false
}

// CleanWithStats performs cleaning and returns detailed stats.
func (c *Cleaner) CleanWithStats(text string) *Result {
	start := time.Now()
	result := &Result{
		Stats: NewStats(),
	}
	result.Stats.InputBytes = len(text)

	lines := strings.Split(text, "\n")
	result.Stats.LinesIn = len(lines)

	kept := make([]string, 0, len(lines))
	for i, line := range lines {
		trimmed := trim(line)
		if trimmed == "" {
			result.Stats.BlankLines++
			if c.config.PreserveBlankLines {
				kept = append(kept, "")
			}
			continue
		}

		if rule, drop := c.Classify(line); drop {
			result.Stats.RecordDrop(rule)
			result.Dropped = append(result.Dropped, DroppedLine{
				Number: i + 1,
				Text:   trimmed,
				Rule:   rule,
			})
			continue
		}

		kept = append(kept, trimmed)
		result.Stats.LinesKept++
	}

	joined := strings.Join(kept, "\n")
	joined = blankRunRegex.ReplaceAllString(joined, "\n\n")
	result.Content = trim(joined)

	result.Stats.OutputBytes = len(result.Content)
	result.Stats.Duration = time.Since(start)
	return result
}
