package boilerplate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Built-in rule names, in evaluation order.
const (
	RulePageNumber = "page-number"
	RulePageOf     = "page-of"
	RulePhrase     = "boilerplate-phrase"
	RuleSeparator  = "separator"
	RuleShortNoise = "short-noise"
)

// Rule is a named predicate over a normalized line. A line matching any rule
// is noise.
type Rule struct {
	Name  string
	Match func(normalized string) bool
}

var (
	pageOfRegex    = regexp.MustCompile(`^page \p{Nd}+ of \p{Nd}+$`)
	separatorRegex = regexp.MustCompile(`^(?:[-_]{3,}|={3,})\s*$`)
)

// PageNumber matches a line made only of digits, e.g. "3".
func PageNumber() Rule {
	return Rule{
		Name: RulePageNumber,
		Match: func(line string) bool {
			if line == "" {
				return false
			}
			for _, r := range line {
				if !unicode.IsDigit(r) {
					return false
				}
			}
			return true
		},
	}
}

// PageOf matches "page N of M" footers.
func PageOf() Rule {
	return Rule{
		Name:  RulePageOf,
		Match: pageOfRegex.MatchString,
	}
}

// Phrases matches a line containing any of the given phrases. Phrases are
// normalized first so they compare against normalized lines; empty phrases
// are ignored.
func Phrases(phrases ...string) Rule {
	normalized := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if n := Normalize(p); n != "" {
			normalized = append(normalized, n)
		}
	}
	return Rule{
		Name: RulePhrase,
		Match: func(line string) bool {
			for _, p := range normalized {
				if strings.Contains(line, p) {
					return true
				}
			}
			return false
		},
	}
}

// Separator matches visual rules: three or more '-'/'_' or three or more '='.
func Separator() Rule {
	return Rule{
		Name:  RuleSeparator,
		Match: separatorRegex.MatchString,
	}
}

// ShortNoise matches lines shorter than maxLen characters that contain no
// ASCII letter or digit, e.g. "•", "|", "* *".
func ShortNoise(maxLen int) Rule {
	return Rule{
		Name: RuleShortNoise,
		Match: func(line string) bool {
			if utf8.RuneCountInString(line) >= maxLen {
				return false
			}
			for i := 0; i < len(line); i++ {
				c := line[i]
				if ('a' <= c && c <= 'z') || ('0' <= c && c <= '9') {
					return false
				}
			}
			return true
		},
	}
}

// Pattern builds a rule from a regular expression that must match the whole
// normalized line. The rule is named "pattern:<expr>".
func Pattern(expr string) (Rule, error) {
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return Rule{}, fmt.Errorf("invalid pattern %q: %w", expr, err)
	}
	return Rule{
		Name:  "pattern:" + expr,
		Match: re.MatchString,
	}, nil
}

// BuildRules returns the ordered rule list for a config.
func BuildRules(cfg *Config) ([]Rule, error) {
	rules := []Rule{
		PageNumber(),
		PageOf(),
		Phrases(cfg.Phrases...),
		Separator(),
		ShortNoise(cfg.ShortNoiseLength),
	}
	for _, expr := range cfg.ExtraPatterns {
		r, err := Pattern(expr)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}
