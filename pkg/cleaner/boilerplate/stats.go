package boilerplate

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Stats captures what the cleaner did to one input.
type Stats struct {
	// Size metrics
	InputBytes  int `json:"input_bytes" yaml:"input_bytes"`
	OutputBytes int `json:"output_bytes" yaml:"output_bytes"`

	// Line counts
	LinesIn    int            `json:"lines_in" yaml:"lines_in"`
	LinesKept  int            `json:"lines_kept" yaml:"lines_kept"`
	BlankLines int            `json:"blank_lines" yaml:"blank_lines"`
	Dropped    map[string]int `json:"dropped" yaml:"dropped"` // rule -> count

	Duration time.Duration `json:"duration_ns" yaml:"duration_ns"`
}

// NewStats creates a new Stats instance with initialized maps.
func NewStats() *Stats {
	return &Stats{
		Dropped: make(map[string]int),
	}
}

// RecordDrop records that a line was dropped by the named rule.
func (s *Stats) RecordDrop(rule string) {
	s.Dropped[rule]++
}

// TotalDropped returns the number of lines dropped by any rule.
func (s *Stats) TotalDropped() int {
	total := 0
	for _, count := range s.Dropped {
		total += count
	}
	return total
}

// ReductionPercent returns the percentage reduction in size.
func (s *Stats) ReductionPercent() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.InputBytes-s.OutputBytes) / float64(s.InputBytes) * 100
}

// String returns a human-readable summary of the stats.
func (s *Stats) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Size: %d -> %d bytes (%.1f%% reduction)\n",
		s.InputBytes, s.OutputBytes, s.ReductionPercent()))

	sb.WriteString(fmt.Sprintf("Lines: %d in, %d kept, %d dropped, %d blank\n",
		s.LinesIn, s.LinesKept, s.TotalDropped(), s.BlankLines))

	if len(s.Dropped) > 0 {
		rules := make([]string, 0, len(s.Dropped))
		for rule := range s.Dropped {
			rules = append(rules, rule)
		}
		sort.Strings(rules)

		parts := make([]string, 0, len(rules))
		for _, rule := range rules {
			parts = append(parts, fmt.Sprintf("%s=%d", rule, s.Dropped[rule]))
		}
		sb.WriteString("Dropped by rule: ")
		sb.WriteString(strings.Join(parts, ", "))
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Timing: %v\n", s.Duration.Round(time.Microsecond)))

	return sb.String()
}

// DroppedLine is an input line the cleaner removed.
type DroppedLine struct {
	Number int    `json:"line" yaml:"line"` // 1-based position in the input
	Text   string `json:"text" yaml:"text"`
	Rule   string `json:"rule" yaml:"rule"`
}

// String formats the dropped line for diagnostics.
func (d DroppedLine) String() string {
	return fmt.Sprintf("%4d [%s] %q", d.Number, d.Rule, d.Text)
}

// Result contains the output of a cleaning operation.
type Result struct {
	// Content is the cleaned text.
	Content string `json:"content" yaml:"content"`

	// Stats contains metrics about what was done.
	Stats *Stats `json:"stats" yaml:"stats"`

	// Dropped lists the removed lines in input order.
	Dropped []DroppedLine `json:"dropped,omitempty" yaml:"dropped,omitempty"`
}
