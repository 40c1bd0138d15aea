// resumeclean-text is a standalone tool for testing and developing the
// boilerplate line cleaner.
//
// Usage:
//
//	resumeclean-text [options] <file>
//
// Examples:
//
//	# Clean extracted text and show stats
//	resumeclean-text raw.txt
//
//	# Extract a resume first, then clean it
//	resumeclean-text resume.pdf
//
//	# Show which rule dropped each line
//	resumeclean-text -v raw.txt
//
//	# Compare presets
//	resumeclean-text -compare raw.txt
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jmylchreest/resumeclean/pkg/cleaner/boilerplate"
	"github.com/jmylchreest/resumeclean/pkg/extract"
	"github.com/jmylchreest/resumeclean/pkg/resumeclean"
)

// listFlag collects a repeatable string flag.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ", ") }

func (l *listFlag) Set(v string) error {
	*l = append(*l, v)
	return nil
}

var (
	// Input options
	fileInput = flag.String("f", "", "Read input from file instead of stdin")

	// Config options
	preset    = flag.String("preset", "", "Use preset: default, compact")
	rulesFile = flag.String("rules", "", "JSON or YAML rules file merged into the preset")
	phrases   listFlag
	patterns  listFlag

	// Output options
	outputFile = flag.String("o", "", "Write cleaned output to file")
	statsOnly  = flag.Bool("stats-only", false, "Only show stats, don't output content")
	jsonStats  = flag.Bool("json", false, "Output stats as JSON")
	verbose    = flag.Bool("v", false, "Verbose output (list dropped lines)")
	quiet      = flag.Bool("q", false, "Quiet mode (no stats, only content)")

	// Compare mode
	compare = flag.Bool("compare", false, "Compare presets")
)

func main() {
	flag.Var(&phrases, "phrase", "Extra boilerplate phrase (can be repeated)")
	flag.Var(&patterns, "pattern", "Extra full-line regular expression (can be repeated)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "resumeclean-text - Test tool for the boilerplate line cleaner\n\n")
		fmt.Fprintf(os.Stderr, "Usage: resumeclean-text [options] <file>\n\n")
		fmt.Fprintf(os.Stderr, "Text files are cleaned as they are; .pdf, .docx, .png, .jpg and .jpeg\n")
		fmt.Fprintf(os.Stderr, "files are extracted first.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  resumeclean-text raw.txt\n")
		fmt.Fprintf(os.Stderr, "  resumeclean-text -v -preset compact resume.pdf\n")
		fmt.Fprintf(os.Stderr, "  resumeclean-text -phrase 'curriculum vitae' -stats-only raw.txt\n")
		fmt.Fprintf(os.Stderr, "  resumeclean-text -compare raw.txt\n")
	}

	flag.Parse()

	source := "stdin"
	if *fileInput != "" {
		source = *fileInput
	} else if flag.NArg() > 0 {
		source = flag.Arg(0)
	}

	text, err := readInput(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(text) == 0 {
		fmt.Fprintf(os.Stderr, "Error: empty input\n")
		os.Exit(1)
	}

	if *compare {
		runComparison(text, source)
		return
	}

	cfg, err := buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cleaner, err := boilerplate.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	result := cleaner.CleanWithStats(text)

	if !*quiet {
		if *jsonStats {
			outputJSONStats(result, source)
		} else {
			outputTextStats(result, source)
		}
	}

	if *verbose && len(result.Dropped) > 0 {
		fmt.Fprintf(os.Stderr, "\nDropped lines:\n")
		for _, d := range result.Dropped {
			fmt.Fprintf(os.Stderr, "  %s\n", d.String())
		}
	}

	if *statsOnly {
		return
	}
	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(result.Content), 0o644); err != nil { //#nosec G306 -- plain text output
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		if !*quiet {
			fmt.Fprintf(os.Stderr, "\nWritten to %s\n", *outputFile)
		}
		return
	}
	if !*quiet {
		fmt.Println("\n--- Cleaned Content ---")
	}
	fmt.Println(result.Content)
}

// readInput returns the text to clean. Resume formats are run through the
// extractors; anything else is read as text.
func readInput(source string) (string, error) {
	if source == "stdin" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return extract.DecodeText(data), nil
	}

	if _, err := extract.FormatFromFilename(source); err != nil {
		data, err := os.ReadFile(source) //#nosec G304 -- path is chosen by the user
		if err != nil {
			return "", fmt.Errorf("reading file %s: %w", source, err)
		}
		return extract.DecodeText(data), nil
	}

	f, err := resumeclean.ReadFile(source)
	if err != nil {
		return "", err
	}
	reg, err := resumeclean.DefaultRegistry(resumeclean.DefaultConfig())
	if err != nil {
		return "", err
	}
	out, _, err := reg.Extract(context.Background(), extract.Source{Name: f.Name, Data: f.Data})
	if err != nil {
		return "", err
	}
	for _, w := range out.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	return out.Text, nil
}

func buildConfig() (*boilerplate.Config, error) {
	cfg, err := boilerplate.Preset(*preset)
	if err != nil {
		return nil, err
	}

	if *rulesFile != "" {
		fileCfg, err := boilerplate.LoadConfig(*rulesFile)
		if err != nil {
			return nil, err
		}
		cfg = cfg.Merge(fileCfg)
	}

	return cfg.Merge(&boilerplate.Config{
		Phrases:       phrases,
		ExtraPatterns: patterns,
	}), nil
}

func outputTextStats(result *boilerplate.Result, source string) {
	fmt.Fprintf(os.Stderr, "\n=== Boilerplate Cleaner Stats ===\n")
	fmt.Fprintf(os.Stderr, "Source: %s\n", source)
	fmt.Fprint(os.Stderr, result.Stats.String())
}

func outputJSONStats(result *boilerplate.Result, source string) {
	stats := struct {
		Source  string             `json:"source"`
		Stats   *boilerplate.Stats `json:"stats"`
		Reduced float64            `json:"reduction_percent"`
	}{
		Source:  source,
		Stats:   result.Stats,
		Reduced: result.Stats.ReductionPercent(),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(stats)
}

func runComparison(text string, source string) {
	presets := []struct {
		name string
		cfg  *boilerplate.Config
	}{
		{"default", boilerplate.DefaultConfig()},
		{"compact", boilerplate.PresetCompact()},
	}

	fmt.Printf("\n=== Preset Comparison for %s ===\n", source)
	fmt.Printf("Input size: %d bytes\n\n", len(text))
	fmt.Printf("%-10s %10s %8s %8s %8s %10s\n", "Preset", "Output", "Kept", "Dropped", "Reduce%", "Time")
	fmt.Printf("%-10s %10s %8s %8s %8s %10s\n", "------", "------", "----", "-------", "-------", "----")

	for _, p := range presets {
		cleaner, err := boilerplate.New(p.cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		result := cleaner.CleanWithStats(text)

		fmt.Printf("%-10s %10d %8d %8d %7.1f%% %10v\n",
			p.name,
			result.Stats.OutputBytes,
			result.Stats.LinesKept,
			result.Stats.TotalDropped(),
			result.Stats.ReductionPercent(),
			result.Stats.Duration.Round(time.Microsecond))
	}

	fmt.Println()
}
