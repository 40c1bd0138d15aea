package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/resumeclean/internal/logger"
	"github.com/jmylchreest/resumeclean/pkg/extract"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [file|-]",
	Short: "Remove boilerplate lines from already-extracted text",
	Long: `Clean reads plain text from a file or stdin, removes boilerplate lines
and prints the result. No extraction is performed.

Examples:
  resumeclean clean extracted.txt
  pdftotext resume.pdf - | resumeclean clean --stats
  resumeclean clean --phrase "curriculum vitae" -o out.txt raw.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	flags := cleanCmd.Flags()
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.Bool("stats", false, "print cleaning statistics to stderr")
	flags.BoolP("verbose", "v", false, "list dropped lines and the rule that matched on stderr")
	addRuleFlags(flags)
}

func runClean(cmd *cobra.Command, args []string) error {
	bindRuleFlags(cmd.Flags())

	var (
		input []byte
		err   error
	)
	if len(args) == 0 || args[0] == "-" {
		input, err = io.ReadAll(cmd.InOrStdin())
	} else {
		input, err = os.ReadFile(args[0]) //#nosec G304 -- path is chosen by the user
	}
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	c, err := buildCleaner()
	if err != nil {
		return err
	}

	result := c.CleanWithStats(extract.DecodeText(input))
	logger.Debug("text cleaned",
		"input_size", result.Stats.InputBytes,
		"output_size", result.Stats.OutputBytes,
		"dropped", result.Stats.TotalDropped())

	stderr := cmd.ErrOrStderr()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		for _, d := range result.Dropped {
			fmt.Fprintln(stderr, d)
		}
	}
	if stats, _ := cmd.Flags().GetBool("stats"); stats {
		fmt.Fprint(stderr, result.Stats)
	}

	out := result.Content
	if out != "" {
		out += "\n"
	}

	if path, _ := cmd.Flags().GetString("output"); path != "" {
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil { //#nosec G306 -- plain text output
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = io.WriteString(cmd.OutOrStdout(), out)
	return err
}
