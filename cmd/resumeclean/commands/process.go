package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/resumeclean/internal/logger"
	"github.com/jmylchreest/resumeclean/internal/output"
	"github.com/jmylchreest/resumeclean/pkg/cleaner"
	"github.com/jmylchreest/resumeclean/pkg/resumeclean"
)

var processCmd = &cobra.Command{
	Use:   "process <file>...",
	Short: "Extract, clean and save resume files",
	Long: `Process extracts the text of each file (PDF, DOCX, PNG, JPG or JPEG),
removes boilerplate lines and prints the raw and cleaned text. The cleaned
text is saved as <name>_cleaned.txt in the output directory.

Files are handled one at a time in the order given. A file that cannot be
read, has an unsupported extension or fails to extract is reported and the
rest of the batch continues. The exit status is non-zero only when no file
produced cleaned text.

Use "-" to read a single file from stdin; --stdin-name then supplies the
file name used for format detection and the download name.

Examples:
  resumeclean process resume.pdf cv.docx
  resumeclean process -o cleaned --preset compact *.pdf
  resumeclean process --format jsonl --show-raw=false scans/*.png
  resumeclean process --no-clean --no-download resume.pdf
  cat cv.docx | resumeclean process --stdin-name cv.docx -`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	flags := processCmd.Flags()

	// Output settings
	flags.StringP("out-dir", "o", ".", "directory for <name>_cleaned.txt downloads")
	flags.Bool("no-download", false, "do not write download files")
	flags.String("format", "text", "report format: text, json, jsonl, yaml")
	flags.Bool("show-raw", true, "include the raw extracted text in the report (use --show-raw=false to hide)")
	flags.String("stdin-name", "", "file name for input read from stdin")

	// Extraction settings
	flags.String("max-file-size", resumeclean.DefaultMaxFileSize, "largest file to process (e.g., 10MB, 0=unlimited)")
	flags.String("ocr-lang", "eng", "Tesseract language(s) for images, e.g. eng or eng+deu")
	flags.Bool("no-tables", false, "skip the PDF table pass")

	// Cleaning settings
	flags.Bool("no-clean", false, "keep every extracted line (the cleaned text equals the raw text)")
	addRuleFlags(flags)

	_ = viper.BindPFlag("out_dir", flags.Lookup("out-dir"))
	_ = viper.BindPFlag("no_download", flags.Lookup("no-download"))
	_ = viper.BindPFlag("format", flags.Lookup("format"))
	_ = viper.BindPFlag("show_raw", flags.Lookup("show-raw"))
	_ = viper.BindPFlag("max_file_size", flags.Lookup("max-file-size"))
	_ = viper.BindPFlag("ocr_lang", flags.Lookup("ocr-lang"))
	_ = viper.BindPFlag("no_tables", flags.Lookup("no-tables"))
	_ = viper.BindPFlag("no_clean", flags.Lookup("no-clean"))
}

func runProcess(cmd *cobra.Command, args []string) error {
	bindRuleFlags(cmd.Flags())

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var c cleaner.Cleaner = cleaner.NewNoop()
	if !viper.GetBool("no_clean") {
		bc, err := buildCleaner()
		if err != nil {
			return err
		}
		c = bc
	}

	maxSize, err := resumeclean.ParseSize(viper.GetString("max_file_size"))
	if err != nil {
		logger.Error("invalid max-file-size", "value", viper.GetString("max_file_size"), "error", err)
		return err
	}

	opts := []resumeclean.Option{
		resumeclean.WithCleaner(c),
		resumeclean.WithMaxFileSize(maxSize),
		resumeclean.WithOCRLanguage(viper.GetString("ocr_lang")),
	}
	if !viper.GetBool("no_download") {
		opts = append(opts, resumeclean.WithOutputDir(viper.GetString("out_dir")))
	}
	if viper.GetBool("no_tables") {
		pdfCfg := resumeclean.DefaultConfig().PDF
		pdfCfg.Tables = false
		opts = append(opts, resumeclean.WithPDFConfig(pdfCfg))
	}

	p, err := resumeclean.New(opts...)
	if err != nil {
		return err
	}

	w, err := output.NewWriter(cmd.OutOrStdout(), output.Format(viper.GetString("format")))
	if err != nil {
		return err
	}

	logger.Debug("process starting",
		"files", len(args),
		"cleaner", c.Name(),
		"max_file_size", humanize.Bytes(uint64(maxSize)),
		"download", !viper.GetBool("no_download"))

	showRaw := viper.GetBool("show_raw")
	results := make([]*resumeclean.Result, 0, len(args))
	for _, arg := range args {
		r := processArg(ctx, p, arg, cmd)
		results = append(results, r)
		if err := w.Write(output.NewRecord(r, showRaw)); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	summary := resumeclean.Summarize(results)
	logger.Info("done",
		"total", summary.Total,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"skipped", summary.Skipped)

	if summary.AllFailed() {
		return fmt.Errorf("all %d files failed", summary.Total)
	}
	return nil
}

// processArg loads one command-line argument and processes it. Read errors
// are reported in the result like any other per-file failure.
func processArg(ctx context.Context, p *resumeclean.Processor, arg string, cmd *cobra.Command) *resumeclean.Result {
	var (
		f   resumeclean.File
		err error
	)
	if arg == "-" {
		name, _ := cmd.Flags().GetString("stdin-name")
		if name == "" {
			return &resumeclean.Result{Filename: "-", Err: fmt.Errorf("reading stdin requires --stdin-name")}
		}
		f, err = resumeclean.ReadFrom(name, cmd.InOrStdin())
	} else {
		f, err = resumeclean.ReadFile(arg)
	}
	if err != nil {
		logError("%v", err)
		return &resumeclean.Result{Filename: arg, Err: err}
	}
	return p.Process(ctx, f)
}
