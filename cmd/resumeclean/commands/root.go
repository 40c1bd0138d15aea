// Package commands implements the CLI commands for resumeclean.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/resumeclean/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "resumeclean",
	Short: "Extract and clean the text of resume files",
	Long: `Resumeclean extracts the text of PDF, DOCX and image resumes and removes
boilerplate lines: page numbers, "page N of M" footers, confidentiality and
template notices, separator rules and stray punctuation.

For every file the raw and cleaned text are printed and the cleaned text is
saved as <name>_cleaned.txt.

Examples:
  # Clean a batch of resumes into ./cleaned
  resumeclean process -o cleaned resume.pdf cv.docx scan.png

  # Print a JSON report without writing files
  resumeclean process --no-download --format json resume.pdf

  # Clean text that was extracted elsewhere
  pdftotext resume.pdf - | resumeclean clean`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Init(logger.Options{
			Debug: viper.GetBool("debug"),
			Quiet: viper.GetBool("quiet"),
			Level: viper.GetString("log_level"),
			JSON:  viper.GetBool("log_json"),
		})
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default $HOME/.resumeclean.yaml)")
	flags.Bool("debug", false, "enable debug logging")
	flags.BoolP("quiet", "q", false, "only log errors")
	flags.String("log-level", "", "log level: debug, info, warn, error (overrides --debug/--quiet)")
	flags.Bool("log-json", false, "log as JSON")

	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("debug", flags.Lookup("debug"))
	_ = viper.BindPFlag("quiet", flags.Lookup("quiet"))
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("log_json", flags.Lookup("log-json"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".resumeclean")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("RESUMECLEAN")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	if err := viper.ReadInConfig(); err == nil {
		logger.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
