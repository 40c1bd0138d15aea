package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/resumeclean/pkg/extract"
	"github.com/jmylchreest/resumeclean/pkg/extract/image"
	"github.com/jmylchreest/resumeclean/pkg/resumeclean"
)

type formatInfo struct {
	Extension string `json:"extension"`
	Format    string `json:"format"`
	Extractor string `json:"extractor"`
	Available bool   `json:"available"`
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List accepted file types",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := resumeclean.DefaultRegistry(resumeclean.DefaultConfig())
		if err != nil {
			return err
		}

		var infos []formatInfo
		for _, ext := range extract.SupportedExtensions() {
			format, err := extract.FormatFromFilename("file." + ext)
			if err != nil {
				return err
			}
			info := formatInfo{Extension: ext, Format: string(format), Available: true}
			if ex, err := reg.For(format); err == nil {
				info.Extractor = ex.Name()
			}
			if format == extract.FormatImage {
				info.Available = image.Available
			}
			infos = append(infos, info)
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(infos)
		}

		for _, info := range infos {
			note := ""
			if !info.Available {
				note = "  (needs -tags ocr)"
			}
			fmt.Fprintf(out, ".%-5s %-6s %s%s\n", info.Extension, info.Format, info.Extractor, note)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
	formatsCmd.Flags().Bool("json", false, "output as JSON")
}
