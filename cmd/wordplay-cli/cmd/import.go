package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"wordplay/internal/application/commands"
	"wordplay/internal/application/importer"
)

var (
	importDryRun bool
	importFormat string
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import questions from a JSON or YAML document",
	Long: `Import questions from a JSON or YAML document holding a list of records.

The document is previewed first: record counts, the folders that will be
created and the records that will be skipped. Invalid records never stop
the import. Use "-" to read from stdin.

Examples:
  wordplay-cli example mixed > mixed.json
  wordplay-cli import mixed.json --dry-run
  wordplay-cli import questions.yaml
  cat questions.json | wordplay-cli import - --format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, format, err := readDocument(args[0])
		if err != nil {
			return err
		}
		if importFormat != "" {
			format = importer.Format(importFormat)
		}

		ctx := context.Background()
		importCmd := commands.NewImportCommand(GetBank(), instance.Logger, data, format)
		preview, err := importCmd.Preview(ctx)
		if err != nil {
			return err
		}

		fmt.Print(preview.Summary())
		if importDryRun {
			return nil
		}
		if preview.Valid == 0 {
			return fmt.Errorf("nothing to import: no valid records")
		}

		result, err := importCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message())
		return nil
	},
}

func readDocument(path string) ([]byte, importer.Format, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, importer.FormatAuto, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, importer.FormatFromPath(path), nil
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVarP(&importDryRun, "dry-run", "n", false, "only show the preview")
	importCmd.Flags().StringVar(&importFormat, "format", "", "document format: json or yaml (default: from extension)")
}
