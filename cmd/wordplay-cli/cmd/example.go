package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wordplay/internal/application/importer"
)

var exampleYAML bool

var exampleCmd = &cobra.Command{
	Use:   "example <kind>",
	Short: "Print an example import document",
	Long: `Print an example import document for one question type, or a mixed one.

Kinds: ` + strings.Join(importer.ExampleKinds(), ", ") + `

Examples:
  wordplay-cli example spelling
  wordplay-cli example mixed --yaml > mixed.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := importer.FormatJSON
		if exampleYAML {
			format = importer.FormatYAML
		}
		doc, err := importer.Example(args[0], format)
		if err != nil {
			return err
		}

		fmt.Println(strings.TrimRight(string(doc), "\n"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exampleCmd)
	exampleCmd.Flags().BoolVar(&exampleYAML, "yaml", false, "print YAML instead of JSON")
}
