package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wordplay/internal/application/commands"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy search question text",
	Long: `Search sentences, translations and type-specific fields of every question.

Example:
  wordplay-cli search "apple"
  wordplay-cli search past tense -n 5`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		searchCmd := commands.NewSearchCommand(GetBank(), strings.Join(args, " "))
		results, err := searchCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("No matches")
			return nil
		}
		for i, r := range results {
			if searchLimit > 0 && i >= searchLimit {
				break
			}
			path := r.Path
			if path == "" {
				path = "unfiled"
			}
			fmt.Printf("%s  %-9s %s  [%s]\n", r.Question.ID, r.Question.Type.Label(), r.MatchedText, path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 20, "maximum results (0 for all)")
}
