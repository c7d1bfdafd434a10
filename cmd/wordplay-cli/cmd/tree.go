package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"wordplay/internal/application"
	"wordplay/internal/application/commands"
)

var treeQuestions bool

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Display the folder tree with question counts",
	Long: `Display the complete folder tree. Each folder shows the number of
questions in its whole subtree.

Example:
  wordplay-cli tree
  wordplay-cli tree --questions`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		buildCmd := commands.NewBuildTreeCommand(GetBank())
		root, err := buildCmd.Execute(ctx)
		if err != nil {
			return err
		}

		printTree(root, 0)

		modified, err := instance.LastModified()
		if err != nil {
			return err
		}
		if !modified.IsZero() {
			fmt.Printf("\nLast modified %s\n", modified.Local().Format(time.DateTime))
		}
		return nil
	},
}

func printTree(node *application.TreeNode, depth int) {
	if node == nil {
		return
	}

	indent := strings.Repeat("  ", depth)
	switch node.Kind {
	case application.NodeQuestion:
		if !treeQuestions {
			return
		}
		fmt.Printf("%s- %s\n", indent, node.Name)
	case application.NodeFolder:
		fmt.Printf("%s%s (%d)\n", indent, node.Name, node.Total)
	default:
		fmt.Printf("%s (%d)\n", node.Name, node.Total)
	}

	for _, child := range node.Children {
		printTree(child, depth+1)
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().BoolVarP(&treeQuestions, "questions", "q", false, "also list questions")
}
