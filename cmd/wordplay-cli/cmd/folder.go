package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"wordplay/internal/application/commands"
)

var (
	folderParent    string
	folderColor     string
	folderToRoot    bool
	folderPurge     bool
	folderRecursive bool
)

var folderCmd = &cobra.Command{
	Use:   "folder",
	Short: "Manage the folder tree",
	Long: `Create, resolve, rename, move, delete and list folders.

Examples:
  wordplay-cli folder create Grammar
  wordplay-cli folder resolve "Grammar/Tenses/Past"
  wordplay-cli folder rename <folder-id> "Verb tenses" --color green
  wordplay-cli folder move <folder-id> <dest-id>
  wordplay-cli folder delete <folder-id> --purge
  wordplay-cli folder list -r`,
}

var folderCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a folder at the root or under --parent",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		createCmd := commands.NewCreateFolderCommand(GetBank(), args[0], folderColor, folderParent)
		result, err := createCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

var folderResolveCmd = &cobra.Command{
	Use:   "resolve <path>",
	Short: "Find the folder at a slash-delimited path, creating missing levels",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		resolveCmd := commands.NewResolveFolderCommand(GetBank(), args[0])
		result, err := resolveCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

var folderRenameCmd = &cobra.Command{
	Use:   "rename <folder-id> <new-name>",
	Short: "Rename a folder, optionally changing its colour",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		renameCmd := commands.NewRenameFolderCommand(GetBank(), args[0], args[1], folderColor)
		result, err := renameCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

var folderMoveCmd = &cobra.Command{
	Use:   "move <folder-id> [dest-id]",
	Short: "Move a folder under another folder, or to the root with --root",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dest := ""
		switch {
		case len(args) == 2 && folderToRoot:
			return fmt.Errorf("give either a destination or --root, not both")
		case len(args) == 2:
			dest = args[1]
		case !folderToRoot:
			return fmt.Errorf("missing destination: give a folder id or --root")
		}

		ctx := context.Background()
		moveCmd := commands.NewMoveFolderCommand(GetBank(), args[0], dest)
		result, err := moveCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

var folderDeleteCmd = &cobra.Command{
	Use:   "delete <folder-id>",
	Short: "Delete a folder and all of its subfolders",
	Long: `Delete a folder and all of its subfolders.

Questions filed anywhere in the deleted subtree are moved to unfiled,
or deleted as well with --purge.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		deleteCmd := commands.NewDeleteFolderCommand(GetBank(), args[0], folderPurge)
		result, err := deleteCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

var folderListCmd = &cobra.Command{
	Use:   "list [parent-id]",
	Short: "List folders with their question counts",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parentID := ""
		if len(args) == 1 {
			parentID = args[0]
		}

		ctx := context.Background()
		listCmd := commands.NewListFoldersCommand(GetBank(), parentID, folderRecursive)
		entries, err := listCmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, e := range entries {
			fmt.Printf("%s  %-40s %3d direct %3d total  [%s]\n", e.ID, e.Path, e.Direct, e.Total, e.Color)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(folderCmd)
	folderCmd.AddCommand(folderCreateCmd)
	folderCmd.AddCommand(folderResolveCmd)
	folderCmd.AddCommand(folderRenameCmd)
	folderCmd.AddCommand(folderMoveCmd)
	folderCmd.AddCommand(folderDeleteCmd)
	folderCmd.AddCommand(folderListCmd)

	folderCreateCmd.Flags().StringVarP(&folderParent, "parent", "p", "", "parent folder id (default: root level)")
	folderCreateCmd.Flags().StringVarP(&folderColor, "color", "c", "", "palette colour (default: next in palette)")
	folderRenameCmd.Flags().StringVarP(&folderColor, "color", "c", "", "new palette colour")
	folderMoveCmd.Flags().BoolVar(&folderToRoot, "root", false, "move to the root level")
	folderDeleteCmd.Flags().BoolVar(&folderPurge, "purge", false, "delete the subtree's questions instead of unfiling them")
	folderListCmd.Flags().BoolVarP(&folderRecursive, "recursive", "r", false, "list the whole subtree")
}
