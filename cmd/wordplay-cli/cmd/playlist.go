package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"wordplay/internal/application"
	"wordplay/internal/application/commands"
	"wordplay/internal/domain"
)

var playlistPath string

var playlistCmd = &cobra.Command{
	Use:   "playlist [folder-id]",
	Short: "Print the playback order of a folder subtree",
	Long: `Print every question under a folder in playback order: the folder's own
questions first, then each subfolder depth-first. Without a folder the
whole bank is listed, unfiled questions first.

Examples:
  wordplay-cli playlist
  wordplay-cli playlist <folder-id>
  wordplay-cli playlist --path Grammar/Tenses`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		folderID := ""
		switch {
		case len(args) == 1:
			folderID = args[0]
		case playlistPath != "":
			id, err := lookupPath(playlistPath)
			if err != nil {
				return err
			}
			folderID = id
		}

		ctx := context.Background()
		playlistCmd := commands.NewBuildPlaylistCommand(GetBank(), folderID)
		result, err := playlistCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		for i, q := range result.Questions {
			fmt.Printf("%3d. ", i+1)
			printQuestionLine(q)
		}
		return nil
	},
}

// lookupPath finds an existing folder by path without creating anything
func lookupPath(path string) (string, error) {
	folders, err := GetBank().ListFolders()
	if err != nil {
		return "", err
	}
	segments := domain.SplitPath(path)
	if len(segments) == 0 {
		return "", application.ErrInvalidPath
	}
	folder, matched := folders.Walk(segments)
	if matched != len(segments) {
		return "", fmt.Errorf("folder %q: %w", path, application.ErrNotFound)
	}
	return folder.ID, nil
}

func init() {
	rootCmd.AddCommand(playlistCmd)
	playlistCmd.Flags().StringVarP(&playlistPath, "path", "p", "", "select the folder by path instead of id")
}
