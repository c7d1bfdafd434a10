package commands

import (
	"context"
	"fmt"

	"wordplay/internal/domain"
	"wordplay/internal/ports"
)

// PlaylistResult is the ordered playback sequence of a subtree
type PlaylistResult struct {
	FolderID  string
	Path      string
	Questions []domain.Question
	Message   string
}

// BuildPlaylistCommand collects every question under a folder ("" for the
// whole bank, starting with unfiled questions)
type BuildPlaylistCommand struct {
	bank     ports.QuestionBank
	FolderID string
}

// NewBuildPlaylistCommand creates a new BuildPlaylistCommand
func NewBuildPlaylistCommand(bank ports.QuestionBank, folderID string) *BuildPlaylistCommand {
	return &BuildPlaylistCommand{bank: bank, FolderID: folderID}
}

// Execute runs the playlist command
func (c *BuildPlaylistCommand) Execute(ctx context.Context) (*PlaylistResult, error) {
	path := "All questions"
	if c.FolderID != "" {
		if _, err := c.bank.GetFolder(c.FolderID); err != nil {
			return nil, err
		}
		p, err := c.bank.PathOf(c.FolderID)
		if err != nil {
			return nil, err
		}
		path = p
	}

	questions, err := c.bank.AllQuestionsUnder(c.FolderID)
	if err != nil {
		return nil, fmt.Errorf("failed to build playlist: %w", err)
	}

	return &PlaylistResult{
		FolderID:  c.FolderID,
		Path:      path,
		Questions: questions,
		Message:   fmt.Sprintf("%s: %d questions", path, len(questions)),
	}, nil
}
