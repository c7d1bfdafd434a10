package commands

import (
	"context"
	"errors"
	"fmt"

	"wordplay/internal/application"
	"wordplay/internal/domain"
	"wordplay/internal/ports"
)

// MoveFolderResult contains the result of moving a folder
type MoveFolderResult struct {
	Folder  *domain.Folder
	NewPath string
	Message string
}

// MoveFolderCommand re-parents a folder. An empty DestinationID moves it
// to the root level.
type MoveFolderCommand struct {
	bank          ports.QuestionBank
	SourceID      string
	DestinationID string
}

// NewMoveFolderCommand creates a new MoveFolderCommand
func NewMoveFolderCommand(bank ports.QuestionBank, sourceID, destinationID string) *MoveFolderCommand {
	return &MoveFolderCommand{
		bank:          bank,
		SourceID:      sourceID,
		DestinationID: destinationID,
	}
}

// Validate checks if the move operation is valid
func (c *MoveFolderCommand) Validate() error {
	if err := application.ValidateRequired("sourceID", c.SourceID); err != nil {
		return err
	}
	if c.SourceID == c.DestinationID {
		return &application.MoveError{
			SourceID: c.SourceID,
			DestID:   c.DestinationID,
			Reason:   "a folder cannot contain itself",
			Err:      application.ErrCycle,
		}
	}
	return nil
}

// Execute runs the move folder command
func (c *MoveFolderCommand) Execute(ctx context.Context) (*MoveFolderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	dest := c.DestinationID
	folder, err := c.bank.UpdateFolder(c.SourceID, domain.FolderPatch{ParentID: &dest})
	switch {
	case errors.Is(err, domain.ErrCycle):
		return nil, &application.MoveError{
			SourceID: c.SourceID,
			DestID:   c.DestinationID,
			Reason:   "destination is inside the folder being moved",
			Err:      err,
		}
	case err != nil:
		return nil, fmt.Errorf("failed to move folder: %w", err)
	}

	path, err := c.bank.PathOf(folder.ID)
	if err != nil {
		return nil, err
	}
	return &MoveFolderResult{
		Folder:  folder,
		NewPath: path,
		Message: fmt.Sprintf("Moved to %s", path),
	}, nil
}
