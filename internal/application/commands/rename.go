package commands

import (
	"context"
	"fmt"

	"wordplay/internal/application"
	"wordplay/internal/domain"
	"wordplay/internal/ports"
)

// RenameResult contains the result of a rename operation
type RenameResult struct {
	Folder  *domain.Folder
	OldName string
	Message string
}

// RenameFolderCommand renames and optionally recolours a folder
type RenameFolderCommand struct {
	bank     ports.QuestionBank
	FolderID string
	NewName  string
	Color    string
}

// NewRenameFolderCommand creates a new RenameFolderCommand
func NewRenameFolderCommand(bank ports.QuestionBank, folderID, newName, color string) *RenameFolderCommand {
	return &RenameFolderCommand{
		bank:     bank,
		FolderID: folderID,
		NewName:  newName,
		Color:    color,
	}
}

// Validate checks if the rename operation is valid
func (c *RenameFolderCommand) Validate() error {
	if err := application.ValidateRequired("folderID", c.FolderID); err != nil {
		return err
	}
	if c.NewName == "" && c.Color == "" {
		return &application.ValidationError{
			Field:   "name",
			Message: "a new name or colour is required",
		}
	}
	return application.ValidateColor("color", c.Color)
}

// Execute runs the rename command
func (c *RenameFolderCommand) Execute(ctx context.Context) (*RenameResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	current, err := c.bank.GetFolder(c.FolderID)
	if err != nil {
		return nil, err
	}

	var patch domain.FolderPatch
	if c.NewName != "" {
		patch.Name = &c.NewName
	}
	if c.Color != "" {
		patch.Color = &c.Color
	}

	folder, err := c.bank.UpdateFolder(c.FolderID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to rename folder: %w", err)
	}

	msg := fmt.Sprintf("Renamed %s to %s", current.Name, folder.Name)
	if folder.Name == current.Name {
		msg = fmt.Sprintf("Recoloured %s to %s", folder.Name, folder.Color)
	}
	return &RenameResult{
		Folder:  folder,
		OldName: current.Name,
		Message: msg,
	}, nil
}
