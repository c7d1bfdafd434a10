package commands

import (
	"context"
	"fmt"

	"wordplay/internal/application"
	"wordplay/internal/domain"
	"wordplay/internal/ports"
)

// CreateFolderResult contains the result of creating a folder
type CreateFolderResult struct {
	Folder  *domain.Folder
	Path    string
	Message string
}

// CreateFolderCommand creates a single folder under a parent (or at the root)
type CreateFolderCommand struct {
	bank     ports.QuestionBank
	Name     string
	Color    string
	ParentID string
}

// NewCreateFolderCommand creates a new CreateFolderCommand
func NewCreateFolderCommand(bank ports.QuestionBank, name, color, parentID string) *CreateFolderCommand {
	return &CreateFolderCommand{
		bank:     bank,
		Name:     name,
		Color:    color,
		ParentID: parentID,
	}
}

// Validate checks if the create operation is valid
func (c *CreateFolderCommand) Validate() error {
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}
	return application.ValidateColor("color", c.Color)
}

// Execute runs the create folder command
func (c *CreateFolderCommand) Execute(ctx context.Context) (*CreateFolderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	folder, err := c.bank.AddFolder(c.Name, c.Color, c.ParentID)
	if err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	path, err := c.bank.PathOf(folder.ID)
	if err != nil {
		return nil, err
	}

	return &CreateFolderResult{
		Folder:  folder,
		Path:    path,
		Message: fmt.Sprintf("Created folder: %s", path),
	}, nil
}

// ResolveFolderResult contains the result of a path resolution
type ResolveFolderResult struct {
	Folder  *domain.Folder
	Created int
	Message string
}

// ResolveFolderCommand finds the folder at a "/"-delimited path, creating
// any missing level
type ResolveFolderCommand struct {
	bank ports.QuestionBank
	Path string
}

// NewResolveFolderCommand creates a new ResolveFolderCommand
func NewResolveFolderCommand(bank ports.QuestionBank, path string) *ResolveFolderCommand {
	return &ResolveFolderCommand{bank: bank, Path: path}
}

// Validate checks that the path has at least one segment
func (c *ResolveFolderCommand) Validate() error {
	if len(domain.SplitPath(c.Path)) == 0 {
		return &application.ValidationError{
			Field:   "folderPath",
			Message: fmt.Sprintf("path %q has no folder names", c.Path),
		}
	}
	return nil
}

// Execute runs the resolve command
func (c *ResolveFolderCommand) Execute(ctx context.Context) (*ResolveFolderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	before, err := c.bank.ListFolders()
	if err != nil {
		return nil, err
	}
	folder, err := c.bank.ResolveOrCreate(c.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", c.Path, err)
	}
	after, err := c.bank.ListFolders()
	if err != nil {
		return nil, err
	}

	created := len(after) - len(before)
	msg := fmt.Sprintf("Resolved %s", after.PathOf(folder.ID))
	if created > 0 {
		msg += fmt.Sprintf(" (created %d folders)", created)
	}
	return &ResolveFolderResult{
		Folder:  folder,
		Created: created,
		Message: msg,
	}, nil
}
