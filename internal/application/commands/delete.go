package commands

import (
	"context"
	"fmt"

	"wordplay/internal/application"
	"wordplay/internal/ports"
)

// DeleteFolderResult contains the result of a folder delete
type DeleteFolderResult struct {
	ports.DeleteFolderResult
	Path    string
	Message string
}

// DeleteFolderCommand deletes a folder with all of its descendants
type DeleteFolderCommand struct {
	bank     ports.QuestionBank
	FolderID string
	Purge    bool
}

// NewDeleteFolderCommand creates a new DeleteFolderCommand. With purge the
// subtree's questions are deleted too; otherwise they become unfiled.
func NewDeleteFolderCommand(bank ports.QuestionBank, folderID string, purge bool) *DeleteFolderCommand {
	return &DeleteFolderCommand{
		bank:     bank,
		FolderID: folderID,
		Purge:    purge,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteFolderCommand) Validate() error {
	return application.ValidateRequired("folderID", c.FolderID)
}

// Execute runs the delete command
func (c *DeleteFolderCommand) Execute(ctx context.Context) (*DeleteFolderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	path, err := c.bank.PathOf(c.FolderID)
	if err != nil {
		return nil, err
	}

	mode := ports.DeleteReassign
	if c.Purge {
		mode = ports.DeletePurge
	}
	res, err := c.bank.DeleteFolder(c.FolderID, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to delete %s: %w", c.FolderID, err)
	}

	msg := fmt.Sprintf("Deleted %s (%d folders", path, len(res.RemovedFolders))
	switch {
	case res.PurgedQuestions > 0:
		msg += fmt.Sprintf(", %d questions removed)", res.PurgedQuestions)
	case res.ReassignedQuestions > 0:
		msg += fmt.Sprintf(", %d questions moved to unfiled)", res.ReassignedQuestions)
	default:
		msg += ")"
	}
	return &DeleteFolderResult{
		DeleteFolderResult: *res,
		Path:               path,
		Message:            msg,
	}, nil
}

// DeleteQuestionResult contains the result of a question delete
type DeleteQuestionResult struct {
	DeletedID string
	Message   string
}

// DeleteQuestionCommand deletes a question by id
type DeleteQuestionCommand struct {
	bank       ports.QuestionBank
	QuestionID string
}

// NewDeleteQuestionCommand creates a new DeleteQuestionCommand
func NewDeleteQuestionCommand(bank ports.QuestionBank, questionID string) *DeleteQuestionCommand {
	return &DeleteQuestionCommand{bank: bank, QuestionID: questionID}
}

// Validate checks if the delete operation is valid
func (c *DeleteQuestionCommand) Validate() error {
	return application.ValidateRequired("questionID", c.QuestionID)
}

// Execute runs the delete command. Unknown ids are not an error.
func (c *DeleteQuestionCommand) Execute(ctx context.Context) (*DeleteQuestionResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.bank.DeleteQuestion(c.QuestionID); err != nil {
		return nil, fmt.Errorf("failed to delete %s: %w", c.QuestionID, err)
	}
	return &DeleteQuestionResult{
		DeletedID: c.QuestionID,
		Message:   fmt.Sprintf("Deleted question %s", c.QuestionID),
	}, nil
}
