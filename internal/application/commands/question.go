package commands

import (
	"context"
	"errors"
	"fmt"

	"wordplay/internal/application"
	"wordplay/internal/application/importer"
	"wordplay/internal/domain"
	"wordplay/internal/ports"
)

// recordValidationError turns a record rule failure into a command
// validation error
func recordValidationError(err error) error {
	var recErr *importer.RecordError
	if errors.As(err, &recErr) {
		return &application.ValidationError{Field: recErr.Field, Message: recErr.Message}
	}
	return err
}

// AddQuestionResult contains the result of adding a question
type AddQuestionResult struct {
	Question *domain.Question
	Path     string
	Message  string
}

// AddQuestionCommand adds one question described by import-style fields.
// The record goes through the same validation chain as a bulk import, and
// its folderName (or folderId) places it in the tree.
type AddQuestionCommand struct {
	bank   ports.QuestionBank
	Record importer.Record

	parsed *importer.Parsed
}

// NewAddQuestionCommand creates a new AddQuestionCommand
func NewAddQuestionCommand(bank ports.QuestionBank, record importer.Record) *AddQuestionCommand {
	return &AddQuestionCommand{bank: bank, Record: record}
}

// Validate checks the record against the question rules
func (c *AddQuestionCommand) Validate() error {
	p, err := importer.Parse(0, c.Record)
	if err != nil {
		return recordValidationError(err)
	}
	c.parsed = p
	return nil
}

// Execute runs the add command. Folder resolution and the insert share
// one bank transaction.
func (c *AddQuestionCommand) Execute(ctx context.Context) (*AddQuestionResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	tx, err := c.bank.BeginTx()
	if err != nil {
		return nil, err
	}

	draft := c.parsed.Draft
	switch {
	case c.parsed.FolderPath != "":
		folder, err := tx.ResolveOrCreate(c.parsed.FolderPath)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to resolve folder: %w", err)
		}
		draft.FolderID = folder.ID
	case c.parsed.LegacyFolderID != "":
		if _, ok := tx.Folders().Find(c.parsed.LegacyFolderID); !ok {
			tx.Rollback()
			return nil, fmt.Errorf("folder %s: %w", c.parsed.LegacyFolderID, application.ErrNotFound)
		}
		draft.FolderID = c.parsed.LegacyFolderID
	}

	q, err := tx.AddQuestion(draft)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to add question: %w", err)
	}
	path := tx.Folders().PathOf(q.FolderID)
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to add question: %w", err)
	}

	where := path
	if where == "" {
		where = "unfiled"
	}
	return &AddQuestionResult{
		Question: q,
		Path:     path,
		Message:  fmt.Sprintf("Added %s question %s to %s", q.Type.Label(), q.ID, where),
	}, nil
}

// UpdateQuestionResult contains the result of a question update
type UpdateQuestionResult struct {
	Question *domain.Question
	Message  string
}

// UpdateQuestionCommand merges a patch into a question. The merged question
// must still satisfy the rules for its (possibly new) type.
type UpdateQuestionCommand struct {
	bank       ports.QuestionBank
	QuestionID string
	Patch      domain.QuestionPatch
}

// NewUpdateQuestionCommand creates a new UpdateQuestionCommand
func NewUpdateQuestionCommand(bank ports.QuestionBank, questionID string, patch domain.QuestionPatch) *UpdateQuestionCommand {
	return &UpdateQuestionCommand{bank: bank, QuestionID: questionID, Patch: patch}
}

// Validate checks the command input
func (c *UpdateQuestionCommand) Validate() error {
	if err := application.ValidateRequired("questionID", c.QuestionID); err != nil {
		return err
	}
	if c.Patch.Type != nil {
		return application.ValidateQuestionType("type", string(*c.Patch.Type), false)
	}
	return nil
}

// Execute runs the update command
func (c *UpdateQuestionCommand) Execute(ctx context.Context) (*UpdateQuestionResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	current, err := c.bank.GetQuestion(c.QuestionID)
	if err != nil {
		return nil, err
	}
	if c.Patch.FolderID != nil && *c.Patch.FolderID != "" {
		if _, err := c.bank.GetFolder(*c.Patch.FolderID); err != nil {
			return nil, err
		}
	}

	merged := current.Clone()
	c.Patch.Apply(&merged)
	if _, err := importer.Parse(0, importer.RecordFromQuestion(merged)); err != nil {
		return nil, recordValidationError(err)
	}

	updated, err := c.bank.UpdateQuestion(c.QuestionID, c.Patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update question: %w", err)
	}
	return &UpdateQuestionResult{
		Question: updated,
		Message:  fmt.Sprintf("Updated question %s", updated.ID),
	}, nil
}

// GetQuestionCommand loads one question with its folder path
type GetQuestionCommand struct {
	bank       ports.QuestionBank
	QuestionID string
}

// NewGetQuestionCommand creates a new GetQuestionCommand
func NewGetQuestionCommand(bank ports.QuestionBank, questionID string) *GetQuestionCommand {
	return &GetQuestionCommand{bank: bank, QuestionID: questionID}
}

// Execute runs the get command and returns the question and its folder path
func (c *GetQuestionCommand) Execute(ctx context.Context) (*domain.Question, string, error) {
	if err := application.ValidateRequired("questionID", c.QuestionID); err != nil {
		return nil, "", err
	}
	q, err := c.bank.GetQuestion(c.QuestionID)
	if err != nil {
		return nil, "", err
	}
	path, err := c.bank.PathOf(q.FolderID)
	if err != nil {
		return nil, "", err
	}
	return q, path, nil
}
