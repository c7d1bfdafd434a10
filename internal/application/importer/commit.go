package importer

import (
	"context"
	"fmt"
	"log/slog"

	"wordplay/internal/domain"
	"wordplay/internal/ports"
)

// Result reports what a commit applied
type Result struct {
	Added          int
	FoldersCreated int
	Questions      []domain.Question
	Issues         []*RecordError
}

// Message is the one-line outcome shown to the user
func (r *Result) Message() string {
	msg := fmt.Sprintf("Imported %d questions", r.Added)
	if r.FoldersCreated > 0 {
		msg += fmt.Sprintf(", created %d folders", r.FoldersCreated)
	}
	if len(r.Issues) > 0 {
		msg += fmt.Sprintf(", skipped %d invalid records", len(r.Issues))
	}
	return msg
}

// Importer applies import documents to a question bank
type Importer struct {
	bank   ports.QuestionBank
	logger *slog.Logger
}

// New creates an Importer. A nil logger uses slog.Default().
func New(bank ports.QuestionBank, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{bank: bank, logger: logger}
}

// Analyze previews records against the bank's current folders
func (im *Importer) Analyze(records []Record) (*Preview, error) {
	folders, err := im.bank.ListFolders()
	if err != nil {
		return nil, fmt.Errorf("failed to load folders: %w", err)
	}
	return Analyze(records, folders), nil
}

// Commit re-validates the original records and adds every valid one, in
// one bank transaction and one store write. Invalid records are skipped
// and reported. Folders created is the folder count after minus before.
func (im *Importer) Commit(ctx context.Context, records []Record) (*Result, error) {
	valid, issues := ParseAll(records)

	tx, err := im.bank.BeginTx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin import: %w", err)
	}

	before := len(tx.Folders())
	result := &Result{Issues: issues}

	for _, p := range valid {
		if err := ctx.Err(); err != nil {
			tx.Rollback()
			return nil, err
		}

		draft := p.Draft
		switch {
		case p.FolderPath != "":
			folder, err := tx.ResolveOrCreate(p.FolderPath)
			if err != nil {
				tx.Rollback()
				return nil, fmt.Errorf("record %d: failed to resolve folder %q: %w", p.Index+1, p.FolderPath, err)
			}
			draft.FolderID = folder.ID
		case p.LegacyFolderID != "":
			// unknown legacy ids fall back to unfiled
			if _, ok := tx.Folders().Find(p.LegacyFolderID); ok {
				draft.FolderID = p.LegacyFolderID
			} else {
				im.logger.Warn("import record references unknown folder",
					"record", p.Index+1, "folder_id", p.LegacyFolderID)
			}
		}

		q, err := tx.AddQuestion(draft)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("record %d: failed to add question: %w", p.Index+1, err)
		}
		result.Questions = append(result.Questions, *q)
	}

	result.Added = len(result.Questions)
	result.FoldersCreated = len(tx.Folders()) - before

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit import: %w", err)
	}

	im.logger.Info("import committed",
		"records", len(records),
		"added", result.Added,
		"skipped", len(result.Issues),
		"folders_created", result.FoldersCreated,
	)
	return result, nil
}
