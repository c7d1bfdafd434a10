package commands

import (
	"context"
	"fmt"
	"log/slog"

	"wordplay/internal/application"
	"wordplay/internal/application/importer"
	"wordplay/internal/ports"
)

// ImportCommand decodes an import document and either previews it or
// commits it to the bank
type ImportCommand struct {
	bank   ports.QuestionBank
	logger *slog.Logger
	Data   []byte
	Format importer.Format

	records []importer.Record
}

// NewImportCommand creates a new ImportCommand
func NewImportCommand(bank ports.QuestionBank, logger *slog.Logger, data []byte, format importer.Format) *ImportCommand {
	return &ImportCommand{bank: bank, logger: logger, Data: data, Format: format}
}

// Validate decodes the document
func (c *ImportCommand) Validate() error {
	if len(c.Data) == 0 {
		return &application.ValidationError{Field: "document", Message: "document is empty"}
	}
	records, err := importer.Decode(c.Data, c.Format)
	if err != nil {
		return &application.ValidationError{Field: "document", Message: err.Error()}
	}
	c.records = records
	return nil
}

// Preview analyses the document without writing anything
func (c *ImportCommand) Preview(ctx context.Context) (*importer.Preview, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return importer.New(c.bank, c.logger).Analyze(c.records)
}

// Execute commits the document. Invalid records are skipped and reported
// in the result rather than failing the import.
func (c *ImportCommand) Execute(ctx context.Context) (*importer.Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	result, err := importer.New(c.bank, c.logger).Commit(ctx, c.records)
	if err != nil {
		return nil, fmt.Errorf("import failed: %w", err)
	}
	return result, nil
}
