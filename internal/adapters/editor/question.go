package editor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wordplay/internal/application/importer"
	"wordplay/internal/domain"
)

const fileHeader = `# Edit the question and save. Field names are the import record fields.
# Changing the type drops the fields of the old type.
`

// QuestionFile is a question written to a temporary YAML file for editing
type QuestionFile struct {
	QuestionID string
	Path       string
}

// WriteQuestionFile renders q as a YAML record in a new temporary file.
// Empty fields are left out.
func WriteQuestionFile(q domain.Question) (*QuestionFile, error) {
	record := importer.RecordFromQuestion(q)
	for k, v := range record {
		if s, ok := v.(string); ok && s == "" {
			delete(record, k)
		}
	}

	data, err := yaml.Marshal(map[string]any(record))
	if err != nil {
		return nil, fmt.Errorf("failed to render question: %w", err)
	}

	f, err := os.CreateTemp("", "wordplay-*.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(fileHeader); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}

	return &QuestionFile{QuestionID: q.ID, Path: f.Name()}, nil
}

// Read parses the edited file back into a record
func (f *QuestionFile) Read() (importer.Record, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.Path, err)
	}

	var record map[string]any
	if err := yaml.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", f.Path, err)
	}
	if record == nil {
		return nil, fmt.Errorf("%s is empty", f.Path)
	}
	return importer.Record(record), nil
}

// Remove deletes the temporary file
func (f *QuestionFile) Remove() error {
	return os.Remove(f.Path)
}
