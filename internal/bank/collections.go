package bank

import (
	"encoding/json"
	"fmt"

	"wordplay/internal/domain"
	"wordplay/internal/ports"
)

// ParseError means a persisted collection exists but cannot be decoded.
// Corrupt data is never treated as an empty collection.
type ParseError struct {
	Collection ports.Collection
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse collection %s: %v", e.Collection, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func decodeFolders(data []byte) (domain.Folders, error) {
	if len(data) == 0 {
		return domain.Folders{}, nil
	}
	var folders domain.Folders
	if err := json.Unmarshal(data, &folders); err != nil {
		return nil, &ParseError{Collection: ports.CollectionFolders, Err: err}
	}
	if folders == nil {
		folders = domain.Folders{}
	}
	return folders, nil
}

// decodeQuestions also applies the schema upgrade: records written before
// question types existed are sentence-building items. migrated reports
// whether any record was upgraded and the collection must be written back.
func decodeQuestions(data []byte) (questions []domain.Question, migrated bool, err error) {
	if len(data) == 0 {
		return []domain.Question{}, false, nil
	}
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, false, &ParseError{Collection: ports.CollectionQuestions, Err: err}
	}
	if questions == nil {
		questions = []domain.Question{}
	}
	for i := range questions {
		if questions[i].Type == "" {
			questions[i].Type = domain.TypeSentenceBuilding
			migrated = true
		}
	}
	return questions, migrated, nil
}

func encodeFolders(folders domain.Folders) ([]byte, error) {
	if folders == nil {
		folders = domain.Folders{}
	}
	data, err := json.Marshal(folders)
	if err != nil {
		return nil, fmt.Errorf("failed to encode folders: %w", err)
	}
	return data, nil
}

func encodeQuestions(questions []domain.Question) ([]byte, error) {
	if questions == nil {
		questions = []domain.Question{}
	}
	data, err := json.Marshal(questions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode questions: %w", err)
	}
	return data, nil
}
