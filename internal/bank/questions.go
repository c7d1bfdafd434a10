package bank

import (
	"fmt"
	"slices"

	"wordplay/internal/domain"
)

// ListQuestions returns every question in persisted order
func (b *Bank) ListQuestions() ([]domain.Question, error) {
	var questions []domain.Question
	err := b.read(func(s *state) error {
		questions = s.questions
		return nil
	})
	return questions, err
}

// GetQuestion returns the question with the given id
func (b *Bank) GetQuestion(id string) (*domain.Question, error) {
	var question *domain.Question
	err := b.read(func(s *state) error {
		i := s.questionIndex(id)
		if i < 0 {
			return fmt.Errorf("question %s: %w", id, domain.ErrNotFound)
		}
		q := s.questions[i]
		question = &q
		return nil
	})
	return question, err
}

// AddQuestion assigns id and createdAt, appends and persists. Field
// consistency is the caller's responsibility.
func (b *Bank) AddQuestion(draft domain.QuestionDraft) (*domain.Question, error) {
	var question domain.Question
	err := b.write(func(s *state) error {
		question = b.appendQuestion(s, draft)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (b *Bank) appendQuestion(s *state, draft domain.QuestionDraft) domain.Question {
	q := draft.Build(b.newID(), b.timestamp())
	s.questions = append(s.questions, q)
	return q
}

// UpdateQuestion merges patch into the question
func (b *Bank) UpdateQuestion(id string, patch domain.QuestionPatch) (*domain.Question, error) {
	var updated domain.Question
	err := b.write(func(s *state) error {
		i := s.questionIndex(id)
		if i < 0 {
			return fmt.Errorf("question %s: %w", id, domain.ErrNotFound)
		}
		patch.Apply(&s.questions[i])
		updated = s.questions[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteQuestion removes the question; an unknown id is a no-op
func (b *Bank) DeleteQuestion(id string) error {
	return b.write(func(s *state) error {
		s.questions = slices.DeleteFunc(s.questions, func(q domain.Question) bool {
			return q.ID == id
		})
		return nil
	})
}

// QuestionsByFolder returns questions filed directly in folderID; "" selects unfiled
func (b *Bank) QuestionsByFolder(folderID string) ([]domain.Question, error) {
	var questions []domain.Question
	err := b.read(func(s *state) error {
		questions = s.questionsIn(folderID)
		return nil
	})
	return questions, err
}

func (s *state) questionIndex(id string) int {
	return slices.IndexFunc(s.questions, func(q domain.Question) bool {
		return q.ID == id
	})
}

func (s *state) questionsIn(folderID string) []domain.Question {
	var out []domain.Question
	for _, q := range s.questions {
		if q.FolderID == folderID {
			out = append(out, q)
		}
	}
	return out
}
