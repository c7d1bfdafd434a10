package bank

import (
	"wordplay/internal/domain"
)

// AllQuestionsUnder returns the playback sequence for a subtree: the
// folder's own questions, then each child folder's sequence, depth-first
// in child order. "" starts at the unfiled bucket and covers the whole bank.
func (b *Bank) AllQuestionsUnder(folderID string) ([]domain.Question, error) {
	var questions []domain.Question
	err := b.read(func(s *state) error {
		questions = s.allUnder(folderID)
		return nil
	})
	return questions, err
}

func (s *state) allUnder(folderID string) []domain.Question {
	questions := s.questionsIn(folderID)
	for _, child := range s.folders.ChildrenOf(folderID) {
		questions = append(questions, s.allUnder(child.ID)...)
	}
	return questions
}

// TotalQuestionCount counts the questions in a folder and all of its descendants
func (b *Bank) TotalQuestionCount(folderID string) (int, error) {
	var total int
	err := b.read(func(s *state) error {
		total = s.countUnder(folderID)
		return nil
	})
	return total, err
}

func (s *state) countUnder(folderID string) int {
	total := len(s.questionsIn(folderID))
	for _, child := range s.folders.ChildrenOf(folderID) {
		total += s.countUnder(child.ID)
	}
	return total
}

// BuildTree returns the whole bank as a navigable tree
func (b *Bank) BuildTree() (*domain.TreeNode, error) {
	var root *domain.TreeNode
	err := b.read(func(s *state) error {
		root = domain.BuildTree(s.folders, s.questions)
		return nil
	})
	return root, err
}
