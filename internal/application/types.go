package application

import "wordplay/internal/domain"

// Re-export domain types for use by adapters
type (
	Question      = domain.Question
	QuestionType  = domain.QuestionType
	QuestionDraft = domain.QuestionDraft
	QuestionPatch = domain.QuestionPatch
	Folder        = domain.Folder
	Folders       = domain.Folders
	FolderPatch   = domain.FolderPatch
	TreeNode      = domain.TreeNode
	NodeKind      = domain.NodeKind
)

const (
	NodeRoot     = domain.NodeRoot
	NodeFolder   = domain.NodeFolder
	NodeQuestion = domain.NodeQuestion
)

// ParseQuestionType parses a question type name
func ParseQuestionType(s string) (QuestionType, error) {
	return domain.ParseQuestionType(s)
}
