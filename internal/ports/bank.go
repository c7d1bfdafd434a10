package ports

import "wordplay/internal/domain"

// DeleteMode selects what happens to the questions of a deleted folder subtree
type DeleteMode int

const (
	// DeleteReassign moves the subtree's questions to unfiled
	DeleteReassign DeleteMode = iota
	// DeletePurge removes the subtree's questions together with the folders
	DeletePurge
)

// DeleteFolderResult reports what a cascade delete touched
type DeleteFolderResult struct {
	RemovedFolders      []string
	ReassignedQuestions int
	PurgedQuestions     int
}

// QuestionBank is the data-access API the players and editors work against
type QuestionBank interface {
	// Folder tree
	ListFolders() (domain.Folders, error)
	GetFolder(id string) (*domain.Folder, error)
	ChildrenOf(parentID string) ([]domain.Folder, error)
	PathOf(folderID string) (string, error)
	IsLeaf(folderID string) (bool, error)
	AddFolder(name, color, parentID string) (*domain.Folder, error)
	UpdateFolder(id string, patch domain.FolderPatch) (*domain.Folder, error)
	ResolveOrCreate(path string) (*domain.Folder, error)
	DeleteFolder(id string, mode DeleteMode) (*DeleteFolderResult, error)

	// Questions
	ListQuestions() ([]domain.Question, error)
	GetQuestion(id string) (*domain.Question, error)
	AddQuestion(draft domain.QuestionDraft) (*domain.Question, error)
	UpdateQuestion(id string, patch domain.QuestionPatch) (*domain.Question, error)
	DeleteQuestion(id string) error
	QuestionsByFolder(folderID string) ([]domain.Question, error)

	// Aggregation
	AllQuestionsUnder(folderID string) ([]domain.Question, error)
	TotalQuestionCount(folderID string) (int, error)
	BuildTree() (*domain.TreeNode, error)

	// Batched mutation
	BeginTx() (BankTx, error)
}

// BankTx groups folder resolution and question inserts into one store write.
// The bank is locked until Commit or Rollback.
type BankTx interface {
	Folders() domain.Folders
	ResolveOrCreate(path string) (*domain.Folder, error)
	AddQuestion(draft domain.QuestionDraft) (*domain.Question, error)

	Commit() error
	Rollback() error
}
