package commands

import (
	"context"

	"wordplay/internal/domain"
	"wordplay/internal/ports"
)

// FolderEntry is a folder with its rendered path and counts
type FolderEntry struct {
	domain.Folder
	Path   string
	Direct int
	Total  int
}

// ListFoldersCommand lists the children of a folder ("" for the root level),
// or the whole tree when Recursive is set
type ListFoldersCommand struct {
	bank      ports.QuestionBank
	ParentID  string
	Recursive bool
}

// NewListFoldersCommand creates a new ListFoldersCommand
func NewListFoldersCommand(bank ports.QuestionBank, parentID string, recursive bool) *ListFoldersCommand {
	return &ListFoldersCommand{bank: bank, ParentID: parentID, Recursive: recursive}
}

// Execute runs the list folders command. Recursive listings are pre-order.
func (c *ListFoldersCommand) Execute(ctx context.Context) ([]FolderEntry, error) {
	all, err := c.bank.ListFolders()
	if err != nil {
		return nil, err
	}
	questions, err := c.bank.ListQuestions()
	if err != nil {
		return nil, err
	}

	direct := make(map[string]int)
	for _, q := range questions {
		direct[q.FolderID]++
	}
	var total func(id string) int
	total = func(id string) int {
		n := direct[id]
		for _, child := range all.ChildrenOf(id) {
			n += total(child.ID)
		}
		return n
	}

	var entries []FolderEntry
	var visit func(parentID string)
	visit = func(parentID string) {
		for _, f := range all.ChildrenOf(parentID) {
			entries = append(entries, FolderEntry{
				Folder: f,
				Path:   all.PathOf(f.ID),
				Direct: direct[f.ID],
				Total:  total(f.ID),
			})
			if c.Recursive {
				visit(f.ID)
			}
		}
	}
	visit(c.ParentID)
	return entries, nil
}

// ListQuestionsCommand lists the questions of one folder ("" for unfiled),
// the questions of a whole subtree, or every question
type ListQuestionsCommand struct {
	bank      ports.QuestionBank
	FolderID  string
	Recursive bool
	All       bool
	Type      domain.QuestionType
}

// NewListQuestionsCommand creates a new ListQuestionsCommand
func NewListQuestionsCommand(bank ports.QuestionBank, folderID string, recursive bool) *ListQuestionsCommand {
	return &ListQuestionsCommand{bank: bank, FolderID: folderID, Recursive: recursive}
}

// Execute runs the list questions command
func (c *ListQuestionsCommand) Execute(ctx context.Context) ([]domain.Question, error) {
	var (
		questions []domain.Question
		err       error
	)
	switch {
	case c.All:
		questions, err = c.bank.ListQuestions()
	case c.Recursive:
		questions, err = c.bank.AllQuestionsUnder(c.FolderID)
	default:
		questions, err = c.bank.QuestionsByFolder(c.FolderID)
	}
	if err != nil {
		return nil, err
	}
	if c.Type == "" {
		return questions, nil
	}

	filtered := questions[:0:0]
	for _, q := range questions {
		if q.Type == c.Type {
			filtered = append(filtered, q)
		}
	}
	return filtered, nil
}

// BuildTreeCommand builds the complete tree structure
type BuildTreeCommand struct {
	bank ports.QuestionBank
}

// NewBuildTreeCommand creates a new BuildTreeCommand
func NewBuildTreeCommand(bank ports.QuestionBank) *BuildTreeCommand {
	return &BuildTreeCommand{bank: bank}
}

// Execute runs the build tree command
func (c *BuildTreeCommand) Execute(ctx context.Context) (*domain.TreeNode, error) {
	return c.bank.BuildTree()
}
