package views

import "wordplay/internal/domain"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// Messages for view switching
type (
	SwitchToBrowserMsg struct{}
	SwitchToHelpMsg    struct{}
	SwitchToSearchMsg  struct{}

	// SwitchToFolderFormMsg opens the folder form. A nil Target creates a
	// folder under ParentID; otherwise Target is renamed.
	SwitchToFolderFormMsg struct {
		ParentID string
		Target   *domain.TreeNode
	}

	SwitchToMoveMsg struct {
		Source *domain.TreeNode
	}

	SwitchToDeleteMsg struct {
		Target *domain.TreeNode
	}

	// SwitchToPlayerMsg plays Questions; Title names the subtree
	SwitchToPlayerMsg struct {
		Title     string
		Questions []domain.Question
	}

	// EditQuestionMsg asks the app to open a question in the editor
	EditQuestionMsg struct {
		QuestionID string
	}
)

// ActionDoneMsg reports a finished mutation; the browser reloads and shows Message
type ActionDoneMsg struct {
	Message string
}

// ActionErrMsg reports a failed action in the current view
type ActionErrMsg struct {
	Err error
}

func nodeKindLabel(n *domain.TreeNode) string {
	if n == nil {
		return ""
	}
	if n.Kind == domain.NodeQuestion && n.Question != nil {
		return n.Question.Type.Label() + " question"
	}
	return n.Kind.String()
}
