package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"wordplay/internal/adapters/tui/styles"
	"wordplay/internal/application/commands"
	"wordplay/internal/domain"
	"wordplay/internal/ports"
)

var purgeKey = key.NewBinding(
	key.WithKeys("p"),
	key.WithHelp("p", "toggle purge"),
)

// DeleteModel is the model for the delete confirmation view. Deleting a
// folder removes its whole subtree; its questions move to unfiled unless
// purge is toggled on.
type DeleteModel struct {
	ConfirmationModel
	bank  ports.QuestionBank
	purge bool
	leaf  bool
}

// NewDeleteModel creates a new delete view model
func NewDeleteModel(bank ports.QuestionBank) *DeleteModel {
	return &DeleteModel{
		ConfirmationModel: NewConfirmationModel(),
		bank:              bank,
	}
}

// SetTarget sets the node to delete and resets purge
func (m *DeleteModel) SetTarget(node *domain.TreeNode) {
	m.ConfirmationModel.SetTarget(node)
	m.purge = false
	m.leaf = true
	if m.isFolder() {
		leaf, err := m.bank.IsLeaf(node.ID)
		if err != nil {
			m.SetMessage(err.Error(), true)
		}
		m.leaf = leaf
	}
}

// Init initializes the delete view
func (m *DeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the delete view
func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case ActionErrMsg:
		m.SetMessage(msg.Err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, purgeKey) && m.isFolder() {
			m.purge = !m.purge
			return m, nil
		}
		handled, cmd := m.HandleKeyMsg(msg,
			m.doDelete,
			func() tea.Msg { return SwitchToBrowserMsg{} },
		)
		if handled {
			return m, cmd
		}
	}

	return m, nil
}

func (m *DeleteModel) isFolder() bool {
	return m.TargetNode != nil && m.TargetNode.Kind == domain.NodeFolder
}

func (m *DeleteModel) doDelete() tea.Msg {
	if m.TargetNode == nil {
		return ActionErrMsg{fmt.Errorf("no target selected")}
	}
	ctx := context.Background()

	if m.isFolder() {
		result, err := commands.NewDeleteFolderCommand(m.bank, m.TargetNode.ID, m.purge).Execute(ctx)
		if err != nil {
			return ActionErrMsg{err}
		}
		return ActionDoneMsg{Message: result.Message}
	}

	result, err := commands.NewDeleteQuestionCommand(m.bank, m.TargetNode.ID).Execute(ctx)
	if err != nil {
		return ActionErrMsg{err}
	}
	return ActionDoneMsg{Message: result.Message}
}

// View renders the delete confirmation view
func (m *DeleteModel) View() string {
	v := NewViewBuilder().Title("Delete Confirmation")
	v.Line(styles.ErrorMsg.Render("This action cannot be undone!")).BlankLine()
	v.Line(RenderTargetInfo(m.TargetNode, "Delete")).BlankLine()

	if m.isFolder() {
		scope := "The folder"
		if !m.leaf {
			scope = "The folder and all its subfolders"
		}
		if m.purge {
			v.Line(styles.ErrorMsg.Render(fmt.Sprintf("  %s will be deleted with %d questions.", scope, m.TargetNode.Total)))
		} else {
			v.Muted(fmt.Sprintf("  %s will be deleted; %d questions move to unfiled.", scope, m.TargetNode.Total))
		}
		v.Line("  " + RenderKeyHelp(purgeKey)).BlankLine()
	}

	v.Message(m.Message, m.MessageErr)
	v.Line(RenderConfirmPrompt("Are you sure?"))
	return v.String()
}
