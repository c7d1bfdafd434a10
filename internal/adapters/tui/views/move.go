package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wordplay/internal/adapters/tui/styles"
	"wordplay/internal/application"
	"wordplay/internal/application/commands"
	"wordplay/internal/domain"
	"wordplay/internal/ports"
)

// MoveKeyMap defines key bindings for the move view
type MoveKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

var MoveKeys = MoveKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "move"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// MoveModel re-parents a folder. The destination is typed as an existing
// folder path; an empty path means the root level.
type MoveModel struct {
	ViewState
	bank       ports.QuestionBank
	sourceNode *domain.TreeNode
	destInput  textinput.Model
}

// NewMoveModel creates a new move view model
func NewMoveModel(bank ports.QuestionBank) *MoveModel {
	destInput := textinput.New()
	destInput.Placeholder = "Grammar/Tenses (empty for root level)"
	destInput.CharLimit = 200

	return &MoveModel{
		bank:      bank,
		destInput: destInput,
	}
}

// SetSource sets the folder to move
func (m *MoveModel) SetSource(node *domain.TreeNode) {
	m.sourceNode = node
	m.ClearMessage()
	m.destInput.SetValue("")
	m.destInput.Focus()
}

// Init initializes the move view
func (m *MoveModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the move view
func (m *MoveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case ActionErrMsg:
		m.SetMessage(msg.Err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, MoveKeys.Cancel):
			return m, switchTo(SwitchToBrowserMsg{})
		case key.Matches(msg, MoveKeys.Submit):
			return m, m.doMove
		}
	}

	var cmd tea.Cmd
	m.destInput, cmd = m.destInput.Update(msg)
	return m, cmd
}

func (m *MoveModel) doMove() tea.Msg {
	if m.sourceNode == nil {
		return ActionErrMsg{fmt.Errorf("no folder selected")}
	}

	destID, err := m.lookupDestination(m.destInput.Value())
	if err != nil {
		return ActionErrMsg{err}
	}

	result, err := commands.NewMoveFolderCommand(m.bank, m.sourceNode.ID, destID).Execute(context.Background())
	if err != nil {
		return ActionErrMsg{err}
	}
	return ActionDoneMsg{Message: result.Message}
}

// lookupDestination finds an existing folder by path without creating it
func (m *MoveModel) lookupDestination(path string) (string, error) {
	segments := domain.SplitPath(path)
	if len(segments) == 0 {
		return "", nil
	}
	folders, err := m.bank.ListFolders()
	if err != nil {
		return "", err
	}
	folder, matched := folders.Walk(segments)
	if matched != len(segments) {
		return "", fmt.Errorf("folder %q: %w", path, application.ErrNotFound)
	}
	return folder.ID, nil
}

// View renders the move view
func (m *MoveModel) View() string {
	v := NewViewBuilder().Title("Move Folder")
	if m.sourceNode != nil {
		v.Field("Moving", SlashPath(m.sourceNode))
		v.Muted(fmt.Sprintf("  with %d questions in its subtree", m.sourceNode.Total))
		v.BlankLine()
	}

	v.Line(styles.InputLabel.Render("Destination"))
	v.Line(styles.InputFocused.Render(m.destInput.View()))
	v.BlankLine().Message(m.Message, m.MessageErr)
	v.Help(MoveKeys.Submit, MoveKeys.Cancel)
	return v.String()
}
