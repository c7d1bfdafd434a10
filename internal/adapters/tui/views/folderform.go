package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"wordplay/internal/application/commands"
	"wordplay/internal/domain"
	"wordplay/internal/ports"
)

const (
	fieldName = iota
	fieldColor
)

// FolderFormModel creates a folder or renames and recolours an existing one
type FolderFormModel struct {
	ViewState
	bank     ports.QuestionBank
	form     *InputForm
	parentID string
	target   *domain.TreeNode
}

// NewFolderFormModel creates a new folder form
func NewFolderFormModel(bank ports.QuestionBank) *FolderFormModel {
	color := NewInputField("Colour", strings.Join(domain.Palette, ", "), 10)
	color.Hint = "(empty keeps the default)"
	return &FolderFormModel{
		bank: bank,
		form: NewInputForm(
			NewInputField("Name", "Folder name", 80),
			color,
		),
	}
}

// Open prepares the form for msg
func (m *FolderFormModel) Open(msg SwitchToFolderFormMsg) {
	m.ClearMessage()
	m.parentID = msg.ParentID
	m.target = msg.Target
	m.form.Reset()
	if m.target != nil {
		m.form.SetValue(fieldName, m.target.Name)
		m.form.SetValue(fieldColor, m.target.Color)
	}
}

// Init initializes the form
func (m *FolderFormModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the form
func (m *FolderFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case ActionErrMsg:
		m.SetMessage(msg.Err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, switchTo(SwitchToBrowserMsg{})
		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.submit
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *FolderFormModel) submit() tea.Msg {
	ctx := context.Background()
	name := m.form.Value(fieldName)
	color := m.form.Value(fieldColor)

	if m.target != nil {
		result, err := commands.NewRenameFolderCommand(m.bank, m.target.ID, name, color).Execute(ctx)
		if err != nil {
			return ActionErrMsg{err}
		}
		return ActionDoneMsg{Message: result.Message}
	}

	result, err := commands.NewCreateFolderCommand(m.bank, name, color, m.parentID).Execute(ctx)
	if err != nil {
		return ActionErrMsg{err}
	}
	return ActionDoneMsg{Message: result.Message}
}

// View renders the form
func (m *FolderFormModel) View() string {
	v := NewViewBuilder()
	if m.target != nil {
		v.Title("Rename Folder").Subtitle(SlashPath(m.target))
	} else {
		v.Title("New Folder")
		where := "at the root level"
		if m.parentID != "" {
			if path, err := m.bank.PathOf(m.parentID); err == nil {
				where = "under " + path
			}
		}
		v.Subtitle(where)
	}

	for i := range m.form.Fields {
		v.Line(m.form.RenderField(i))
	}
	v.BlankLine().Message(m.Message, m.MessageErr)

	submit := "create"
	if m.target != nil {
		submit = "save"
	}
	v.Line(m.form.RenderHelp(submit))
	return v.String()
}
