package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"wordplay/internal/adapters/tui/styles"
	"wordplay/internal/domain"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, switchTo(SwitchToBrowserMsg{})
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	section := func(title string, bindings ...key.Binding) {
		b.WriteString(styles.InputLabel.Render(title))
		b.WriteString("\n")
		for _, k := range bindings {
			h := k.Help()
			b.WriteString(helpLine(h.Key, h.Desc))
		}
		b.WriteString("\n")
	}

	section("Navigation",
		BrowserKeys.Up, BrowserKeys.Down, BrowserKeys.PageUp, BrowserKeys.PageDown,
		BrowserKeys.Left, BrowserKeys.Right, BrowserKeys.Enter)
	section("Playing",
		BrowserKeys.Play, BrowserKeys.PlayAll, PlayerKeys.Reveal, PlayerKeys.Next)
	section("Folders",
		BrowserKeys.New, BrowserKeys.NewRoot, BrowserKeys.Rename, BrowserKeys.Move,
		BrowserKeys.Delete, BrowserKeys.CopyPath)
	section("Questions",
		BrowserKeys.Edit, BrowserKeys.Delete, BrowserKeys.Search)
	section("General", BrowserKeys.Help, BrowserKeys.Quit)

	b.WriteString(styles.InputLabel.Render("Question types"))
	b.WriteString("\n")
	for _, t := range domain.QuestionTypes {
		b.WriteString(styles.MutedText.Render("  " + padRight(t.Label(), 10) + string(t)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return NewViewBuilder().Title("Wordplay Help").Line(b.String()).String()
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 14)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}
