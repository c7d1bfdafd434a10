package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wordplay/internal/adapters/tui/styles"
	"wordplay/internal/application/commands"
	"wordplay/internal/ports"
)

// SearchKeyMap defines key bindings for the search view
type SearchKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "show in tree"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

const maxSearchResults = 10

// SearchModel is the model for the search view
type SearchModel struct {
	ViewState
	bank    ports.QuestionBank
	input   textinput.Model
	results []commands.SearchResult
	cursor  int
}

// NewSearchModel creates a new search view model
func NewSearchModel(bank ports.QuestionBank) *SearchModel {
	input := textinput.New()
	input.Placeholder = "Search questions..."
	input.Focus()

	return &SearchModel{
		bank:  bank,
		input: input,
	}
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Reset resets the search view
func (m *SearchModel) Reset() {
	m.input.SetValue("")
	m.results = nil
	m.cursor = 0
	m.input.Focus()
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case searchResultsMsg:
		if msg.query == m.input.Value() {
			m.results = msg.results
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SearchKeys.Cancel):
			return m, switchTo(SwitchToBrowserMsg{})

		case key.Matches(msg, SearchKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			if m.cursor < min(len(m.results), maxSearchResults)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Select):
			if m.cursor >= 0 && m.cursor < len(m.results) {
				id := m.results[m.cursor].Question.ID
				return m, switchTo(SearchSelectMsg{QuestionID: id})
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if _, typed := msg.(tea.KeyMsg); !typed {
		return m, cmd
	}
	query := m.input.Value()
	if query == "" {
		m.results = nil
		return m, cmd
	}
	return m, tea.Batch(cmd, m.search(query))
}

func (m *SearchModel) search(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := commands.NewSearchCommand(m.bank, query).Execute(context.Background())
		if err != nil {
			return ActionErrMsg{err}
		}
		return searchResultsMsg{query: query, results: results}
	}
}

type searchResultsMsg struct {
	query   string
	results []commands.SearchResult
}

// SearchSelectMsg is sent when a search result is selected
type SearchSelectMsg struct {
	QuestionID string
}

// View renders the search view
func (m *SearchModel) View() string {
	v := NewViewBuilder().Title("Search")
	v.Line(styles.InputFocused.Render(m.input.View())).BlankLine()

	if len(m.results) == 0 {
		if m.input.Value() != "" {
			v.Muted("No results found")
		} else {
			v.Muted("Search sentences, translations, words and answers")
		}
	} else {
		v.Subtitle(fmt.Sprintf("%d results", len(m.results)))
		for i, result := range m.results[:min(len(m.results), maxSearchResults)] {
			v.Line(m.renderResult(result, i == m.cursor))
		}
		if len(m.results) > maxSearchResults {
			v.Muted(fmt.Sprintf("... and %d more", len(m.results)-maxSearchResults))
		}
	}

	v.BlankLine().Message(m.Message, m.MessageErr)
	v.Help(SearchKeys.Up, SearchKeys.Down, SearchKeys.Select, SearchKeys.Cancel)
	return v.String()
}

func (m *SearchModel) renderResult(result commands.SearchResult, selected bool) string {
	path := result.Path
	if path == "" {
		path = "unfiled"
	}
	text := fmt.Sprintf("[%s] %s", result.Question.Type.Label(), result.MatchedText)

	if selected {
		text = styles.NodeSelected.Render(text)
	}
	return text + styles.MutedText.Render("  "+path)
}
