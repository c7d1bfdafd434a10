package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"wordplay/internal/adapters/tui/styles"
	"wordplay/internal/playlist"
)

// PlayerKeyMap defines key bindings for the player view
type PlayerKeyMap struct {
	Reveal key.Binding
	Next   key.Binding
	Back   key.Binding
}

var PlayerKeys = PlayerKeyMap{
	Reveal: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "reveal"),
	),
	Next: key.NewBinding(
		key.WithKeys("n", "right", "enter"),
		key.WithHelp("n/→", "next"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "back"),
	),
}

// PlayerModel steps through a playlist, one question card at a time
type PlayerModel struct {
	ViewState
	player   playlist.Player
	title    string
	revealed bool
	finished bool
}

// NewPlayerModel creates a new player view model
func NewPlayerModel() *PlayerModel {
	return &PlayerModel{}
}

// Start begins playing msg's questions. A single question runs as a game.
func (m *PlayerModel) Start(msg SwitchToPlayerMsg) error {
	m.title = msg.Title
	m.revealed = false
	m.finished = false
	if len(msg.Questions) == 1 {
		m.player.StartGame(msg.Questions[0])
		return nil
	}
	return m.player.StartPlaylist(msg.Questions)
}

// Init initializes the player
func (m *PlayerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the player
func (m *PlayerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, PlayerKeys.Back):
			m.player.Reset()
			return m, switchTo(SwitchToBrowserMsg{})

		case key.Matches(msg, PlayerKeys.Reveal):
			m.revealed = !m.revealed

		case key.Matches(msg, PlayerKeys.Next):
			if m.player.Next() {
				m.revealed = false
			} else {
				m.finished = true
			}
		}
	}
	return m, nil
}

// View renders the current card
func (m *PlayerModel) View() string {
	v := NewViewBuilder().Title(m.title)

	if m.finished {
		v.Line(styles.Success.Render(fmt.Sprintf("Finished! %d of %d questions played.", m.player.Position(), m.player.Total())))
		v.BlankLine().Help(PlayerKeys.Back)
		return v.String()
	}

	q, ok := m.player.Current()
	if !ok {
		v.Muted("Nothing to play")
		v.BlankLine().Help(PlayerKeys.Back)
		return v.String()
	}

	progress := q.Type.Label()
	if m.player.IsPlaylist() {
		progress = fmt.Sprintf("%d / %d  %s", m.player.Position(), m.player.Total(), progress)
	}
	v.Subtitle(progress)
	v.Card(q, m.revealed)
	v.BlankLine()

	bindings := []key.Binding{PlayerKeys.Reveal}
	if m.player.HasNext() {
		bindings = append(bindings, PlayerKeys.Next)
	} else {
		bindings = append(bindings, key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "finish")))
	}
	bindings = append(bindings, PlayerKeys.Back)
	v.Help(bindings...)
	return v.String()
}
