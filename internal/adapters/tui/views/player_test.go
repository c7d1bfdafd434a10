package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"wordplay/internal/domain"
)

func TestPlayerModel_StepsToFinish(t *testing.T) {
	questions := []domain.Question{
		{ID: "1", Type: domain.TypeSentenceBuilding, Sentence: "One", Translation: "Uno"},
		{ID: "2", Type: domain.TypeSentenceBuilding, Sentence: "Two", Translation: "Due"},
	}
	m := NewPlayerModel()
	if err := m.Start(SwitchToPlayerMsg{Title: "Numbers", Questions: questions}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(m.View(), "1 / 2") {
		t.Errorf("view should show progress:\n%s", m.View())
	}

	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	if !m.revealed {
		t.Error("space should reveal")
	}
	m.Update(runes("n"))
	if m.revealed || m.player.Position() != 2 {
		t.Errorf("next should advance and hide: position %d revealed %v", m.player.Position(), m.revealed)
	}
	m.Update(runes("n"))
	if !m.finished {
		t.Error("next on the last question should finish")
	}
	if !strings.Contains(m.View(), "2 of 2") {
		t.Errorf("finished view:\n%s", m.View())
	}
}

func TestPlayerModel_EmptyPlaylist(t *testing.T) {
	m := NewPlayerModel()
	if err := m.Start(SwitchToPlayerMsg{}); err == nil {
		t.Error("expected an error for an empty playlist")
	}
}
