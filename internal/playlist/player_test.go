package playlist

import (
	"errors"
	"testing"

	"wordplay/internal/domain"
)

func questions(ids ...string) []domain.Question {
	qs := make([]domain.Question, 0, len(ids))
	for _, id := range ids {
		qs = append(qs, domain.Question{ID: id, Type: domain.TypeSentenceBuilding})
	}
	return qs
}

func TestPlayer_Idle(t *testing.T) {
	var p Player

	if p.Active() {
		t.Error("zero value should be idle")
	}
	if _, ok := p.Current(); ok {
		t.Error("idle player has no current question")
	}
	if p.Position() != 0 || p.Total() != 0 || p.HasNext() || p.Next() {
		t.Error("idle player should report no progress")
	}
}

func TestPlayer_StartPlaylist(t *testing.T) {
	var p Player
	if err := p.StartPlaylist(questions("a", "b", "c")); err != nil {
		t.Fatalf("StartPlaylist failed: %v", err)
	}

	var seen []string
	for {
		q, ok := p.Current()
		if !ok {
			t.Fatal("expected a current question")
		}
		seen = append(seen, q.ID)
		if p.Position() != len(seen) {
			t.Errorf("expected position %d, got %d", len(seen), p.Position())
		}
		if !p.Next() {
			break
		}
	}

	if len(seen) != 3 || seen[0] != "a" || seen[2] != "c" {
		t.Errorf("unexpected play order %v", seen)
	}
	if p.HasNext() {
		t.Error("last question should have no next")
	}
	if p.Position() != 3 {
		t.Errorf("position should stay on the last question, got %d", p.Position())
	}
	if !p.IsPlaylist() {
		t.Error("expected playlist mode")
	}
}

func TestPlayer_StartPlaylistEmpty(t *testing.T) {
	var p Player
	if err := p.StartPlaylist(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
	if p.Active() {
		t.Error("failed start should leave the player idle")
	}
}

func TestPlayer_StartGameAndReset(t *testing.T) {
	var p Player
	_ = p.StartPlaylist(questions("a", "b"))
	p.Next()

	p.StartGame(questions("solo")[0])
	if p.IsPlaylist() || p.Total() != 1 || p.Position() != 1 || p.HasNext() {
		t.Error("single game should replace the playlist")
	}

	p.Reset()
	if p.Active() {
		t.Error("Reset should return to idle")
	}
}

func TestPlayer_CopiesInput(t *testing.T) {
	qs := questions("a", "b")
	var p Player
	_ = p.StartPlaylist(qs)
	qs[0].ID = "changed"

	q, _ := p.Current()
	if q.ID != "a" {
		t.Errorf("player should not alias the caller's slice, got %s", q.ID)
	}
}
