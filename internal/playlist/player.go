// Package playlist steps through a sequence of questions, one game at a time.
package playlist

import (
	"errors"

	"wordplay/internal/domain"
)

// ErrEmpty is returned when a playlist is started with no questions
var ErrEmpty = errors.New("playlist has no questions")

// Player holds the running sequence. The zero value is idle.
type Player struct {
	questions []domain.Question
	index     int
	single    bool
}

// StartGame plays a single question
func (p *Player) StartGame(q domain.Question) {
	p.questions = []domain.Question{q}
	p.index = 0
	p.single = true
}

// StartPlaylist plays questions in order, starting with the first
func (p *Player) StartPlaylist(questions []domain.Question) error {
	if len(questions) == 0 {
		return ErrEmpty
	}
	p.questions = append([]domain.Question(nil), questions...)
	p.index = 0
	p.single = false
	return nil
}

// Active reports whether a game or playlist is running
func (p *Player) Active() bool {
	return len(p.questions) > 0
}

// IsPlaylist reports whether the running sequence came from StartPlaylist
func (p *Player) IsPlaylist() bool {
	return p.Active() && !p.single
}

// Current returns the question being played
func (p *Player) Current() (domain.Question, bool) {
	if !p.Active() {
		return domain.Question{}, false
	}
	return p.questions[p.index], true
}

// HasNext reports whether another question follows the current one
func (p *Player) HasNext() bool {
	return p.Active() && p.index < len(p.questions)-1
}

// Next advances to the following question. It returns false at the end of
// the sequence, leaving the position unchanged.
func (p *Player) Next() bool {
	if !p.HasNext() {
		return false
	}
	p.index++
	return true
}

// Position returns the 1-based position of the current question, 0 when idle
func (p *Player) Position() int {
	if !p.Active() {
		return 0
	}
	return p.index + 1
}

// Total returns the length of the running sequence
func (p *Player) Total() int {
	return len(p.questions)
}

// Reset returns to the idle state
func (p *Player) Reset() {
	p.questions = nil
	p.index = 0
	p.single = false
}
