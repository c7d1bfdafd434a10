package views

import (
	"strings"
	"testing"

	"wordplay/internal/domain"
)

func TestRenderCard_HidesAnswersUntilRevealed(t *testing.T) {
	show := false
	tests := []struct {
		name   string
		q      domain.Question
		answer string
	}{
		{
			name:   "sentence building",
			q:      domain.Question{ID: "1", Type: domain.TypeSentenceBuilding, Sentence: "I like apples", Translation: "Mi piacciono le mele"},
			answer: "Sentence: I like apples",
		},
		{
			name:   "fill in blank",
			q:      domain.Question{ID: "2", Type: domain.TypeFillInBlank, Sentence: "She ___ home", Translation: "Lei va a casa", Blanks: []string{"goes"}},
			answer: "She goes home",
		},
		{
			name:   "dialogue shows answer side",
			q:      domain.Question{ID: "3", Type: domain.TypeDialogue, Question: "How are you", Answer: "Fine thanks", ShowQuestion: &show},
			answer: "Q: How are you",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hidden := RenderCard(tt.q, false)
			if strings.Contains(hidden, tt.answer) {
				t.Errorf("answer visible before reveal:\n%s", hidden)
			}
			shown := RenderCard(tt.q, true)
			if !strings.Contains(shown, tt.answer) {
				t.Errorf("answer %q missing after reveal:\n%s", tt.answer, shown)
			}
		})
	}
}

func TestRenderCard_SpellingListsEveryOption(t *testing.T) {
	q := domain.Question{
		ID: "s", Type: domain.TypeSpelling, Word: "apple", Meaning: "mela",
		Distractors: []string{"pera", "uva", "kiwi"},
	}
	card := RenderCard(q, false)
	for _, option := range []string{"mela", "pera", "uva", "kiwi"} {
		if !strings.Contains(card, option) {
			t.Errorf("option %q missing:\n%s", option, card)
		}
	}
}

func TestShuffledIsStable(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	first := shuffled("seed", items)
	second := shuffled("seed", items)
	if strings.Join(first, "") != strings.Join(second, "") {
		t.Errorf("same seed gave %v and %v", first, second)
	}
	if strings.Join(items, "") != "abcde" {
		t.Error("shuffled must not modify its input")
	}
}

func TestRenderTreeNode(t *testing.T) {
	root := &domain.TreeNode{Kind: domain.NodeRoot}
	folder := &domain.TreeNode{Kind: domain.NodeFolder, Name: "Food", Color: "blue", Total: 3, Parent: root}
	q := domain.Question{ID: "q", Type: domain.TypeSpelling, Sentence: "apple"}
	leaf := &domain.TreeNode{Kind: domain.NodeQuestion, Name: "apple", Question: &q, Parent: folder}

	tests := []struct {
		name     string
		node     *domain.TreeNode
		selected bool
		want     []string
	}{
		{"collapsed folder", folder, false, []string{"▶", "●", "Food", "(3)"}},
		{"selected folder", folder, true, []string{"Food", "(3)"}},
		{"question", leaf, false, []string{"  apple", "[" + domain.TypeSpelling.Label() + "]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderTreeNode(tt.node, tt.selected)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("row %q missing %q", got, want)
				}
			}
		})
	}

	folder.Expand()
	if got := RenderTreeNode(folder, false); !strings.Contains(got, "▼") {
		t.Errorf("expanded folder row %q should use the open marker", got)
	}
}
