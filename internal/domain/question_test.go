package domain

import (
	"testing"
)

func TestCountBlanks(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		want     int
	}{
		{name: "no blanks", sentence: "I go to school", want: 0},
		{name: "one blank", sentence: "I ___ to school", want: 1},
		{name: "two blanks", sentence: "I ___ to ___ every day", want: 2},
		{name: "long run counts once", sentence: "My ______ is here", want: 1},
		{name: "two underscores is not a blank", sentence: "a __ b", want: 0},
		{name: "adjacent to punctuation", sentence: "___, ___!", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountBlanks(tt.sentence); got != tt.want {
				t.Errorf("CountBlanks(%q) = %d, want %d", tt.sentence, got, tt.want)
			}
		})
	}
}

func TestReplaceBlanks(t *testing.T) {
	answers := []string{"go", "school"}
	got := ReplaceBlanks("I ___ to ______ today", func(i int, _ string) string {
		return answers[i]
	})
	if want := "I go to school today"; got != want {
		t.Errorf("ReplaceBlanks = %q, want %q", got, want)
	}
}

func TestParseQuestionType(t *testing.T) {
	for _, qt := range QuestionTypes {
		got, err := ParseQuestionType(string(qt))
		if err != nil {
			t.Errorf("ParseQuestionType(%q) unexpected error: %v", qt, err)
		}
		if got != qt {
			t.Errorf("ParseQuestionType(%q) = %q", qt, got)
		}
	}

	if _, err := ParseQuestionType("essay"); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestQuestionDraft_BuildDropsForeignFields(t *testing.T) {
	draft := QuestionDraft{
		Type:        TypeSpelling,
		Sentence:    "apple",
		Translation: "苹果",
		Word:        "apple",
		Meaning:     "苹果",
		Distractors: []string{"香蕉", "橙子", "葡萄"},
		Blanks:      []string{"stray"},
		Words:       []string{"stray"},
		Question:    "stray",
	}

	q := draft.Build("q1", 42)

	if q.ID != "q1" || q.CreatedAt != 42 {
		t.Errorf("identity not assigned: %+v", q)
	}
	if q.Blanks != nil || q.Words != nil || q.Question != "" {
		t.Errorf("expected non-spelling fields to be dropped, got %+v", q)
	}
	if len(q.Distractors) != 3 {
		t.Errorf("expected distractors to survive, got %v", q.Distractors)
	}

	draft.Distractors[0] = "changed"
	if q.Distractors[0] != "香蕉" {
		t.Error("built question shares slice with draft")
	}
}

func TestQuestionPatch_Apply(t *testing.T) {
	t.Run("merges fields of the same type", func(t *testing.T) {
		q := Question{
			Type:             TypeMatching,
			Sentence:         "Animals",
			Translation:      "动物",
			Words:            []string{"cat"},
			WordTranslations: []string{"猫"},
			FolderID:         "f1",
		}
		sentence := "Pets"
		QuestionPatch{Sentence: &sentence}.Apply(&q)

		if q.Sentence != "Pets" {
			t.Errorf("expected sentence Pets, got %s", q.Sentence)
		}
		if len(q.Words) != 1 || q.FolderID != "f1" {
			t.Errorf("untouched fields changed: %+v", q)
		}
	})

	t.Run("type change replaces type-specific fields", func(t *testing.T) {
		q := Question{
			Type:             TypeMatching,
			Sentence:         "Animals",
			Translation:      "动物",
			Words:            []string{"cat"},
			WordTranslations: []string{"猫"},
		}
		newType := TypeFillInBlank
		sentence := "A ___ says meow"
		QuestionPatch{
			Type:     &newType,
			Sentence: &sentence,
			Blanks:   []string{"cat"},
		}.Apply(&q)

		if q.Type != TypeFillInBlank {
			t.Fatalf("expected fill-in-blank, got %s", q.Type)
		}
		if q.Words != nil || q.WordTranslations != nil {
			t.Errorf("matching fields should be gone, got %v / %v", q.Words, q.WordTranslations)
		}
		if len(q.Blanks) != 1 || q.Blanks[0] != "cat" {
			t.Errorf("expected blanks [cat], got %v", q.Blanks)
		}
		if q.Translation != "动物" {
			t.Errorf("shared fields should be kept, got %q", q.Translation)
		}
	})

	t.Run("derived sentences follow their source fields", func(t *testing.T) {
		show := true
		dialogue := Question{
			Type: TypeDialogue, Sentence: "Hi / Hello", Translation: "你好",
			Question: "Hi", Answer: "Hello", ShowQuestion: &show,
		}
		answer := "Hey"
		QuestionPatch{Answer: &answer}.Apply(&dialogue)
		if dialogue.Sentence != "Hi / Hey" {
			t.Errorf("dialogue sentence = %q, want %q", dialogue.Sentence, "Hi / Hey")
		}

		// an unchanged sentence in a full-record patch still gets rebuilt
		question, same := "Yo", "Hi / Hey"
		QuestionPatch{Question: &question, Sentence: &same}.Apply(&dialogue)
		if dialogue.Sentence != "Yo / Hey" {
			t.Errorf("dialogue sentence = %q, want %q", dialogue.Sentence, "Yo / Hey")
		}

		custom := "Greeting"
		QuestionPatch{Answer: &answer, Sentence: &custom}.Apply(&dialogue)
		if dialogue.Sentence != "Greeting" {
			t.Errorf("explicit sentence should win, got %q", dialogue.Sentence)
		}

		spelling := Question{
			Type: TypeSpelling, Sentence: "cat", Translation: "猫",
			Word: "cat", Meaning: "猫", Distractors: []string{"狗", "鸟", "鱼"},
		}
		word := "dog"
		QuestionPatch{Word: &word}.Apply(&spelling)
		if spelling.Sentence != "dog" {
			t.Errorf("spelling sentence = %q, want dog", spelling.Sentence)
		}

		untouched := Question{Type: TypeSentenceBuilding, Sentence: "I run"}
		translation := "我跑"
		QuestionPatch{Translation: &translation}.Apply(&untouched)
		if untouched.Sentence != "I run" {
			t.Errorf("sentence-building sentence changed to %q", untouched.Sentence)
		}
	})

	t.Run("empty folder moves to unfiled", func(t *testing.T) {
		q := Question{Type: TypeSentenceBuilding, FolderID: "f1"}
		unfiled := ""
		QuestionPatch{FolderID: &unfiled}.Apply(&q)
		if !q.IsUnfiled() {
			t.Errorf("expected unfiled, got folder %q", q.FolderID)
		}
	})
}

func TestQuestion_RevealsQuestion(t *testing.T) {
	q := Question{Type: TypeDialogue}
	if !q.RevealsQuestion() {
		t.Error("absent showQuestion should reveal the question")
	}
	hide := false
	q.ShowQuestion = &hide
	if q.RevealsQuestion() {
		t.Error("showQuestion=false should reveal the answer")
	}
}
