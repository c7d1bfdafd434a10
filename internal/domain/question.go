package domain

import (
	"fmt"
	"regexp"
	"time"
)

// QuestionType is the variant tag of a practice item
type QuestionType string

const (
	TypeSentenceBuilding QuestionType = "sentence-building"
	TypeMatching         QuestionType = "matching"
	TypeSpelling         QuestionType = "spelling"
	TypeFillInBlank      QuestionType = "fill-in-blank"
	TypeDialogue         QuestionType = "dialogue"
)

// QuestionTypes lists every known variant in display order
var QuestionTypes = []QuestionType{
	TypeSentenceBuilding,
	TypeMatching,
	TypeSpelling,
	TypeFillInBlank,
	TypeDialogue,
}

// SpellingDistractors is the number of wrong meanings offered by a spelling item
const SpellingDistractors = 3

// IsValid reports whether t is one of the known variants
func (t QuestionType) IsValid() bool {
	switch t {
	case TypeSentenceBuilding, TypeMatching, TypeSpelling, TypeFillInBlank, TypeDialogue:
		return true
	default:
		return false
	}
}

// Label returns a short human-readable name for the type
func (t QuestionType) Label() string {
	switch t {
	case TypeSentenceBuilding:
		return "Sentence"
	case TypeMatching:
		return "Matching"
	case TypeSpelling:
		return "Spelling"
	case TypeFillInBlank:
		return "Fill-in"
	case TypeDialogue:
		return "Dialogue"
	default:
		return "Unknown"
	}
}

// ParseQuestionType converts s to a QuestionType, rejecting unknown variants
func ParseQuestionType(s string) (QuestionType, error) {
	t := QuestionType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown question type: %q", s)
	}
	return t, nil
}

// Question is one practice item. Field names match the persisted format.
type Question struct {
	ID          string       `json:"id"`
	Type        QuestionType `json:"type"`
	Sentence    string       `json:"sentence"`
	Translation string       `json:"translation"`

	// matching
	Words            []string `json:"words,omitempty"`
	WordTranslations []string `json:"wordTranslations,omitempty"`

	// spelling
	Word        string   `json:"word,omitempty"`
	Phonetic    string   `json:"phonetic,omitempty"`
	Meaning     string   `json:"meaning,omitempty"`
	Distractors []string `json:"distractors,omitempty"`

	// fill-in-blank
	Blanks []string `json:"blanks,omitempty"`

	// dialogue
	Question     string `json:"question,omitempty"`
	Answer       string `json:"answer,omitempty"`
	ShowQuestion *bool  `json:"showQuestion,omitempty"`

	FolderID  string `json:"folderId,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

// Created returns the creation time (CreatedAt is Unix milliseconds)
func (q *Question) Created() time.Time {
	return time.UnixMilli(q.CreatedAt)
}

// IsUnfiled reports whether the question sits in the virtual root bucket
func (q *Question) IsUnfiled() bool {
	return q.FolderID == ""
}

// RevealsQuestion reports which side of a dialogue is shown; absent means true
func (q *Question) RevealsQuestion() bool {
	return q.ShowQuestion == nil || *q.ShowQuestion
}

// StripForeignFields clears every type-specific field that does not belong
// to q.Type.
func (q *Question) StripForeignFields() {
	if q.Type != TypeMatching {
		q.Words = nil
		q.WordTranslations = nil
	}
	if q.Type != TypeSpelling {
		q.Word = ""
		q.Phonetic = ""
		q.Meaning = ""
		q.Distractors = nil
	}
	if q.Type != TypeFillInBlank {
		q.Blanks = nil
	}
	if q.Type != TypeDialogue {
		q.Question = ""
		q.Answer = ""
		q.ShowQuestion = nil
	}
}

// Clone returns a deep copy of q
func (q Question) Clone() Question {
	q.Words = cloneStrings(q.Words)
	q.WordTranslations = cloneStrings(q.WordTranslations)
	q.Distractors = cloneStrings(q.Distractors)
	q.Blanks = cloneStrings(q.Blanks)
	if q.ShowQuestion != nil {
		v := *q.ShowQuestion
		q.ShowQuestion = &v
	}
	return q
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

// QuestionDraft is the caller-supplied part of a new question; the bank
// assigns ID and CreatedAt.
type QuestionDraft struct {
	Type             QuestionType
	Sentence         string
	Translation      string
	Words            []string
	WordTranslations []string
	Word             string
	Phonetic         string
	Meaning          string
	Distractors      []string
	Blanks           []string
	Question         string
	Answer           string
	ShowQuestion     *bool
	FolderID         string
}

// Build turns the draft into a Question with the given identity
func (d QuestionDraft) Build(id string, createdAt int64) Question {
	q := Question{
		ID:               id,
		Type:             d.Type,
		Sentence:         d.Sentence,
		Translation:      d.Translation,
		Words:            d.Words,
		WordTranslations: d.WordTranslations,
		Word:             d.Word,
		Phonetic:         d.Phonetic,
		Meaning:          d.Meaning,
		Distractors:      d.Distractors,
		Blanks:           d.Blanks,
		Question:         d.Question,
		Answer:           d.Answer,
		ShowQuestion:     d.ShowQuestion,
		FolderID:         d.FolderID,
		CreatedAt:        createdAt,
	}
	q = q.Clone()
	q.StripForeignFields()
	return q
}

// QuestionPatch is a partial update. Nil fields are left untouched; a
// non-nil FolderID pointing at "" moves the question to unfiled.
type QuestionPatch struct {
	Type             *QuestionType
	Sentence         *string
	Translation      *string
	Words            []string
	WordTranslations []string
	Word             *string
	Phonetic         *string
	Meaning          *string
	Distractors      []string
	Blanks           []string
	Question         *string
	Answer           *string
	ShowQuestion     *bool
	FolderID         *string
}

// Apply merges the patch into q. When the type changes, the old
// type-specific fields are dropped before the patch is merged, so the
// result only carries fields of the new type. Dialogue and spelling
// sentences are rebuilt from their source fields unless the patch sets a
// new sentence.
func (p QuestionPatch) Apply(q *Question) {
	before := q.Sentence
	retyped := p.Type != nil && *p.Type != q.Type
	if retyped {
		q.Type = *p.Type
		q.StripForeignFields()
	}
	if p.Sentence != nil {
		q.Sentence = *p.Sentence
	}
	if p.Translation != nil {
		q.Translation = *p.Translation
	}
	if p.Words != nil {
		q.Words = cloneStrings(p.Words)
	}
	if p.WordTranslations != nil {
		q.WordTranslations = cloneStrings(p.WordTranslations)
	}
	if p.Word != nil {
		q.Word = *p.Word
	}
	if p.Phonetic != nil {
		q.Phonetic = *p.Phonetic
	}
	if p.Meaning != nil {
		q.Meaning = *p.Meaning
	}
	if p.Distractors != nil {
		q.Distractors = cloneStrings(p.Distractors)
	}
	if p.Blanks != nil {
		q.Blanks = cloneStrings(p.Blanks)
	}
	if p.Question != nil {
		q.Question = *p.Question
	}
	if p.Answer != nil {
		q.Answer = *p.Answer
	}
	if p.ShowQuestion != nil {
		v := *p.ShowQuestion
		q.ShowQuestion = &v
	}
	if p.FolderID != nil {
		q.FolderID = *p.FolderID
	}
	q.StripForeignFields()

	if p.Sentence != nil && *p.Sentence != before {
		return
	}
	switch q.Type {
	case TypeDialogue:
		if retyped || p.Question != nil || p.Answer != nil {
			q.Sentence = DialogueSentence(q.Question, q.Answer)
		}
	case TypeSpelling:
		if retyped || p.Word != nil {
			q.Sentence = q.Word
		}
	}
}

// blankMarker matches a blank: a run of three or more underscores
var blankMarker = regexp.MustCompile(`_{3,}`)

// CountBlanks returns the number of blank markers in sentence
func CountBlanks(sentence string) int {
	return len(blankMarker.FindAllStringIndex(sentence, -1))
}

// ReplaceBlanks rewrites each blank marker of sentence with fill(i, marker),
// i counting markers from 0
func ReplaceBlanks(sentence string, fill func(i int, marker string) string) string {
	i := 0
	return blankMarker.ReplaceAllStringFunc(sentence, func(marker string) string {
		out := fill(i, marker)
		i++
		return out
	})
}

// DialogueSentence is the display text synthesised for a dialogue item
func DialogueSentence(question, answer string) string {
	return fmt.Sprintf("%s / %s", question, answer)
}
