package importer

import (
	"fmt"

	"wordplay/internal/domain"
)

// Rule identifies one step of the record validation chain, in evaluation order
type Rule int

const (
	RuleRequired Rule = iota + 1
	RuleSentence
	RuleType
	RuleMatching
	RuleSpelling
	RuleFillInBlank
	RuleDialogue
)

func (r Rule) String() string {
	switch r {
	case RuleRequired:
		return "required"
	case RuleSentence:
		return "sentence"
	case RuleType:
		return "type"
	case RuleMatching:
		return "matching"
	case RuleSpelling:
		return "spelling"
	case RuleFillInBlank:
		return "fill-in-blank"
	case RuleDialogue:
		return "dialogue"
	default:
		return "unknown"
	}
}

// RecordError describes why a record was rejected. Index is 0-based.
type RecordError struct {
	Index   int
	Rule    Rule
	Field   string
	Message string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %s: %s", e.Index+1, e.Field, e.Message)
}

// Parsed is a record that passed validation
type Parsed struct {
	Index int
	Draft domain.QuestionDraft

	// FolderPath is the cleaned folderName ("A/B/C"), empty when absent
	FolderPath string

	// LegacyFolderID is a folderId supplied without a folderName
	LegacyFolderID string
}

// Parse runs the validation chain over one record. The first failing rule
// rejects the record with a *RecordError. Analyze and Commit both call
// Parse, so they always agree on which records are valid.
func Parse(index int, r Record) (*Parsed, error) {
	fail := func(rule Rule, field, format string, args ...any) (*Parsed, error) {
		return nil, &RecordError{Index: index, Rule: rule, Field: field, Message: fmt.Sprintf(format, args...)}
	}

	rawType, hasType := r.text("type")
	translation, hasTranslation := r.text("translation")
	if !hasType {
		return fail(RuleRequired, "type", "type is required")
	}
	if !hasTranslation {
		return fail(RuleRequired, "translation", "translation is required")
	}

	sentence, hasSentence := r.text("sentence")
	if rawType != string(domain.TypeDialogue) && !hasSentence {
		return fail(RuleSentence, "sentence", "sentence is required")
	}

	qt, err := domain.ParseQuestionType(rawType)
	if err != nil {
		return fail(RuleType, "type", "unknown question type %q", rawType)
	}

	draft := domain.QuestionDraft{
		Type:        qt,
		Sentence:    sentence,
		Translation: translation,
	}

	switch qt {
	case domain.TypeMatching:
		words, ok := r.list("words")
		if !ok {
			return fail(RuleMatching, "words", "words must be a list of strings")
		}
		wordTranslations, ok := r.list("wordTranslations")
		if !ok {
			return fail(RuleMatching, "wordTranslations", "wordTranslations must be a list of strings")
		}
		if len(words) != len(wordTranslations) {
			return fail(RuleMatching, "wordTranslations",
				"got %d translations for %d words", len(wordTranslations), len(words))
		}
		draft.Words = words
		draft.WordTranslations = wordTranslations

	case domain.TypeSpelling:
		word, ok := r.text("word")
		if !ok {
			return fail(RuleSpelling, "word", "word is required")
		}
		meaning, ok := r.text("meaning")
		if !ok {
			return fail(RuleSpelling, "meaning", "meaning is required")
		}
		distractors, ok := r.list("distractors")
		if !ok {
			return fail(RuleSpelling, "distractors", "distractors must be a list of strings")
		}
		if len(distractors) != domain.SpellingDistractors {
			return fail(RuleSpelling, "distractors",
				"need exactly %d distractors, got %d", domain.SpellingDistractors, len(distractors))
		}
		draft.Word = word
		draft.Meaning = meaning
		draft.Phonetic, _ = r.text("phonetic")
		draft.Distractors = distractors

	case domain.TypeFillInBlank:
		blanks, ok := r.list("blanks")
		if !ok || len(blanks) == 0 {
			return fail(RuleFillInBlank, "blanks", "blanks must be a non-empty list of strings")
		}
		if markers := domain.CountBlanks(sentence); markers != len(blanks) {
			return fail(RuleFillInBlank, "blanks",
				"sentence has %d blanks but %d answers were given", markers, len(blanks))
		}
		draft.Blanks = blanks

	case domain.TypeDialogue:
		question, ok := r.text("question")
		if !ok {
			return fail(RuleDialogue, "question", "question is required")
		}
		answer, ok := r.text("answer")
		if !ok {
			return fail(RuleDialogue, "answer", "answer is required")
		}
		draft.Question = question
		draft.Answer = answer
		show := r.boolOr("showQuestion", true)
		draft.ShowQuestion = &show
		if !hasSentence {
			draft.Sentence = domain.DialogueSentence(question, answer)
		}
	}

	p := &Parsed{Index: index, Draft: draft}
	if name, ok := r.text("folderName"); ok {
		p.FolderPath = domain.JoinPath(domain.SplitPath(name))
	}
	if p.FolderPath == "" {
		p.LegacyFolderID, _ = r.text("folderId")
	}
	return p, nil
}

// ParseAll splits records into valid parses and per-record errors, keeping input order
func ParseAll(records []Record) ([]*Parsed, []*RecordError) {
	var (
		valid  []*Parsed
		issues []*RecordError
	)
	for i, r := range records {
		p, err := Parse(i, r)
		if err != nil {
			issues = append(issues, err.(*RecordError))
			continue
		}
		valid = append(valid, p)
	}
	return valid, issues
}

// RecordFromQuestion renders a stored question as an import record, so
// edited questions can be checked with the same chain as imports
func RecordFromQuestion(q domain.Question) Record {
	r := Record{
		"type":        string(q.Type),
		"sentence":    q.Sentence,
		"translation": q.Translation,
		"word":        q.Word,
		"phonetic":    q.Phonetic,
		"meaning":     q.Meaning,
		"question":    q.Question,
		"answer":      q.Answer,
	}
	lists := map[string][]string{
		"words":            q.Words,
		"wordTranslations": q.WordTranslations,
		"distractors":      q.Distractors,
		"blanks":           q.Blanks,
	}
	for key, values := range lists {
		matchingList := q.Type == domain.TypeMatching && (key == "words" || key == "wordTranslations")
		if values == nil && !matchingList {
			continue
		}
		items := make([]any, len(values))
		for i, v := range values {
			items[i] = v
		}
		r[key] = items
	}
	if q.ShowQuestion != nil {
		r["showQuestion"] = *q.ShowQuestion
	}
	return r
}
