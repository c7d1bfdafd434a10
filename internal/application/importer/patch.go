package importer

import (
	"fmt"

	"wordplay/internal/domain"
)

// PatchFromRecord reads a partial question update from a record. Only keys
// present in the record end up in the patch; an empty folderId moves the
// question to unfiled. Rule checks happen later on the merged question.
func PatchFromRecord(r Record) (domain.QuestionPatch, error) {
	var p domain.QuestionPatch

	if raw, ok := r["type"]; ok {
		s, _ := raw.(string)
		t, err := domain.ParseQuestionType(s)
		if err != nil {
			return p, err
		}
		p.Type = &t
	}

	strs := map[string]**string{
		"sentence":    &p.Sentence,
		"translation": &p.Translation,
		"word":        &p.Word,
		"phonetic":    &p.Phonetic,
		"meaning":     &p.Meaning,
		"question":    &p.Question,
		"answer":      &p.Answer,
		"folderId":    &p.FolderID,
	}
	for key, dst := range strs {
		raw, ok := r[key]
		if !ok {
			continue
		}
		s, ok := raw.(string)
		if !ok {
			return p, fmt.Errorf("%s must be a string", key)
		}
		*dst = &s
	}

	lists := map[string]*[]string{
		"words":            &p.Words,
		"wordTranslations": &p.WordTranslations,
		"distractors":      &p.Distractors,
		"blanks":           &p.Blanks,
	}
	for key, dst := range lists {
		if _, ok := r[key]; !ok {
			continue
		}
		values, ok := r.list(key)
		if !ok {
			return p, fmt.Errorf("%s must be a list of strings", key)
		}
		*dst = values
	}

	if raw, ok := r["showQuestion"]; ok {
		b, ok := raw.(bool)
		if !ok {
			return p, fmt.Errorf("showQuestion must be a boolean")
		}
		p.ShowQuestion = &b
	}
	return p, nil
}
