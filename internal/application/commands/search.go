package commands

import (
	"context"
	"slices"
	"strings"
	"unicode/utf8"

	"wordplay/internal/domain"
	"wordplay/internal/ports"
)

// SearchResult is a question matched by a search, with its folder path and
// a relevance score
type SearchResult struct {
	Question    domain.Question
	Path        string
	MatchedText string
	Score       int
}

// SearchCommand searches question text with fuzzy matching
type SearchCommand struct {
	bank  ports.QuestionBank
	Query string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(bank ports.QuestionBank, query string) *SearchCommand {
	return &SearchCommand{bank: bank, Query: query}
}

// Execute runs the search command and returns scored, sorted results.
// A single character is enough for CJK text, two for anything else.
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	query := strings.TrimSpace(c.Query)
	if query == "" || (utf8.RuneCountInString(query) < 2 && len(query) < 2) {
		return nil, nil
	}

	questions, err := c.bank.ListQuestions()
	if err != nil {
		return nil, err
	}
	folders, err := c.bank.ListFolders()
	if err != nil {
		return nil, err
	}

	var results []SearchResult
	for _, q := range questions {
		best, matched := 0, ""
		for _, text := range searchableText(q) {
			if s := FuzzyScore(text, query); s > best {
				best, matched = s, text
			}
		}
		if best == 0 {
			continue
		}
		results = append(results, SearchResult{
			Question:    q,
			Path:        folders.PathOf(q.FolderID),
			MatchedText: matched,
			Score:       best,
		})
	}

	slices.SortStableFunc(results, func(a, b SearchResult) int {
		return b.Score - a.Score
	})
	return results, nil
}

func searchableText(q domain.Question) []string {
	texts := []string{q.Sentence, q.Translation}
	texts = append(texts, q.Words...)
	texts = append(texts, q.WordTranslations...)
	if q.Word != "" {
		texts = append(texts, q.Word, q.Meaning)
	}
	if q.Question != "" {
		texts = append(texts, q.Question, q.Answer)
	}
	return texts
}

// FuzzyScore calculates a relevance score for how well target matches query.
// Matching is by rune, so Chinese glosses score the same way as English.
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Exact substring match ranks highest
	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: query runes appear in order
	t := []rune(target)
	qr := []rune(query)
	score := 0
	qi := 0
	prev := -1

	for i := 0; i < len(t) && qi < len(qr); i++ {
		if t[i] != qr[qi] {
			continue
		}
		if prev == i-1 {
			score += 10 // consecutive
		}
		if i == 0 {
			score += 15 // start of text
		}
		if i > 0 && (t[i-1] == ' ' || t[i-1] == '/' || t[i-1] == '-') {
			score += 10 // word start
		}
		score++
		prev = i
		qi++
	}

	if qi == len(qr) {
		return score
	}
	return 0
}
