package cmd

import (
	"fmt"
	"strings"

	"wordplay/internal/domain"
)

func printQuestionLine(q domain.Question) {
	fmt.Printf("%s  %-9s %s\n", q.ID, q.Type.Label(), q.Sentence)
}

func printQuestionDetail(q *domain.Question, path string) {
	if path == "" {
		path = "unfiled"
	}
	fmt.Printf("ID:          %s\n", q.ID)
	fmt.Printf("Type:        %s\n", q.Type)
	fmt.Printf("Folder:      %s\n", path)
	fmt.Printf("Created:     %s\n", q.Created().Format("2006-01-02 15:04"))
	fmt.Printf("Sentence:    %s\n", q.Sentence)
	fmt.Printf("Translation: %s\n", q.Translation)

	switch q.Type {
	case domain.TypeMatching:
		for i, w := range q.Words {
			if i < len(q.WordTranslations) {
				fmt.Printf("  %s = %s\n", w, q.WordTranslations[i])
			}
		}
	case domain.TypeSpelling:
		fmt.Printf("Word:        %s %s\n", q.Word, q.Phonetic)
		fmt.Printf("Meaning:     %s\n", q.Meaning)
		fmt.Printf("Distractors: %s\n", strings.Join(q.Distractors, ", "))
	case domain.TypeFillInBlank:
		fmt.Printf("Blanks:      %s\n", strings.Join(q.Blanks, ", "))
	case domain.TypeDialogue:
		fmt.Printf("Question:    %s\n", q.Question)
		fmt.Printf("Answer:      %s\n", q.Answer)
		fmt.Printf("Shows:       %s\n", map[bool]string{true: "question", false: "answer"}[q.RevealsQuestion()])
	}
}
