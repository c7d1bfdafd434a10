package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"wordplay/internal/application"
	"wordplay/internal/application/commands"
	"wordplay/internal/application/importer"
	"wordplay/internal/domain"
)

// questionFlags holds the fields shared by question add and update
type questionFlags struct {
	qType            string
	sentence         string
	translation      string
	words            []string
	wordTranslations []string
	word             string
	phonetic         string
	meaning          string
	distractors      []string
	blanks           []string
	question         string
	answer           string
	hideQuestion     bool
	folderPath       string
	folderID         string
	unfile           bool
}

var (
	addFlags    questionFlags
	updateFlags questionFlags

	listQuestionsRecursive bool
	listQuestionsAll       bool
	listQuestionsType      string
)

func (f *questionFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.qType, "type", "t", "", "question type: sentence-building, matching, spelling, fill-in-blank, dialogue")
	fs.StringVar(&f.sentence, "sentence", "", "English sentence")
	fs.StringVar(&f.translation, "translation", "", "translation of the sentence")
	fs.StringArrayVar(&f.words, "words", nil, "matching: a word (repeatable)")
	fs.StringArrayVar(&f.wordTranslations, "word-translations", nil, "matching: a word translation (repeatable, same order as --words)")
	fs.StringVar(&f.word, "word", "", "spelling: the word to spell")
	fs.StringVar(&f.phonetic, "phonetic", "", "spelling: phonetic transcription")
	fs.StringVar(&f.meaning, "meaning", "", "spelling: correct meaning")
	fs.StringArrayVar(&f.distractors, "distractor", nil, "spelling: a wrong meaning (repeat 3 times)")
	fs.StringArrayVar(&f.blanks, "blank", nil, "fill-in-blank: an answer for the next ___ (repeatable)")
	fs.StringVar(&f.question, "question", "", "dialogue: the question line")
	fs.StringVar(&f.answer, "answer", "", "dialogue: the answer line")
	fs.BoolVar(&f.hideQuestion, "hide-question", false, "dialogue: show the answer and ask for the question")
	fs.StringVarP(&f.folderPath, "folder", "f", "", "folder path like Grammar/Tenses, created if missing")
	fs.StringVar(&f.folderID, "folder-id", "", "existing folder id")
}

// record renders the flags as an import record, so added questions pass
// the same rules as imported ones
func (f *questionFlags) record() importer.Record {
	r := importer.Record{}
	set := func(key, value string) {
		if value != "" {
			r[key] = value
		}
	}
	setList := func(key string, values []string) {
		if values == nil {
			return
		}
		items := make([]any, len(values))
		for i, v := range values {
			items[i] = v
		}
		r[key] = items
	}

	set("type", f.qType)
	set("sentence", f.sentence)
	set("translation", f.translation)
	setList("words", f.words)
	setList("wordTranslations", f.wordTranslations)
	set("word", f.word)
	set("phonetic", f.phonetic)
	set("meaning", f.meaning)
	setList("distractors", f.distractors)
	setList("blanks", f.blanks)
	set("question", f.question)
	set("answer", f.answer)
	if f.hideQuestion {
		r["showQuestion"] = false
	}
	set("folderName", f.folderPath)
	set("folderId", f.folderID)
	return r
}

// patch collects only the flags the user actually passed
func (f *questionFlags) patch(cmd *cobra.Command) (domain.QuestionPatch, error) {
	var p domain.QuestionPatch
	changed := cmd.Flags().Changed

	if changed("type") {
		t, err := domain.ParseQuestionType(f.qType)
		if err != nil {
			return p, err
		}
		p.Type = &t
	}
	str := func(flag string, value string, dst **string) {
		if changed(flag) {
			v := value
			*dst = &v
		}
	}
	str("sentence", f.sentence, &p.Sentence)
	str("translation", f.translation, &p.Translation)
	str("word", f.word, &p.Word)
	str("phonetic", f.phonetic, &p.Phonetic)
	str("meaning", f.meaning, &p.Meaning)
	str("question", f.question, &p.Question)
	str("answer", f.answer, &p.Answer)

	if changed("words") {
		p.Words = f.words
	}
	if changed("word-translations") {
		p.WordTranslations = f.wordTranslations
	}
	if changed("distractor") {
		p.Distractors = f.distractors
	}
	if changed("blank") {
		p.Blanks = f.blanks
	}
	if changed("hide-question") {
		show := !f.hideQuestion
		p.ShowQuestion = &show
	}

	switch {
	case f.unfile:
		empty := ""
		p.FolderID = &empty
	case changed("folder-id"):
		p.FolderID = &f.folderID
	}
	return p, nil
}

var questionCmd = &cobra.Command{
	Use:   "question",
	Short: "Manage questions",
	Long: `Add, update, delete, show and list questions.

Examples:
  wordplay-cli question add -t sentence-building --sentence "I like apples" --translation "Mi piacciono le mele" -f Food
  wordplay-cli question add -t fill-in-blank --sentence "She ___ to school" --translation "Lei va a scuola" --blank goes
  wordplay-cli question update <question-id> --translation "..."
  wordplay-cli question list <folder-id> -r
  wordplay-cli question list --all --type spelling`,
}

var questionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a question",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if addFlags.folderPath != "" && addFlags.folderID != "" {
			return fmt.Errorf("give either --folder or --folder-id, not both")
		}

		ctx := context.Background()
		addCmd := commands.NewAddQuestionCommand(GetBank(), addFlags.record())
		result, err := addCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

var questionUpdateCmd = &cobra.Command{
	Use:   "update <question-id>",
	Short: "Update fields of a question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("folder") {
			return fmt.Errorf("update takes --folder-id or --unfile; use folder resolve to get an id")
		}
		patch, err := updateFlags.patch(cmd)
		if err != nil {
			return err
		}

		ctx := context.Background()
		updateCmd := commands.NewUpdateQuestionCommand(GetBank(), args[0], patch)
		result, err := updateCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

var questionDeleteCmd = &cobra.Command{
	Use:   "delete <question-id>",
	Short: "Delete a question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		deleteCmd := commands.NewDeleteQuestionCommand(GetBank(), args[0])
		result, err := deleteCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

var questionShowCmd = &cobra.Command{
	Use:   "show <question-id>",
	Short: "Show every field of a question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		getCmd := commands.NewGetQuestionCommand(GetBank(), args[0])
		q, path, err := getCmd.Execute(ctx)
		if err != nil {
			return err
		}

		printQuestionDetail(q, path)
		return nil
	},
}

var questionListCmd = &cobra.Command{
	Use:   "list [folder-id]",
	Short: "List questions in a folder (unfiled when omitted)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		folderID := ""
		if len(args) == 1 {
			folderID = args[0]
		}

		listCmd := commands.NewListQuestionsCommand(GetBank(), folderID, listQuestionsRecursive)
		listCmd.All = listQuestionsAll
		if listQuestionsType != "" {
			t, err := application.ParseQuestionType(listQuestionsType)
			if err != nil {
				return err
			}
			listCmd.Type = t
		}

		ctx := context.Background()
		questions, err := listCmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, q := range questions {
			printQuestionLine(q)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(questionCmd)
	questionCmd.AddCommand(questionAddCmd)
	questionCmd.AddCommand(questionUpdateCmd)
	questionCmd.AddCommand(questionDeleteCmd)
	questionCmd.AddCommand(questionShowCmd)
	questionCmd.AddCommand(questionListCmd)

	addFlags.register(questionAddCmd)
	updateFlags.register(questionUpdateCmd)
	questionUpdateCmd.Flags().BoolVar(&updateFlags.unfile, "unfile", false, "move the question to unfiled")

	questionListCmd.Flags().BoolVarP(&listQuestionsRecursive, "recursive", "r", false, "include subfolders in playback order")
	questionListCmd.Flags().BoolVarP(&listQuestionsAll, "all", "a", false, "list every question in the bank")
	questionListCmd.Flags().StringVarP(&listQuestionsType, "type", "t", "", "only questions of this type")
}
