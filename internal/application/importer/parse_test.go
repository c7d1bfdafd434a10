package importer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordplay/internal/domain"
)

func TestParse_ValidationChain(t *testing.T) {
	tests := []struct {
		name      string
		record    Record
		wantRule  Rule
		wantField string
	}{
		{
			name:   "valid sentence",
			record: Record{"type": "sentence-building", "sentence": "Hi", "translation": "嗨"},
		},
		{
			name:      "missing type",
			record:    Record{"sentence": "Hi", "translation": "嗨"},
			wantRule:  RuleRequired,
			wantField: "type",
		},
		{
			name:      "missing translation",
			record:    Record{"type": "sentence-building", "sentence": "Hi"},
			wantRule:  RuleRequired,
			wantField: "translation",
		},
		{
			name:      "empty translation counts as missing",
			record:    Record{"type": "sentence-building", "sentence": "Hi", "translation": ""},
			wantRule:  RuleRequired,
			wantField: "translation",
		},
		{
			name:      "non-string type counts as missing",
			record:    Record{"type": 3, "sentence": "Hi", "translation": "嗨"},
			wantRule:  RuleRequired,
			wantField: "type",
		},
		{
			name:      "missing sentence",
			record:    Record{"type": "matching", "translation": "x"},
			wantRule:  RuleSentence,
			wantField: "sentence",
		},
		{
			name:      "sentence checked before type",
			record:    Record{"type": "essay", "translation": "x"},
			wantRule:  RuleSentence,
			wantField: "sentence",
		},
		{
			name:      "unknown type",
			record:    Record{"type": "essay", "sentence": "x", "translation": "x"},
			wantRule:  RuleType,
			wantField: "type",
		},
		{
			name: "matching with unequal lists",
			record: Record{
				"type": "matching", "sentence": "Animals", "translation": "动物",
				"words": []any{"cat", "dog"}, "wordTranslations": []any{"猫"},
			},
			wantRule:  RuleMatching,
			wantField: "wordTranslations",
		},
		{
			name: "matching with equal empty lists",
			record: Record{
				"type": "matching", "sentence": "Animals", "translation": "动物",
				"words": []any{}, "wordTranslations": []any{},
			},
		},
		{
			name: "matching with one empty list",
			record: Record{
				"type": "matching", "sentence": "Animals", "translation": "动物",
				"words": []any{"cat"}, "wordTranslations": []any{},
			},
			wantRule:  RuleMatching,
			wantField: "wordTranslations",
		},
		{
			name: "matching words not a list",
			record: Record{
				"type": "matching", "sentence": "Animals", "translation": "动物",
				"words": "cat,dog", "wordTranslations": []any{"猫", "狗"},
			},
			wantRule:  RuleMatching,
			wantField: "words",
		},
		{
			name: "valid matching",
			record: Record{
				"type": "matching", "sentence": "Animals", "translation": "动物",
				"words": []any{"cat", "dog"}, "wordTranslations": []any{"猫", "狗"},
			},
		},
		{
			name: "spelling without meaning",
			record: Record{
				"type": "spelling", "sentence": "cat", "translation": "猫", "word": "cat",
				"distractors": []any{"a", "b", "c"},
			},
			wantRule:  RuleSpelling,
			wantField: "meaning",
		},
		{
			name: "spelling with two distractors",
			record: Record{
				"type": "spelling", "sentence": "cat", "translation": "猫", "word": "cat", "meaning": "猫",
				"distractors": []any{"狗", "鸟"},
			},
			wantRule:  RuleSpelling,
			wantField: "distractors",
		},
		{
			name: "valid spelling",
			record: Record{
				"type": "spelling", "sentence": "cat", "translation": "猫", "word": "cat", "meaning": "猫",
				"distractors": []any{"狗", "鸟", "鱼"},
			},
		},
		{
			name: "fill-in-blank with too few answers",
			record: Record{
				"type": "fill-in-blank", "sentence": "I ___ to ___ every day", "translation": "x",
				"blanks": []any{"go"},
			},
			wantRule:  RuleFillInBlank,
			wantField: "blanks",
		},
		{
			name: "fill-in-blank with no answers",
			record: Record{
				"type": "fill-in-blank", "sentence": "I ___ to school", "translation": "x",
				"blanks": []any{},
			},
			wantRule:  RuleFillInBlank,
			wantField: "blanks",
		},
		{
			name: "valid fill-in-blank",
			record: Record{
				"type": "fill-in-blank", "sentence": "I ___ to school", "translation": "x",
				"blanks": []any{"go"},
			},
		},
		{
			name: "long underscore run is one blank",
			record: Record{
				"type": "fill-in-blank", "sentence": "I ______ to school", "translation": "x",
				"blanks": []any{"go"},
			},
		},
		{
			name:      "dialogue without answer",
			record:    Record{"type": "dialogue", "translation": "x", "question": "Who?"},
			wantRule:  RuleDialogue,
			wantField: "answer",
		},
		{
			name:   "dialogue needs no sentence",
			record: Record{"type": "dialogue", "translation": "x", "question": "Who?", "answer": "Me"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(4, tt.record)
			if tt.wantRule == 0 {
				require.NoError(t, err)
				require.NotNil(t, p)
				assert.Equal(t, 4, p.Index)
				return
			}

			require.Error(t, err)
			var recErr *RecordError
			require.True(t, errors.As(err, &recErr))
			assert.Equal(t, tt.wantRule, recErr.Rule)
			assert.Equal(t, tt.wantField, recErr.Field)
			assert.Equal(t, 4, recErr.Index)
			assert.Contains(t, recErr.Error(), "record 5")
		})
	}
}

func TestParse_Dialogue(t *testing.T) {
	t.Run("sentence is synthesised and showQuestion defaults to true", func(t *testing.T) {
		p, err := Parse(0, Record{"type": "dialogue", "translation": "x", "question": "How are you", "answer": "Fine"})
		require.NoError(t, err)
		assert.Equal(t, "How are you / Fine", p.Draft.Sentence)
		require.NotNil(t, p.Draft.ShowQuestion)
		assert.True(t, *p.Draft.ShowQuestion)
	})

	t.Run("supplied sentence and showQuestion are kept", func(t *testing.T) {
		p, err := Parse(0, Record{
			"type": "dialogue", "translation": "x", "question": "Q", "answer": "A",
			"sentence": "Greeting", "showQuestion": false,
		})
		require.NoError(t, err)
		assert.Equal(t, "Greeting", p.Draft.Sentence)
		assert.False(t, *p.Draft.ShowQuestion)
	})
}

func TestParse_ForeignFieldsDropped(t *testing.T) {
	p, err := Parse(0, Record{
		"type": "sentence-building", "sentence": "Hi", "translation": "嗨",
		"words": []any{"a"}, "blanks": []any{"b"}, "question": "q",
	})
	require.NoError(t, err)
	assert.Nil(t, p.Draft.Words)
	assert.Nil(t, p.Draft.Blanks)
	assert.Empty(t, p.Draft.Question)
	assert.Equal(t, domain.TypeSentenceBuilding, p.Draft.Type)
}

func TestParse_Folder(t *testing.T) {
	tests := []struct {
		name       string
		record     Record
		wantPath   string
		wantLegacy string
	}{
		{"clean path", Record{"folderName": " A / B//C "}, "A/B/C", ""},
		{"only separators is absent", Record{"folderName": " / / "}, "", ""},
		{"legacy folderId", Record{"folderId": "f1"}, "", "f1"},
		{"folderName wins over folderId", Record{"folderName": "A", "folderId": "f1"}, "A", ""},
		{"non-string folderName", Record{"folderName": 7}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Record{"type": "sentence-building", "sentence": "Hi", "translation": "嗨"}
			for k, v := range tt.record {
				r[k] = v
			}
			p, err := Parse(0, r)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, p.FolderPath)
			assert.Equal(t, tt.wantLegacy, p.LegacyFolderID)
		})
	}
}

func TestDecode(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		records, err := Decode([]byte(` [{"type":"matching","words":["a","b"]}, 3]`), FormatAuto)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "matching", records[0]["type"])
		assert.Empty(t, records[1])
	})

	t.Run("yaml", func(t *testing.T) {
		doc := "- type: spelling\n  word: cat\n  distractors: [a, b, c]\n- type: dialogue\n  showQuestion: false\n"
		records, err := Decode([]byte(doc), FormatYAML)
		require.NoError(t, err)
		require.Len(t, records, 2)

		list, ok := records[0].list("distractors")
		require.True(t, ok)
		assert.Equal(t, []string{"a", "b", "c"}, list)
		assert.False(t, records[1].boolOr("showQuestion", true))
	})

	t.Run("top level object is rejected", func(t *testing.T) {
		_, err := Decode([]byte(`{"type":"matching"}`), FormatJSON)
		assert.ErrorIs(t, err, ErrNotAList)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := Decode([]byte(`[{`), FormatJSON)
		assert.Error(t, err)
	})
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFromPath("bank.JSON"))
	assert.Equal(t, FormatYAML, FormatFromPath("bank.yml"))
	assert.Equal(t, FormatAuto, FormatFromPath("bank.txt"))
}

func TestRecordFromQuestion_ParsesBack(t *testing.T) {
	show := false
	tests := []struct {
		name string
		q    domain.Question
	}{
		{"matching without words", domain.Question{Type: domain.TypeMatching, Sentence: "Empty set", Translation: "空"}},
		{"dialogue", domain.Question{
			Type: domain.TypeDialogue, Sentence: "Hi / Hello", Translation: "你好",
			Question: "Hi", Answer: "Hello", ShowQuestion: &show,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(0, RecordFromQuestion(tt.q))
			require.NoError(t, err)
			assert.Equal(t, tt.q.Type, p.Draft.Type)
			assert.Equal(t, tt.q.Sentence, p.Draft.Sentence)
		})
	}
}
