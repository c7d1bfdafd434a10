package importer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordplay/internal/adapters/memory"
	"wordplay/internal/bank"
	"wordplay/internal/domain"
)

func newTestImporter(t *testing.T) (*Importer, *bank.Bank, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	b := bank.New(store)
	return New(b, nil), b, store
}

func TestCommit_EndToEnd(t *testing.T) {
	im, b, store := newTestImporter(t)
	records := []Record{
		{"type": "sentence-building", "sentence": "Hi", "translation": "嗨", "folderName": "A/B"},
	}

	preview, err := im.Analyze(records)
	require.NoError(t, err)
	assert.Equal(t, 1, preview.Valid)
	assert.Equal(t, []string{"A", "A/B"}, preview.NewFolders)
	assert.Empty(t, preview.ExistingFolders)

	result, err := im.Commit(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 2, result.FoldersCreated)
	assert.Equal(t, 1, store.Saves(), "commit is a single store write")

	folders, err := b.ListFolders()
	require.NoError(t, err)
	assert.Len(t, folders, 2)

	leaf, _ := folders.Walk([]string{"A", "B"})
	require.NotNil(t, leaf)
	require.Len(t, result.Questions, 1)
	assert.Equal(t, leaf.ID, result.Questions[0].FolderID)
}

func TestAnalyze_ExistingPrefix(t *testing.T) {
	im, b, _ := newTestImporter(t)
	_, err := b.ResolveOrCreate("A")
	require.NoError(t, err)

	preview, err := im.Analyze([]Record{
		{"type": "sentence-building", "sentence": "1", "translation": "1", "folderName": "A/B/C"},
		{"type": "sentence-building", "sentence": "2", "translation": "2", "folderName": "A/B"},
		{"type": "sentence-building", "translation": "invalid", "folderName": "Z"},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, preview.Total)
	assert.Equal(t, 2, preview.Valid)
	assert.Equal(t, 1, preview.Invalid)
	assert.Equal(t, []string{"A"}, preview.ExistingFolders)
	assert.Equal(t, []string{"A/B", "A/B/C"}, preview.NewFolders, "invalid records contribute no paths")
	require.Len(t, preview.Issues, 1)
	assert.Equal(t, 2, preview.Issues[0].Index)
	assert.Contains(t, preview.Summary(), "+ A/B/C")

	folders, err := b.ListFolders()
	require.NoError(t, err)
	assert.Len(t, folders, 1, "analysis must not create folders")
}

func TestAnalyzeCommitAgreement(t *testing.T) {
	im, b, _ := newTestImporter(t)
	_, err := b.ResolveOrCreate("Words/Animals")
	require.NoError(t, err)

	records := []Record{
		{"type": "sentence-building", "sentence": "I like cats", "translation": "我喜欢猫", "folderName": "Words/Animals"},
		{"type": "matching", "sentence": "m", "translation": "m", "words": []any{"a"}, "wordTranslations": []any{"b", "c"}, "folderName": "Bad/Path"},
		{"type": "fill-in-blank", "sentence": "I ___ to school", "translation": "x", "blanks": []any{"go"}, "folderName": "Words/Verbs/Motion"},
		{"type": "fill-in-blank", "sentence": "I ___ to ___ every day", "translation": "x", "blanks": []any{"go"}},
		{"type": "dialogue", "translation": "x", "question": "Q", "answer": "A", "folderName": " / "},
		{"type": "spelling", "sentence": "cat", "translation": "猫", "word": "cat", "meaning": "猫", "distractors": []any{"狗", "鸟", "鱼"}, "folderName": "Spelling"},
	}

	preview, err := im.Analyze(records)
	require.NoError(t, err)

	result, err := im.Commit(context.Background(), records)
	require.NoError(t, err)

	assert.Equal(t, preview.Valid, result.Added)
	assert.Equal(t, preview.Invalid, len(result.Issues))
	assert.Len(t, preview.NewFolders, result.FoldersCreated)
	for i, issue := range preview.Issues {
		assert.Equal(t, issue.Index, result.Issues[i].Index)
	}

	folders, err := b.ListFolders()
	require.NoError(t, err)
	planned := append(append([]string{}, preview.NewFolders...), preview.ExistingFolders...)
	for _, path := range planned {
		assert.True(t, folders.PathExists(path), "path %q should exist after commit", path)
	}
	assert.False(t, folders.PathExists("Bad/Path"))

	unfiled, err := b.QuestionsByFolder("")
	require.NoError(t, err)
	require.Len(t, unfiled, 1)
	assert.Equal(t, domain.TypeDialogue, unfiled[0].Type)
	assert.Equal(t, "Q / A", unfiled[0].Sentence)
}

func TestCommit_IsIdempotentOnFolders(t *testing.T) {
	im, b, _ := newTestImporter(t)
	records := []Record{
		{"type": "sentence-building", "sentence": "Hi", "translation": "嗨", "folderName": "A/B"},
		{"type": "sentence-building", "sentence": "Bye", "translation": "再见", "folderName": "A/B"},
	}

	first, err := im.Commit(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, 2, first.FoldersCreated)

	second, err := im.Commit(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, 0, second.FoldersCreated)
	assert.Equal(t, 2, second.Added)

	questions, err := b.ListQuestions()
	require.NoError(t, err)
	assert.Len(t, questions, 4)
}

func TestCommit_LegacyFolderID(t *testing.T) {
	im, b, _ := newTestImporter(t)
	folder, err := b.AddFolder("Legacy", "", "")
	require.NoError(t, err)

	result, err := im.Commit(context.Background(), []Record{
		{"type": "sentence-building", "sentence": "known", "translation": "x", "folderId": folder.ID},
		{"type": "sentence-building", "sentence": "unknown", "translation": "x", "folderId": "gone"},
	})
	require.NoError(t, err)
	require.Len(t, result.Questions, 2)
	assert.Equal(t, folder.ID, result.Questions[0].FolderID)
	assert.True(t, result.Questions[1].IsUnfiled())
}

func TestCommit_CancelledContextWritesNothing(t *testing.T) {
	im, b, store := newTestImporter(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := im.Commit(ctx, []Record{
		{"type": "sentence-building", "sentence": "Hi", "translation": "嗨", "folderName": "A"},
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, store.Saves())

	// the bank lock was released
	folders, err := b.ListFolders()
	require.NoError(t, err)
	assert.Empty(t, folders)
}

func TestResult_Message(t *testing.T) {
	r := &Result{Added: 3, FoldersCreated: 2, Issues: []*RecordError{{}}}
	assert.Equal(t, "Imported 3 questions, created 2 folders, skipped 1 invalid records", r.Message())
}

func TestExamples_AreValid(t *testing.T) {
	for _, kind := range ExampleKinds() {
		for _, format := range []Format{FormatJSON, FormatYAML} {
			t.Run(kind+"/"+string(format), func(t *testing.T) {
				data, err := Example(kind, format)
				require.NoError(t, err)

				records, err := Decode(data, format)
				require.NoError(t, err)
				require.NotEmpty(t, records)

				preview := Analyze(records, domain.Folders{})
				assert.Equal(t, len(records), preview.Valid, "issues: %v", preview.Issues)
			})
		}
	}

	_, err := Example("poetry", FormatJSON)
	assert.Error(t, err)
}
