package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordplay/internal/adapters/memory"
	"wordplay/internal/bank"
)

func newTestBank() *bank.Bank {
	return bank.New(memory.NewStore())
}

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text, result.IsError
}

func TestAddQuestionThenTree(t *testing.T) {
	b := newTestBank()

	msg, isErr := call(t, addQuestionHandler(b), map[string]any{
		"record": map[string]any{
			"type":        "sentence-building",
			"sentence":    "I like apples",
			"translation": "Mi piacciono le mele",
			"folderName":  "Food/Fruit",
		},
	})
	require.False(t, isErr, msg)
	assert.Contains(t, msg, "Fruit")

	tree, isErr := call(t, treeHandler(b), map[string]any{})
	require.False(t, isErr)
	assert.Contains(t, tree, "Food (1)")
	assert.Contains(t, tree, "Fruit (1)")
}

func TestAddQuestionRejectsInvalidRecord(t *testing.T) {
	b := newTestBank()

	msg, isErr := call(t, addQuestionHandler(b), map[string]any{
		"record": map[string]any{"type": "spelling", "sentence": "x", "translation": "y"},
	})
	assert.True(t, isErr)
	assert.Contains(t, msg, "word")

	_, isErr = call(t, addQuestionHandler(b), map[string]any{"record": "not an object"})
	assert.True(t, isErr)
}

func TestImportAndPreview(t *testing.T) {
	b := newTestBank()
	doc := `[
		{"type": "sentence-building", "sentence": "Hello", "translation": "Ciao", "folderName": "Greetings"},
		{"type": "matching", "sentence": "x", "translation": "y", "words": ["a"], "wordTranslations": []}
	]`

	preview, isErr := call(t, previewImportHandler(b, nil), map[string]any{"document": doc})
	require.False(t, isErr, preview)
	assert.Contains(t, preview, "2 records: 1 valid, 1 invalid")
	assert.Contains(t, preview, "+ Greetings")

	msg, isErr := call(t, importHandler(b, nil), map[string]any{"document": doc})
	require.False(t, isErr, msg)
	assert.True(t, strings.HasPrefix(msg, "Imported 1 questions, created 1 folders, skipped 1 invalid records"))
	assert.Contains(t, msg, "record 2")

	list, _ := call(t, listFoldersHandler(b), map[string]any{})
	assert.Contains(t, list, "Greetings")
}

func TestUpdateQuestionFields(t *testing.T) {
	b := newTestBank()
	_, isErr := call(t, importHandler(b, nil), map[string]any{
		"document": `[{"type": "sentence-building", "sentence": "Hello", "translation": "Ciao"}]`,
	})
	require.False(t, isErr)
	questions, err := b.ListQuestions()
	require.NoError(t, err)
	require.Len(t, questions, 1)
	id := questions[0].ID

	msg, isErr := call(t, updateQuestionHandler(b), map[string]any{
		"id":     id,
		"fields": map[string]any{"translation": "Salve"},
	})
	require.False(t, isErr, msg)

	q, err := b.GetQuestion(id)
	require.NoError(t, err)
	assert.Equal(t, "Salve", q.Translation)

	_, isErr = call(t, updateQuestionHandler(b), map[string]any{
		"id":     id,
		"fields": map[string]any{"type": "fill-in-blank"},
	})
	assert.True(t, isErr, "type change without blanks must fail")
}

func TestMoveFolderIntoOwnSubtree(t *testing.T) {
	b := newTestBank()
	parent, err := b.ResolveOrCreate("A/B")
	require.NoError(t, err)
	root, err := b.ResolveOrCreate("A")
	require.NoError(t, err)

	msg, isErr := call(t, moveFolderHandler(b), map[string]any{
		"source_id":      root.ID,
		"destination_id": parent.ID,
	})
	assert.True(t, isErr)
	assert.NotEmpty(t, msg)
}

func TestExampleTool(t *testing.T) {
	msg, isErr := call(t, exampleHandler(), map[string]any{"kind": "spelling", "format": "yaml"})
	require.False(t, isErr, msg)
	assert.Contains(t, msg, "distractors")

	_, isErr = call(t, exampleHandler(), map[string]any{"kind": "nope"})
	assert.True(t, isErr)
}
