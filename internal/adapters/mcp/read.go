package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"wordplay/internal/application/commands"
	"wordplay/internal/application/importer"
	"wordplay/internal/domain"
	"wordplay/internal/ports"
)

// RegisterReadTools adds all read-only question bank tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, bank ports.QuestionBank, logger *slog.Logger) {
	s.AddTool(listFoldersTool(), listFoldersHandler(bank))
	s.AddTool(listQuestionsTool(), listQuestionsHandler(bank))
	s.AddTool(getQuestionTool(), getQuestionHandler(bank))
	s.AddTool(treeTool(), treeHandler(bank))
	s.AddTool(playlistTool(), playlistHandler(bank))
	s.AddTool(searchTool(), searchHandler(bank))
	s.AddTool(previewImportTool(), previewImportHandler(bank, logger))
	s.AddTool(exampleTool(), exampleHandler())
}

// --- list_folders ---

func listFoldersTool() mcp.Tool {
	return mcp.NewTool("list_folders",
		mcp.WithDescription("List folders with their paths and question counts. Without a parent lists the root level."),
		mcp.WithString("parent_id",
			mcp.Description("Folder ID to list the children of. Omit for the root level."),
		),
		mcp.WithBoolean("recursive",
			mcp.Description("List the whole subtree instead of direct children"),
		),
	)
}

func listFoldersHandler(bank ports.QuestionBank) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewListFoldersCommand(bank, req.GetString("parent_id", ""), req.GetBool("recursive", false))
		entries, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(entries, formatFolder)
	}
}

// --- list_questions ---

func listQuestionsTool() mcp.Tool {
	return mcp.NewTool("list_questions",
		mcp.WithDescription("List questions filed in a folder. Without a folder lists unfiled questions."),
		mcp.WithString("folder_id",
			mcp.Description("Folder ID. Omit for unfiled questions."),
		),
		mcp.WithBoolean("recursive",
			mcp.Description("Include every subfolder, in playback order"),
		),
		mcp.WithBoolean("all",
			mcp.Description("List every question in the bank"),
		),
		mcp.WithString("type",
			mcp.Description("Only questions of this type"),
			mcp.Enum(questionTypeNames()...),
		),
	)
}

func listQuestionsHandler(bank ports.QuestionBank) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewListQuestionsCommand(bank, req.GetString("folder_id", ""), req.GetBool("recursive", false))
		cmd.All = req.GetBool("all", false)
		if raw := req.GetString("type", ""); raw != "" {
			t, err := domain.ParseQuestionType(raw)
			if err != nil {
				return toolError(err)
			}
			cmd.Type = t
		}

		questions, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(questions, formatQuestion)
	}
}

// --- get_question ---

func getQuestionTool() mcp.Tool {
	return mcp.NewTool("get_question",
		mcp.WithDescription("Get every field of a question as JSON, plus its folder path."),
		mcp.WithString("id",
			mcp.Description("Question ID"),
			mcp.Required(),
		),
	)
}

func getQuestionHandler(bank ports.QuestionBank) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		q, path, err := commands.NewGetQuestionCommand(bank, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		data, err := json.MarshalIndent(struct {
			*domain.Question
			Path string `json:"path"`
		}{q, path}, "", "  ")
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display the folder tree with subtree question counts."),
		mcp.WithBoolean("questions",
			mcp.Description("Also list the questions under each folder"),
		),
	)
}

func treeHandler(bank ports.QuestionBank) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root, err := commands.NewBuildTreeCommand(bank).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		var sb strings.Builder
		renderTree(&sb, root, "", req.GetBool("questions", false))
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func renderTree(sb *strings.Builder, node *domain.TreeNode, prefix string, withQuestions bool) {
	switch node.Kind {
	case domain.NodeRoot:
		fmt.Fprintf(sb, "%s (%d)\n", node.Name, node.Total)
	case domain.NodeFolder:
		fmt.Fprintf(sb, "%s%s %s (%d)\n", prefix, node.ID, node.Name, node.Total)
	case domain.NodeQuestion:
		if !withQuestions {
			return
		}
		fmt.Fprintf(sb, "%s- %s %s\n", prefix, node.ID, node.Name)
	}
	prefix += "  "
	for _, child := range node.Children {
		renderTree(sb, child, prefix, withQuestions)
	}
}

// --- playlist ---

func playlistTool() mcp.Tool {
	return mcp.NewTool("playlist",
		mcp.WithDescription("Build the playback sequence of a folder subtree: the folder's own questions, then each subfolder depth-first. Omit the folder for the whole bank."),
		mcp.WithString("folder_id",
			mcp.Description("Folder ID. Omit for the whole bank."),
		),
	)
}

func playlistHandler(bank ports.QuestionBank) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewBuildPlaylistCommand(bank, req.GetString("folder_id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		sb.WriteString(result.Message)
		sb.WriteByte('\n')
		for i, q := range result.Questions {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, formatQuestion(q))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Fuzzy search the text of every question."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
	)
}

func searchHandler(bank ports.QuestionBank) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		results, err := commands.NewSearchCommand(bank, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "%s  %s  %s  [%s]\n", r.Question.ID, r.Question.Type, r.MatchedText, displayPath(r.Path))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- preview_import ---

func previewImportTool() mcp.Tool {
	return mcp.NewTool("preview_import",
		mcp.WithDescription("Dry-run an import document: count valid and invalid records and list the folders that would be created. Nothing is written."),
		mcp.WithString("document",
			mcp.Description("JSON or YAML list of question records"),
			mcp.Required(),
		),
		mcp.WithString("format",
			mcp.Description("Document format. Omit to detect."),
			mcp.Enum(string(importer.FormatJSON), string(importer.FormatYAML)),
		),
	)
}

func previewImportHandler(bank ports.QuestionBank, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewImportCommand(bank, logger,
			[]byte(req.GetString("document", "")), importer.Format(req.GetString("format", "")))
		preview, err := cmd.Preview(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(preview.Summary()), nil
	}
}

// --- example ---

func exampleTool() mcp.Tool {
	return mcp.NewTool("example",
		mcp.WithDescription("Return an example import document for a question type, or a mixed one."),
		mcp.WithString("kind",
			mcp.Description("Example kind"),
			mcp.Required(),
			mcp.Enum(importer.ExampleKinds()...),
		),
		mcp.WithString("format",
			mcp.Description("Document format, json by default"),
			mcp.Enum(string(importer.FormatJSON), string(importer.FormatYAML)),
		),
	)
}

func exampleHandler() server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		format := importer.Format(req.GetString("format", string(importer.FormatJSON)))
		doc, err := importer.Example(req.GetString("kind", ""), format)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(string(doc)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatFolder(e commands.FolderEntry) string {
	return fmt.Sprintf("%s  %s  (%d direct, %d total, %s)", e.ID, e.Path, e.Direct, e.Total, e.Color)
}

func formatQuestion(q domain.Question) string {
	return fmt.Sprintf("%s  %s  %s", q.ID, q.Type, q.Sentence)
}

func displayPath(path string) string {
	if path == "" {
		return "unfiled"
	}
	return path
}

func questionTypeNames() []string {
	names := make([]string, len(domain.QuestionTypes))
	for i, t := range domain.QuestionTypes {
		names[i] = string(t)
	}
	return names
}
