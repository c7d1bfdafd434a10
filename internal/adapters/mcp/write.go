package mcp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"wordplay/internal/application/commands"
	"wordplay/internal/application/importer"
	"wordplay/internal/ports"
)

// RegisterWriteTools adds all question bank mutation tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, bank ports.QuestionBank, logger *slog.Logger) {
	s.AddTool(createFolderTool(), createFolderHandler(bank))
	s.AddTool(resolveFolderTool(), resolveFolderHandler(bank))
	s.AddTool(renameFolderTool(), renameFolderHandler(bank))
	s.AddTool(moveFolderTool(), moveFolderHandler(bank))
	s.AddTool(deleteFolderTool(), deleteFolderHandler(bank))
	s.AddTool(addQuestionTool(), addQuestionHandler(bank))
	s.AddTool(updateQuestionTool(), updateQuestionHandler(bank))
	s.AddTool(deleteQuestionTool(), deleteQuestionHandler(bank))
	s.AddTool(importTool(), importHandler(bank, logger))
}

// --- create_folder ---

func createFolderTool() mcp.Tool {
	return mcp.NewTool("create_folder",
		mcp.WithDescription("Create a folder at the root level or under a parent folder."),
		mcp.WithString("name",
			mcp.Description("Folder name"),
			mcp.Required(),
		),
		mcp.WithString("parent_id",
			mcp.Description("Parent folder ID. Omit for the root level."),
		),
		mcp.WithString("color",
			mcp.Description("Palette colour. Omit to take the next one."),
		),
	)
}

func createFolderHandler(bank ports.QuestionBank) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewCreateFolderCommand(bank,
			req.GetString("name", ""), req.GetString("color", ""), req.GetString("parent_id", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- resolve_folder ---

func resolveFolderTool() mcp.Tool {
	return mcp.NewTool("resolve_folder",
		mcp.WithDescription("Find the folder at a slash-delimited path like Grammar/Tenses/Past, creating any missing level. Returns the folder ID."),
		mcp.WithString("path",
			mcp.Description("Folder path"),
			mcp.Required(),
		),
	)
}

func resolveFolderHandler(bank ports.QuestionBank) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewResolveFolderCommand(bank, req.GetString("path", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- rename_folder ---

func renameFolderTool() mcp.Tool {
	return mcp.NewTool("rename_folder",
		mcp.WithDescription("Rename a folder, optionally changing its colour."),
		mcp.WithString("id",
			mcp.Description("Folder ID"),
			mcp.Required(),
		),
		mcp.WithString("new_name",
			mcp.Description("New folder name"),
			mcp.Required(),
		),
		mcp.WithString("color",
			mcp.Description("New palette colour. Omit to keep the current one."),
		),
	)
}

func renameFolderHandler(bank ports.QuestionBank) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewRenameFolderCommand(bank,
			req.GetString("id", ""), req.GetString("new_name", ""), req.GetString("color", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- move_folder ---

func moveFolderTool() mcp.Tool {
	return mcp.NewTool("move_folder",
		mcp.WithDescription("Move a folder, with its whole subtree, under another folder or to the root level. A folder cannot move into its own subtree."),
		mcp.WithString("source_id",
			mcp.Description("ID of the folder to move"),
			mcp.Required(),
		),
		mcp.WithString("destination_id",
			mcp.Description("ID of the new parent folder. Omit for the root level."),
		),
	)
}

func moveFolderHandler(bank ports.QuestionBank) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewMoveFolderCommand(bank, req.GetString("source_id", ""), req.GetString("destination_id", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete_folder ---

func deleteFolderTool() mcp.Tool {
	return mcp.NewTool("delete_folder",
		mcp.WithDescription("Delete a folder and all of its subfolders. Their questions move to unfiled unless purge is set."),
		mcp.WithString("id",
			mcp.Description("Folder ID"),
			mcp.Required(),
		),
		mcp.WithBoolean("purge",
			mcp.Description("Delete the subtree's questions as well"),
		),
	)
}

func deleteFolderHandler(bank ports.QuestionBank) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewDeleteFolderCommand(bank, req.GetString("id", ""), req.GetBool("purge", false))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- add_question ---

func addQuestionTool() mcp.Tool {
	return mcp.NewTool("add_question",
		mcp.WithDescription("Add one question. The record uses the import document fields (type, sentence, translation, words, wordTranslations, word, phonetic, meaning, distractors, blanks, question, answer, showQuestion, folderName, folderId); call example for samples."),
		mcp.WithObject("record",
			mcp.Description("Question record"),
			mcp.Required(),
		),
	)
}

func addQuestionHandler(bank ports.QuestionBank) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		record, err := recordArgument(req, "record")
		if err != nil {
			return toolError(err)
		}

		result, err := commands.NewAddQuestionCommand(bank, record).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- update_question ---

func updateQuestionTool() mcp.Tool {
	return mcp.NewTool("update_question",
		mcp.WithDescription("Update fields of a question. Only the given fields change; the result must still be a valid question of its type. Set folderId to an empty string to unfile it."),
		mcp.WithString("id",
			mcp.Description("Question ID"),
			mcp.Required(),
		),
		mcp.WithObject("fields",
			mcp.Description("Fields to change, named as in import records"),
			mcp.Required(),
		),
	)
}

func updateQuestionHandler(bank ports.QuestionBank) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		fields, err := recordArgument(req, "fields")
		if err != nil {
			return toolError(err)
		}
		patch, err := importer.PatchFromRecord(fields)
		if err != nil {
			return toolError(err)
		}

		result, err := commands.NewUpdateQuestionCommand(bank, req.GetString("id", ""), patch).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete_question ---

func deleteQuestionTool() mcp.Tool {
	return mcp.NewTool("delete_question",
		mcp.WithDescription("Delete a question by ID."),
		mcp.WithString("id",
			mcp.Description("Question ID"),
			mcp.Required(),
		),
	)
}

func deleteQuestionHandler(bank ports.QuestionBank) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewDeleteQuestionCommand(bank, req.GetString("id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- import ---

func importTool() mcp.Tool {
	return mcp.NewTool("import",
		mcp.WithDescription("Import a JSON or YAML list of question records. Folders named by folderName are created as needed; invalid records are skipped and reported."),
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

func importHandler(bank ports.QuestionBank, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewImportCommand(bank, logger,
			[]byte(req.GetString("document", "")), importer.Format(req.GetString("format", "")))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		msg := result.Message()
		for _, issue := range result.Issues {
			msg += "\n  ! " + issue.Error()
		}
		return mcp.NewToolResultText(msg), nil
	}
}

func recordArgument(req mcp.CallToolRequest, key string) (importer.Record, error) {
	raw, ok := req.GetArguments()[key]
	if !ok {
		return nil, fmt.Errorf("%s is required", key)
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s must be an object", key)
	}
	return importer.Record(m), nil
}
