package mcp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/quill/internal/export"
	"github.com/gorewood/quill/internal/note"
)

// --- Note tools ---

// NewNoteInput is the input for the new_note tool.
type NewNoteInput struct {
	Path     string `json:"path"               jsonschema:"path of the note to create; must not exist"`
	Template string `json:"template,omitempty" jsonschema:"optional path to a template file appended after the front-matter"`
}

// DailyInput is the input for the today and tomorrow tools (no parameters needed).
type DailyInput struct{}

// NoteOutput describes a created note.
type NoteOutput struct {
	Path      string `json:"path"       jsonschema:"path of the created note"`
	Title     string `json:"title"      jsonschema:"escaped title written to the front-matter"`
	CreatedAt string `json:"created_at" jsonschema:"RFC 3339 creation timestamp"`
}

func toNoteOutput(n *note.Note) NoteOutput {
	return NoteOutput{
		Path:      n.Path,
		Title:     n.Title,
		CreatedAt: n.CreatedAt.Format(note.TimestampLayout),
	}
}

func handleNewNote(creator *note.Creator) mcp.ToolHandlerFor[NewNoteInput, NoteOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input NewNoteInput) (*mcp.CallToolResult, NoteOutput, error) {
		if input.Path == "" {
			return nil, NoteOutput{}, errors.New("path is required")
		}
		created, err := creator.Create(input.Path, input.Template)
		if err != nil {
			return nil, NoteOutput{}, err
		}
		return nil, toNoteOutput(created), nil
	}
}

func handleToday(creator *note.Creator) mcp.ToolHandlerFor[DailyInput, NoteOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ DailyInput) (*mcp.CallToolResult, NoteOutput, error) {
		created, err := creator.Today()
		if err != nil {
			return nil, NoteOutput{}, err
		}
		return nil, toNoteOutput(created), nil
	}
}

func handleTomorrow(creator *note.Creator) mcp.ToolHandlerFor[DailyInput, NoteOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ DailyInput) (*mcp.CallToolResult, NoteOutput, error) {
		created, err := creator.Tomorrow()
		if err != nil {
			return nil, NoteOutput{}, err
		}
		return nil, toNoteOutput(created), nil
	}
}

// --- Export tool ---

// ExportInput is the input for the export_note tool.
type ExportInput struct {
	Input  string `json:"input"  jsonschema:"path of the Markdown note to convert"`
	Output string `json:"output" jsonschema:"output path ending in .html or .pdf"`
}

// ExportOutput is the output for the export_note tool.
type ExportOutput struct {
	Format  string `json:"format"        jsonschema:"html or pdf"`
	Output  string `json:"output"        jsonschema:"path of the written file"`
	Command string `json:"command"       jsonschema:"converter command line that was run"`
	Log     string `json:"log,omitempty" jsonschema:"converter output, if any"`
}

func handleExport(exporter *export.Exporter) mcp.ToolHandlerFor[ExportInput, ExportOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ExportInput) (*mcp.CallToolResult, ExportOutput, error) {
		if input.Input == "" || input.Output == "" {
			return nil, ExportOutput{}, errors.New("input and output are required")
		}

		var converterLog bytes.Buffer
		exp := *exporter
		exp.Echo = nil
		if exp.Runner == nil {
			exp.Runner = &export.ExecRunner{Stdout: &converterLog, Stderr: &converterLog}
		}

		result, err := exp.Export(ctx, input.Input, input.Output)
		logText := strings.TrimSpace(converterLog.String())
		if err != nil {
			if logText != "" && errors.Is(err, export.ErrConversionFailed) {
				return nil, ExportOutput{}, fmt.Errorf("%w\n%s", err, logText)
			}
			return nil, ExportOutput{}, err
		}

		return nil, ExportOutput{
			Format:  string(result.Format),
			Output:  result.Output,
			Command: export.CommandLine(result.Command),
			Log:     logText,
		}, nil
	}
}
