// Package mcp provides a Model Context Protocol server for quill.
// It exposes note creation and export as MCP tools over stdio.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/quill/internal/export"
	"github.com/gorewood/quill/internal/note"
)

// NewServer creates an MCP server with all quill tools registered.
// The exporter's Echo and Runner are replaced per call so nothing reaches
// the stdio transport.
func NewServer(version string, creator *note.Creator, exporter *export.Exporter) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "quill",
		Version: version,
	}, nil)
	registerTools(server, creator, exporter)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// createAnnotations marks tools that only add new files.
func createAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// exportAnnotations marks the export tool, which may overwrite its output file.
func exportAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all quill tools to the server.
func registerTools(server *mcp.Server, creator *note.Creator, exporter *export.Exporter) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "new_note",
		Description: "Create a Markdown note with title/created_at front-matter. Fails if the path already exists. An optional template file is appended verbatim.",
		Annotations: createAnnotations(),
	}, handleNewNote(creator))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "today",
		Description: "Create the daily note named after today's local date (YYYY-MM-DD.md). Fails if it already exists.",
		Annotations: createAnnotations(),
	}, handleToday(creator))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tomorrow",
		Description: "Create the daily note named after tomorrow's local date (YYYY-MM-DD.md). Fails if it already exists.",
		Annotations: createAnnotations(),
	}, handleTomorrow(creator))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_note",
		Description: "Convert a note to HTML or PDF with pandoc (typst for PDF). The output extension (.html or .pdf) selects the format.",
		Annotations: exportAnnotations(),
	}, handleExport(exporter))
}
