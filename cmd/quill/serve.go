package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/quill/internal/config"
	"github.com/gorewood/quill/internal/export"
	quillmcp "github.com/gorewood/quill/internal/mcp"
	"github.com/gorewood/quill/internal/note"
	"github.com/gorewood/quill/internal/output"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run quill as a Model Context Protocol (MCP) server over stdio.

This exposes note creation and export as MCP tools for any MCP-capable
agent environment.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "quill": {
        "command": "quill",
        "args": ["serve"]
      }
    }
  }

Available tools: new_note, today, tomorrow, export_note`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := output.NewPrinter(cmd.ErrOrStderr(), false, false)

			cfg, err := loadConfig(printer)
			if err != nil {
				return err
			}
			server, err := newMCPServer(cfg)
			if err != nil {
				return fail(printer, err)
			}
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}

// newMCPServer builds the MCP server from the user's config, the same way
// the CLI commands build their creator and exporter.
func newMCPServer(cfg *config.Config) (*mcp.Server, error) {
	resources, err := cfg.Resources()
	if err != nil {
		return nil, err
	}

	creator := &note.Creator{Dir: cfg.Daily()}
	exporter := &export.Exporter{
		Pandoc:       cfg.Pandoc,
		Typst:        cfg.Typst,
		ResourcesDir: resources,
	}
	return quillmcp.NewServer(buildVersion(), creator, exporter), nil
}
