package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/quill/internal/export"
	"github.com/gorewood/quill/internal/output"
)

// newExportCmd creates the export command.
func newExportCmd() *cobra.Command {
	return newExportCmdInternal(nil)
}

// newExportCmdInternal creates the export command with optional exporter injection.
// If exporter is nil, one is built from the config when the command runs.
func newExportCmdInternal(exporter *export.Exporter) *cobra.Command {
	return &cobra.Command{
		Use:   "export <input> <output>",
		Short: "Export a note to HTML or PDF via pandoc",
		Long: `Export a Markdown note to HTML or PDF using pandoc.

The output extension picks the format:
  .html  standalone page styled with the bundled style.css
  .pdf   rendered by typst with the bundled template.typ

pandoc must be on PATH; PDF export also needs typst. The pandoc command
line is printed before it runs.

Examples:
  quill export notes/today.md today.html
  quill export notes/today.md today.pdf
  quill export ideas.md ideas.pdf --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, exporter, args[0], args[1])
		},
	}
}

func runExport(cmd *cobra.Command, exporter *export.Exporter, input, out string) error {
	printer := newPrinter(cmd)

	exp, err := ensureExporter(printer, exporter)
	if err != nil {
		return err
	}

	// Stdout carries the echoed command line in human mode and only the JSON
	// result in JSON mode, so converter chatter moves to stderr there.
	if printer.IsJSON() {
		exp.Echo = nil
		if exp.Runner == nil {
			exp.Runner = &export.ExecRunner{Stdout: cmd.ErrOrStderr(), Stderr: cmd.ErrOrStderr()}
		}
	} else {
		exp.Echo = cmd.OutOrStdout()
		if exp.Runner == nil {
			exp.Runner = &export.ExecRunner{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}
		}
	}

	result, err := exp.Export(cmd.Context(), input, out)
	if err != nil {
		return fail(printer, err)
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"status":  "exported",
			"format":  result.Format,
			"input":   input,
			"output":  result.Output,
			"command": result.Command,
		})
	}
	printer.Print("Exported %s\n", printer.Quoted(result.Output))
	return nil
}

// ensureExporter returns a private copy of exporter, or one configured from
// config.yaml when exporter is nil.
func ensureExporter(printer *output.Printer, exporter *export.Exporter) (*export.Exporter, error) {
	if exporter != nil {
		exp := *exporter
		return &exp, nil
	}

	cfg, err := loadConfig(printer)
	if err != nil {
		return nil, err
	}
	resources, err := cfg.Resources()
	if err != nil {
		return nil, fail(printer, err)
	}

	return &export.Exporter{
		Pandoc:       cfg.Pandoc,
		Typst:        cfg.Typst,
		ResourcesDir: resources,
	}, nil
}
