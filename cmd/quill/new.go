package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/quill/internal/note"
	"github.com/gorewood/quill/internal/output"
)

// newNewCmd creates the new command.
func newNewCmd() *cobra.Command {
	return newNewCmdInternal(nil)
}

// newNewCmdInternal creates the new command with optional creator injection.
func newNewCmdInternal(creator *note.Creator) *cobra.Command {
	var templateFlag string

	cmd := &cobra.Command{
		Use:   "new <path>",
		Short: "Create a note with front-matter",
		Long: `Create a Markdown note at <path> with a title/created_at front-matter block.

The title is the file's base name. With --template, the template file's
contents are appended verbatim after the front-matter. An existing file is
never overwritten.

Examples:
  quill new ideas.md                       # Front-matter only
  quill new standup.md -t ~/tmpl/daily.md  # Seed from a template`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, creator, args[0], templateFlag)
		},
	}

	cmd.Flags().StringVarP(&templateFlag, "template", "t", "", "Template file appended after the front-matter")

	return cmd
}

func runNew(cmd *cobra.Command, creator *note.Creator, path, templatePath string) error {
	printer := newPrinter(cmd)
	if creator == nil {
		creator = &note.Creator{}
	}

	created, err := creator.Create(path, templatePath)
	if err != nil {
		return fail(printer, err)
	}

	return printCreated(printer, created)
}

// printCreated reports a created note as a confirmation line or a JSON object.
func printCreated(printer *output.Printer, created *note.Note) error {
	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"status":     "created",
			"path":       created.Path,
			"title":      created.Title,
			"created_at": created.CreatedAt.Format(note.TimestampLayout),
		})
	}
	printer.Print("Created %s\n", printer.Quoted(created.Path))
	return nil
}
