// Package main provides the entry point for the quill CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/quill/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// colorMode reads the --color persistent flag, defaulting to auto.
func colorMode(cmd *cobra.Command) string {
	flag := cmd.Flags().Lookup("color")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("color")
	}
	if flag == nil {
		return output.ColorAuto
	}
	return flag.Value.String()
}

// newPrinter builds the printer every subcommand reports through: stdout for
// results, stderr for human-mode errors.
func newPrinter(cmd *cobra.Command) *output.Printer {
	isTTY := output.ResolveColorMode(colorMode(cmd), output.IsTTY(cmd.OutOrStdout()))
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), isTTY).WithStderr(cmd.ErrOrStderr())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	err := executeRoot(context.Background(), newRootCmd())
	return output.GetExitCode(err)
}

// executeRoot runs root through fang. Commands report their own failures, so
// fang only prints what never reached a command, such as usage errors.
func executeRoot(ctx context.Context, root *cobra.Command) error {
	return fang.Execute(ctx, root,
		fang.WithVersion(buildVersion()),
		fang.WithErrorHandler(newErrorHandler(root)),
	)
}

// newErrorHandler prints errors that were not already reported through a
// Printer, in the same format the commands use.
func newErrorHandler(root *cobra.Command) fang.ErrorHandler {
	return func(w io.Writer, _ fang.Styles, err error) {
		var exitErr *output.ExitError
		if errors.As(err, &exitErr) {
			return
		}
		isTTY := output.ResolveColorMode(colorMode(root), output.IsTTY(root.ErrOrStderr()))
		printer := output.NewPrinter(root.OutOrStdout(), isJSONMode(root), isTTY).WithStderr(w)
		printer.Error(output.NewUserErrorWithCause(err.Error(), err))
	}
}

// newRootCmd creates the root command for the quill CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quill",
		Short: "Create and export Markdown notes",
		Long: `Quill - a small personal note tool.

Quill creates Markdown notes with a title/created_at front-matter block,
optionally seeded from a template, and exports them to HTML or PDF
through pandoc (with typst as the PDF engine).

Notes are never overwritten: creating a note that already exists fails
and leaves the file untouched.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := output.ValidateColorMode(colorMode(cmd)); err != nil {
				output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), false).
					WithStderr(cmd.ErrOrStderr()).Error(err)
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'quill --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", output.ColorAuto, "Colorize output: auto, always, never")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "notes", Title: "Note Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "export", Title: "Export Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newNewCmd(), "notes")
	addGroupedCommand(cmd, newTodayCmd(), "notes")
	addGroupedCommand(cmd, newTomorrowCmd(), "notes")

	addGroupedCommand(cmd, newExportCmd(), "export")

	addGroupedCommand(cmd, newDoctorCmd(), "admin")
	addGroupedCommand(cmd, newServeCmd(), "admin")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
