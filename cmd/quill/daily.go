package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/quill/internal/note"
)

// newTodayCmd creates the today command.
func newTodayCmd() *cobra.Command {
	return newDailyCmdInternal(0, nil)
}

// newTomorrowCmd creates the tomorrow command.
func newTomorrowCmd() *cobra.Command {
	return newDailyCmdInternal(1, nil)
}

// newDailyCmdInternal creates a date-named note command for today (offset 0)
// or tomorrow (offset 1). If creator is nil one is built from the config.
func newDailyCmdInternal(offset int, creator *note.Creator) *cobra.Command {
	use, day := "today", "today's"
	if offset == 1 {
		use, day = "tomorrow", "tomorrow's"
	}

	return &cobra.Command{
		Use:   use,
		Short: "Create " + day + " note (YYYY-MM-DD.md)",
		Long: `Create the note named after ` + day + ` local date, e.g. 2024-03-01.md.

The note goes in the current directory, or in daily_dir when set in
config.yaml (or QUILL_DAILY_DIR). It gets front-matter only. An existing
note for that date is left untouched and reported as an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDaily(cmd, creator, offset)
		},
	}
}

func runDaily(cmd *cobra.Command, creator *note.Creator, offset int) error {
	printer := newPrinter(cmd)

	if creator == nil {
		cfg, err := loadConfig(printer)
		if err != nil {
			return err
		}
		creator = &note.Creator{Dir: cfg.Daily()}
	}

	create := creator.Today
	if offset == 1 {
		create = creator.Tomorrow
	}

	created, err := create()
	if err != nil {
		return fail(printer, err)
	}
	return printCreated(printer, created)
}
