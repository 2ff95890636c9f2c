package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorewood/quill/internal/note"
	"github.com/gorewood/quill/internal/output"
)

func TestDailyCommands_FixedClock(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		want   string
	}{
		{name: "today", offset: 0, want: "2024-03-01.md"},
		{name: "tomorrow", offset: 1, want: "2024-03-02.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			creator := &note.Creator{
				Dir: dir,
				Now: func() time.Time { return time.Date(2024, 3, 1, 21, 0, 0, 0, time.Local) },
			}

			stdout, stderr, err := execute(newTestRoot(newDailyCmdInternal(tt.offset, creator)), tt.name)
			if err != nil {
				t.Fatalf("Execute() error = %v, stderr = %q", err, stderr)
			}

			want := filepath.Join(dir, tt.want)
			if stdout != `Created "`+want+`"`+"\n" {
				t.Errorf("stdout = %q", stdout)
			}
			if _, err := os.Stat(want); err != nil {
				t.Errorf("note not created: %v", err)
			}
		})
	}
}

func TestDailyCommands_Names(t *testing.T) {
	if got := newTodayCmd().Use; got != "today" {
		t.Errorf("today Use = %q", got)
	}
	if got := newTomorrowCmd().Use; got != "tomorrow" {
		t.Errorf("tomorrow Use = %q", got)
	}
}

func TestTodayCommand_AlreadyExists(t *testing.T) {
	dir := t.TempDir()
	creator := &note.Creator{
		Dir: dir,
		Now: func() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local) },
	}
	existing := filepath.Join(dir, "2024-03-01.md")
	if err := os.WriteFile(existing, []byte("morning notes"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, stderr, err := execute(newTestRoot(newDailyCmdInternal(0, creator)), "today")
	if output.GetExitCode(err) != output.ExitUserError {
		t.Fatalf("exit code = %d, want 1 (err %v)", output.GetExitCode(err), err)
	}
	if !strings.Contains(stderr, "2024-03-01.md") {
		t.Errorf("stderr = %q, want the note path", stderr)
	}
}

func TestTodayCommand_UsesDailyDirFromConfig(t *testing.T) {
	isolateConfig(t)
	dailyDir := filepath.Join(t.TempDir(), "journal")
	t.Setenv("QUILL_DAILY_DIR", dailyDir)

	if _, stderr, err := execute(newRootCmd(), "today"); err != nil {
		t.Fatalf("Execute() error = %v, stderr = %q", err, stderr)
	}

	entries, err := os.ReadDir(dailyDir)
	if err != nil {
		t.Fatalf("daily dir not created: %v", err)
	}
	if len(entries) != 1 || !strings.HasSuffix(entries[0].Name(), ".md") {
		t.Errorf("daily dir entries = %v, want one note", entries)
	}
	if _, err := time.Parse("2006-01-02.md", entries[0].Name()); err != nil {
		t.Errorf("note name %q is not a date: %v", entries[0].Name(), err)
	}
}

func TestTodayCommand_BadConfig(t *testing.T) {
	dir := isolateConfig(t)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("daily_dir: [unclosed\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, stderr, err := execute(newRootCmd(), "today")
	if output.GetExitCode(err) != output.ExitUserError {
		t.Fatalf("exit code = %d, want 1 (err %v)", output.GetExitCode(err), err)
	}
	if !strings.Contains(stderr, "config.yaml") {
		t.Errorf("stderr = %q, want the config path", stderr)
	}
}
