package note

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDailyName(t *testing.T) {
	tests := []struct {
		name   string
		now    time.Time
		offset int
		want   string
	}{
		{name: "today", now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local), offset: 0, want: "2024-03-01.md"},
		{name: "tomorrow", now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local), offset: 1, want: "2024-03-02.md"},
		{name: "leap day", now: time.Date(2024, 2, 28, 23, 59, 0, 0, time.Local), offset: 1, want: "2024-02-29.md"},
		{name: "year end", now: time.Date(2025, 12, 31, 8, 0, 0, 0, time.Local), offset: 1, want: "2026-01-01.md"},
		{name: "keeps zone date", now: time.Date(2024, 3, 1, 0, 30, 0, 0, seoul), offset: 0, want: "2024-03-01.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DailyName(tt.now, tt.offset); got != tt.want {
				t.Errorf("DailyName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTodayAndTomorrow(t *testing.T) {
	dir := t.TempDir()
	creator := &Creator{
		Dir: dir,
		Now: fixedClock(time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local)),
	}

	today, err := creator.Today()
	if err != nil {
		t.Fatalf("Today() error = %v", err)
	}
	if today.Path != filepath.Join(dir, "2024-03-01.md") {
		t.Errorf("Today().Path = %q", today.Path)
	}

	tomorrow, err := creator.Tomorrow()
	if err != nil {
		t.Fatalf("Tomorrow() error = %v", err)
	}
	if tomorrow.Path != filepath.Join(dir, "2024-03-02.md") {
		t.Errorf("Tomorrow().Path = %q", tomorrow.Path)
	}

	content := readFile(t, tomorrow.Path)
	if !strings.HasPrefix(content, "---\ntitle: \"2024-03-02.md\"\n") {
		t.Errorf("tomorrow content = %q", content)
	}
	if !strings.HasSuffix(content, "\n---\n") {
		t.Errorf("daily note should have no body: %q", content)
	}
}

func TestToday_WorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	creator := &Creator{Now: fixedClock(time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local))}

	n, err := creator.Today()
	if err != nil {
		t.Fatalf("Today() error = %v", err)
	}
	if n.Path != "2024-03-01.md" {
		t.Errorf("Path = %q, want relative 2024-03-01.md", n.Path)
	}
	if _, err := os.Stat(filepath.Join(dir, "2024-03-01.md")); err != nil {
		t.Errorf("note not created in working directory: %v", err)
	}
}

func TestToday_AlreadyExists(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "2024-03-01.md")
	if err := os.WriteFile(existing, []byte("written by hand"), 0o600); err != nil {
		t.Fatal(err)
	}
	creator := &Creator{Dir: dir, Now: fixedClock(time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local))}

	_, err := creator.Today()
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("Today() error = %v, want ErrAlreadyExists", err)
	}
	if got := readFile(t, existing); got != "written by hand" {
		t.Errorf("existing note changed: %q", got)
	}
}

func TestToday_CreatesDailyDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "journal", "2024")
	creator := &Creator{Dir: dir, Now: fixedClock(time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local))}

	if _, err := creator.Today(); err != nil {
		t.Fatalf("Today() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "2024-03-01.md")); err != nil {
		t.Errorf("note not created: %v", err)
	}
}

func TestDaily_NameAndTimestampShareClockRead(t *testing.T) {
	calls := 0
	times := []time.Time{
		time.Date(2024, 3, 1, 23, 59, 59, 0, time.Local),
		time.Date(2024, 3, 2, 0, 0, 1, 0, time.Local),
	}
	creator := &Creator{
		Dir: t.TempDir(),
		Now: func() time.Time {
			now := times[calls]
			calls++
			return now
		},
	}

	n, err := creator.Today()
	if err != nil {
		t.Fatalf("Today() error = %v", err)
	}
	if calls != 1 {
		t.Errorf("clock read %d times, want 1", calls)
	}
	if filepath.Base(n.Path) != "2024-03-01.md" || n.CreatedAt.Day() != 1 {
		t.Errorf("note = %+v, want name and timestamp on 2024-03-01", n)
	}
}
