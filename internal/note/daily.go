package note

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DateLayout names daily notes.
const DateLayout = "2006-01-02"

// DailyName returns "<YYYY-MM-DD>.md" for the calendar day offsetDays after t.
func DailyName(t time.Time, offsetDays int) string {
	return t.AddDate(0, 0, offsetDays).Format(DateLayout) + ".md"
}

// Today creates the note for the current local date.
func (c *Creator) Today() (*Note, error) {
	return c.daily(0)
}

// Tomorrow creates the note for the next local date.
func (c *Creator) Tomorrow() (*Note, error) {
	return c.daily(1)
}

// daily never takes a template. The clock is read once so the file name
// and created_at agree across midnight.
func (c *Creator) daily(offsetDays int) (*Note, error) {
	now := c.now()
	clock := func() time.Time { return now }

	path := DailyName(now, offsetDays)
	if c.Dir != "" {
		if err := os.MkdirAll(c.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating daily directory %s: %w", c.Dir, err)
		}
		path = filepath.Join(c.Dir, path)
	}
	return c.create(path, "", clock)
}
