package note

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// TimestampLayout is RFC 3339 with a numeric UTC offset, never "Z".
const TimestampLayout = "2006-01-02T15:04:05-07:00"

// Note describes a note file that was just created.
type Note struct {
	Path      string    `json:"path"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// Creator creates notes. The zero value is ready to use.
type Creator struct {
	// Dir is where Today and Tomorrow place their notes. Empty means the
	// working directory. Create ignores it.
	Dir string
	// Now supplies the creation instant; defaults to time.Now.
	Now func() time.Time
}

func (c *Creator) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Create writes a new note at path. The template, if templatePath is not
// empty, is resolved before anything is written and appended verbatim after
// the front-matter.
func (c *Creator) Create(path, templatePath string) (*Note, error) {
	return c.create(path, templatePath, c.now)
}

func (c *Creator) create(path, templatePath string, now func() time.Time) (*Note, error) {
	if path == "" {
		return nil, errors.New("note path is empty")
	}

	body, err := ReadTemplate(templatePath)
	if err != nil {
		return nil, err
	}

	n := &Note{
		Path:      path,
		Title:     Title(path),
		CreatedAt: now(),
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, &ExistsError{Path: path}
		}
		return nil, fmt.Errorf("creating note %s: %w", path, err)
	}

	if err := write(file, n, body); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("writing note %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("writing note %s: %w", path, err)
	}

	return n, nil
}

func write(w io.Writer, n *Note, body []byte) error {
	if _, err := io.WriteString(w, FrontMatter(n.Title, n.CreatedAt)); err != nil {
		return err
	}
	if len(body) == 0 {
		return nil
	}
	_, err := w.Write(body)
	return err
}

// Title derives a note title from the base name of path, escaping double quotes.
func Title(path string) string {
	return strings.ReplaceAll(filepath.Base(path), `"`, `\"`)
}

// FrontMatter renders the metadata block. title must already be escaped.
func FrontMatter(title string, createdAt time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString(`title: "` + title + "\"\n")
	b.WriteString("created_at: " + createdAt.Format(TimestampLayout) + "\n")
	b.WriteString("---\n")
	return b.String()
}
