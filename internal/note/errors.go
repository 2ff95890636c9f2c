package note

import "errors"

// Sentinels matched by the typed errors below.
var (
	ErrAlreadyExists   = errors.New("note already exists")
	ErrInvalidTemplate = errors.New("invalid template")
)

// Template failure reasons.
const (
	ReasonIsDirectory  = "is a directory"
	ReasonDoesNotExist = "doesn't exist"
	ReasonNotRegular   = "is not a regular file"
	ReasonUnreadable   = "can't be read"
)

// ExistsError reports a note path that is already taken.
type ExistsError struct {
	Path string
}

func (e *ExistsError) Error() string {
	return quote(e.Path) + " already exists"
}

// Is matches ErrAlreadyExists.
func (e *ExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// TemplateError reports a template path that cannot supply a note body.
type TemplateError struct {
	Path   string
	Reason string
	Err    error
}

func (e *TemplateError) Error() string {
	return "template " + quote(e.Path) + " " + e.Reason
}

// Is matches ErrInvalidTemplate.
func (e *TemplateError) Is(target error) bool {
	return target == ErrInvalidTemplate
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

// quote wraps a path in double quotes without escaping it, so the message
// shows the path exactly as the user typed it.
func quote(path string) string {
	return `"` + path + `"`
}
