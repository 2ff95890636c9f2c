package note

import (
	"errors"
	"io/fs"
	"os"
)

// ReadTemplate returns the full contents of the template at path, or nil
// when path is empty. The file is read once and not transformed.
func ReadTemplate(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &TemplateError{Path: path, Reason: ReasonDoesNotExist, Err: err}
		}
		return nil, &TemplateError{Path: path, Reason: ReasonUnreadable, Err: err}
	}
	if info.IsDir() {
		return nil, &TemplateError{Path: path, Reason: ReasonIsDirectory}
	}
	if !info.Mode().IsRegular() {
		return nil, &TemplateError{Path: path, Reason: ReasonNotRegular}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &TemplateError{Path: path, Reason: ReasonUnreadable, Err: err}
	}
	return data, nil
}
