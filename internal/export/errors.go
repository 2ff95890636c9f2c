package export

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below.
var (
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrMissingTool       = errors.New("required tool not found")
	ErrConversionFailed  = errors.New("conversion failed")
)

// UnsupportedFormatError reports an output path whose extension is not .html or .pdf.
type UnsupportedFormatError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Ext == "" {
		return quote(e.Path) + " has no extension; export supports .html and .pdf"
	}
	return quote(e.Path) + ": unsupported format " + quote(e.Ext) + "; export supports .html and .pdf"
}

// Is matches ErrUnsupportedFormat.
func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// MissingToolError reports a converter binary that could not be located.
type MissingToolError struct {
	// Tool is the logical tool: "pandoc" or "typst".
	Tool string
	// Name is what was looked up, which differs from Tool when configured.
	Name string
	Err  error
}

func (e *MissingToolError) Error() string {
	if e.Name != "" && e.Name != e.Tool {
		return e.Tool + " not found (looked for " + quote(e.Name) + "); install it or fix the quill config"
	}
	return fmt.Sprintf("%s not found in PATH; install it to export", e.Tool)
}

// Is matches ErrMissingTool.
func (e *MissingToolError) Is(target error) bool {
	return target == ErrMissingTool
}

func (e *MissingToolError) Unwrap() error {
	return e.Err
}

// ConversionError reports a converter run that did not succeed.
type ConversionError struct {
	Command []string
	// ExitCode is the converter's exit status, or -1 if it never ran to completion.
	ExitCode int
	Err      error
}

func (e *ConversionError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("%s exited with status %d", e.Command[0], e.ExitCode)
	}
	return fmt.Sprintf("running %s: %v", e.Command[0], e.Err)
}

// Is matches ErrConversionFailed.
func (e *ConversionError) Is(target error) bool {
	return target == ErrConversionFailed
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// quote wraps a path or name in double quotes, leaving it unescaped.
func quote(s string) string {
	return `"` + s + `"`
}
