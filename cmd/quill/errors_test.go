package main

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/gorewood/quill/internal/export"
	"github.com/gorewood/quill/internal/note"
	"github.com/gorewood/quill/internal/output"
)

func TestToExitError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "exists", err: &note.ExistsError{Path: "a.md"}, wantCode: output.ExitUserError},
		{name: "template", err: &note.TemplateError{Path: "t", Reason: note.ReasonDoesNotExist}, wantCode: output.ExitUserError},
		{name: "format", err: &export.UnsupportedFormatError{Path: "o.txt", Ext: ".txt"}, wantCode: output.ExitUserError},
		{name: "tool", err: &export.MissingToolError{Tool: "pandoc", Name: "pandoc"}, wantCode: output.ExitUserError},
		{name: "conversion", err: &export.ConversionError{Command: []string{"pandoc"}, ExitCode: 64}, wantCode: output.ExitUserError},
		{name: "wrapped domain", err: fmt.Errorf("ctx: %w", &note.ExistsError{Path: "a.md"}), wantCode: output.ExitUserError},
		{name: "io", err: fmt.Errorf("creating note: %w", fs.ErrPermission), wantCode: output.ExitUserError},
		{name: "already classified", err: output.NewUserError("bad flag"), wantCode: output.ExitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toExitError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", got.Code, tt.wantCode)
			}
			if got.Message != tt.err.Error() {
				t.Errorf("Message = %q, want %q", got.Message, tt.err.Error())
			}
			if !errors.Is(got, tt.err) {
				t.Error("classified error should wrap the original")
			}
		})
	}
}
