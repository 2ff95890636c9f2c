package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// Exporter converts notes by running pandoc. The zero value looks up
// "pandoc" and "typst" on PATH, runs them with ExecRunner and echoes nothing.
type Exporter struct {
	// Pandoc and Typst are binary names or paths; empty means the bare tool name.
	Pandoc string
	Typst  string
	// ResourcesDir holds style.css and template.typ.
	ResourcesDir string

	LookPath func(file string) (string, error)
	Runner   Runner
	// Echo receives the command line before it runs.
	Echo io.Writer
}

// Result describes a completed export.
type Result struct {
	Format  Format   `json:"format"`
	Output  string   `json:"output"`
	Command []string `json:"command"`
}

// Export converts input to output. Checks run in order: output format,
// pandoc, then typst for PDF only.
func (e *Exporter) Export(ctx context.Context, input, output string) (*Result, error) {
	format, err := FormatFromPath(output)
	if err != nil {
		return nil, err
	}

	pandoc := orDefault(e.Pandoc, ToolPandoc)
	pandocPath, err := e.lookPath(pandoc)
	if err != nil {
		return nil, &MissingToolError{Tool: ToolPandoc, Name: pandoc, Err: err}
	}

	inv := Invocation{
		Input:        input,
		Output:       output,
		ResourcesDir: e.ResourcesDir,
	}

	if format == FormatPDF {
		typst := orDefault(e.Typst, ToolTypst)
		typstPath, lookErr := e.lookPath(typst)
		if lookErr != nil {
			return nil, &MissingToolError{Tool: ToolTypst, Name: typst, Err: lookErr}
		}
		// A configured typst must be the one pandoc runs, not whatever is on PATH.
		if typst != ToolTypst {
			inv.PDFEngine = typstPath
		}
	}

	args := Args(format, inv)
	command := append([]string{pandoc}, args...)

	if e.Echo != nil {
		if _, err := fmt.Fprintln(e.Echo, CommandLine(command)); err != nil {
			return nil, fmt.Errorf("echoing command: %w", err)
		}
	}

	if err := e.runner().Run(ctx, pandocPath, args); err != nil {
		return nil, conversionError(command, err)
	}

	return &Result{Format: format, Output: output, Command: command}, nil
}

func (e *Exporter) lookPath(file string) (string, error) {
	if e.LookPath != nil {
		return e.LookPath(file)
	}
	return exec.LookPath(file)
}

func (e *Exporter) runner() Runner {
	if e.Runner != nil {
		return e.Runner
	}
	return &ExecRunner{}
}

func conversionError(command []string, err error) *ConversionError {
	convErr := &ConversionError{Command: command, ExitCode: -1, Err: err}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		convErr.ExitCode = exitErr.ExitCode()
	}
	return convErr
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
