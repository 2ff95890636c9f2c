package export

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// Runner runs a converter process to completion.
type Runner interface {
	Run(ctx context.Context, name string, args []string) error
}

// ExecRunner runs processes with os/exec, streaming their output.
// Nil writers fall back to the process's own stdout and stderr.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run starts name with args and waits for it. A non-zero exit is returned
// as *exec.ExitError.
func (r *ExecRunner) Run(ctx context.Context, name string, args []string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = nil
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	return cmd.Run()
}
