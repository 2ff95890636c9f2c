package main

import (
	"errors"

	"github.com/gorewood/quill/internal/config"
	"github.com/gorewood/quill/internal/output"
)

// toExitError wraps err for the process exit status. Every failure exits 1;
// the message comes from err, which already names the offending path or tool.
func toExitError(err error) *output.ExitError {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	return output.NewUserErrorWithCause(err.Error(), err)
}

// fail prints err once and returns it classified.
func fail(printer *output.Printer, err error) error {
	exitErr := toExitError(err)
	printer.Error(exitErr)
	return exitErr
}

// loadConfig reads the user config, reporting a malformed file as a user error.
func loadConfig(printer *output.Printer) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fail(printer, output.NewUserErrorWithCause(err.Error(), err))
	}
	return cfg, nil
}
