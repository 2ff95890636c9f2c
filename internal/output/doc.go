// Package output provides structured output and error handling for the quill CLI.
//
// # Printer
//
// The Printer is the sink every command writes through. It switches between
// human-readable and JSON output and styles human output with lipgloss:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
//		WithStderr(cmd.ErrOrStderr())
//
//	printer.Success(map[string]any{"message": `Created "2026-01-15.md"`, "path": "2026-01-15.md"})
//	printer.Error(err)
//
// In JSON mode success data is written as an object and errors as
// {"error": "message", "code": N} on the main writer.
//
// # Exit Codes
//
//	output.ExitSuccess   // 0
//	output.ExitUserError // 1: any failure, including bad arguments and I/O errors
//
// Commands return *ExitError values; main passes the error to GetExitCode.
package output
