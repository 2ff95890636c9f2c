// Package note creates Markdown notes with a fixed front-matter block.
//
// A note is only a file on disk. It is created exactly once, in exclusive
// mode, and never rewritten:
//
//	---
//	title: "2026-01-15.md"
//	created_at: 2026-01-15T09:30:00+09:00
//	---
//
// The title is the base name of the note path with double quotes escaped.
// An optional template file is appended verbatim after the closing
// delimiter.
//
// Failures are reported as typed errors that match the package sentinels:
//
//	errors.Is(err, note.ErrAlreadyExists)   // target path already present
//	errors.Is(err, note.ErrInvalidTemplate) // template is a directory or missing
//
// Neither failure touches the file system.
package note
