// Package export converts a note to HTML or PDF by running pandoc.
//
// The output format is chosen by the output file extension alone:
//
//	.html  pandoc <in> --css <resources>/style.css --standalone --embed-resources -o <out>
//	.pdf   pandoc <in> --pdf-engine typst --template <resources>/template.typ -o <out>
//
// Any other extension fails with ErrUnsupportedFormat before a binary is
// looked up. pandoc must be on PATH for every export; typst is checked only
// for PDF output. The assembled command line is written to the echo writer
// before the converter runs, and a non-zero exit becomes ErrConversionFailed.
//
// Argument construction is pure (see Args) and process execution sits behind
// the Runner interface, so callers can test command lines without pandoc:
//
//	exp := &export.Exporter{
//		ResourcesDir: "/usr/local/share/quill/resources",
//		Echo:         os.Stdout,
//	}
//	result, err := exp.Export(ctx, "2026-01-15.md", "2026-01-15.pdf")
//
// The converter owns the output file; a failed run leaves it as pandoc left it.
package export
