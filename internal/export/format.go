package export

import (
	"path/filepath"
	"strings"
)

// Format is a supported export target.
type Format string

// Supported formats.
const (
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

// Bundled resource file names inside the resources directory.
const (
	StylesheetFile  = "style.css"
	PDFTemplateFile = "template.typ"
)

// Tool names.
const (
	ToolPandoc = "pandoc"
	ToolTypst  = "typst"
)

// FormatFromPath picks the format from the output path's extension, ignoring case.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".html":
		return FormatHTML, nil
	case ".pdf":
		return FormatPDF, nil
	default:
		return "", &UnsupportedFormatError{Path: path, Ext: ext}
	}
}

// Invocation holds the inputs to an argument template.
type Invocation struct {
	Input        string
	Output       string
	ResourcesDir string
	// PDFEngine is passed to --pdf-engine; empty means "typst".
	PDFEngine string
}

// Args returns the ordered pandoc arguments for format, without the program name.
func Args(format Format, inv Invocation) []string {
	switch format {
	case FormatHTML:
		return []string{
			inv.Input,
			"--css", filepath.Join(inv.ResourcesDir, StylesheetFile),
			"--standalone",
			"--embed-resources",
			"-o", inv.Output,
		}
	case FormatPDF:
		engine := inv.PDFEngine
		if engine == "" {
			engine = ToolTypst
		}
		return []string{
			inv.Input,
			"--pdf-engine", engine,
			"--template", filepath.Join(inv.ResourcesDir, PDFTemplateFile),
			"-o", inv.Output,
		}
	default:
		return nil
	}
}

// Resources lists the bundled files a format needs.
func Resources(format Format) []string {
	switch format {
	case FormatHTML:
		return []string{StylesheetFile}
	case FormatPDF:
		return []string{PDFTemplateFile}
	default:
		return nil
	}
}

// CommandLine renders argv for display, single-quoting tokens a POSIX shell
// would split or expand.
func CommandLine(argv []string) string {
	quoted := make([]string, len(argv))
	for i, arg := range argv {
		quoted[i] = shellQuote(arg)
	}
	return strings.Join(quoted, " ")
}

func shellQuote(arg string) string {
	if arg == "" {
		return "''"
	}
	if strings.IndexFunc(arg, needsQuote) < 0 {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'"'"'`) + "'"
}

func needsQuote(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	}
	return !strings.ContainsRune("-_./:=@%+,", r)
}
