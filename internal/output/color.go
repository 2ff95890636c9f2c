package output

import (
	"fmt"
	"io"
	"os"
)

// Color modes accepted by the --color flag.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ResolveColorMode returns the effective isTTY value for a --color setting:
// "never" disables styling, "always" forces it, anything else follows isTTY.
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		return isTTY
	}
}

// ValidateColorMode rejects values other than auto, always and never.
func ValidateColorMode(colorMode string) error {
	switch colorMode {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return NewUserError(fmt.Sprintf("--color must be one of auto, always, never (got %q)", colorMode))
	}
}

// IsTTY checks if a writer is a terminal.
// Returns true only for os.File that is a terminal.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
