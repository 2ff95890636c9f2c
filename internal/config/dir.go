// Package config resolves quill's configuration directory and settings file.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-user configuration directory.
const AppName = "quill"

// Dir returns the quill configuration directory.
//
// Resolution:
//   - $QUILL_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/quill if set (respects XDG on any platform)
//   - %AppData%/quill on Windows
//   - ~/.config/quill on macOS and Linux
func Dir() string {
	if dir := os.Getenv("QUILL_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppName)
}

// InstallDir returns the directory holding the running quill binary,
// with symlinks resolved so a linked binary still finds its resources.
func InstallDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	return filepath.Dir(resolved), nil
}
