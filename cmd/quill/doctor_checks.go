package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/gorewood/quill/internal/config"
	"github.com/gorewood/quill/internal/export"
)

// runConfigChecks loads the config and checks it. The returned config is
// never nil: a broken file falls back to defaults so the other checks run.
func runConfigChecks(env *doctorEnv) (*config.Config, []checkResult) {
	checks := make([]checkResult, 0, 2)

	cfg, err := env.loadConfig()
	if err != nil {
		checks = append(checks, checkResult{
			Name:    "Config File",
			Status:  checkFail,
			Message: err.Error(),
			Hint:    "Fix the YAML or remove the file to use defaults",
		})
		cfg, _ = config.LoadFile("")
	} else {
		checks = append(checks, checkConfigFile(cfg))
	}

	checks = append(checks, checkDailyDir(cfg))
	return cfg, checks
}

// checkConfigFile reports which config file is in effect.
func checkConfigFile(cfg *config.Config) checkResult {
	if cfg.Source == "" {
		return checkResult{
			Name:    "Config File",
			Status:  checkPass,
			Message: "none found, using defaults",
		}
	}
	return checkResult{
		Name:    "Config File",
		Status:  checkPass,
		Message: cfg.Source,
	}
}

// checkDailyDir checks where today/tomorrow will create notes.
func checkDailyDir(cfg *config.Config) checkResult {
	dir := cfg.Daily()
	if dir == "" {
		return checkResult{
			Name:    "Daily Notes",
			Status:  checkPass,
			Message: "created in the current directory",
		}
	}

	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return checkResult{
			Name:    "Daily Notes",
			Status:  checkPass,
			Message: dir,
		}
	case errors.Is(err, os.ErrNotExist):
		return checkResult{
			Name:    "Daily Notes",
			Status:  checkWarn,
			Message: dir + " does not exist yet",
			Hint:    "It will be created by the first 'quill today'",
		}
	case err == nil:
		return checkResult{
			Name:    "Daily Notes",
			Status:  checkFail,
			Message: dir + " is not a directory",
			Hint:    "Point daily_dir at a directory",
		}
	default:
		return checkResult{
			Name:    "Daily Notes",
			Status:  checkFail,
			Message: "could not check " + dir + ": " + err.Error(),
		}
	}
}

// runToolChecks checks the converter binaries.
func runToolChecks(env *doctorEnv, cfg *config.Config) []checkResult {
	return []checkResult{
		checkTool(env, export.ToolPandoc, cfg.Pandoc, checkFail,
			"Install pandoc: https://pandoc.org/installing.html"),
		checkTool(env, export.ToolTypst, cfg.Typst, checkWarn,
			"Install typst for PDF export: https://github.com/typst/typst"),
	}
}

// checkTool looks up a configured binary. missing is the status to report
// when it cannot be found.
func checkTool(env *doctorEnv, tool, name string, missing checkStatus, hint string) checkResult {
	path, err := env.lookPath(name)
	if err == nil {
		return checkResult{
			Name:    tool,
			Status:  checkPass,
			Message: path,
		}
	}

	if name != tool {
		hint = "Check '" + tool + "' in config.yaml (looked for " + name + ")"
	}
	return checkResult{
		Name:    tool,
		Status:  missing,
		Message: "not found",
		Hint:    hint,
	}
}

// runResourceChecks checks the stylesheet and PDF template.
func runResourceChecks(cfg *config.Config) []checkResult {
	dir, err := cfg.Resources()
	if err != nil {
		return []checkResult{{
			Name:    "Resources",
			Status:  checkFail,
			Message: err.Error(),
			Hint:    "Set resources_dir in config.yaml or QUILL_RESOURCES_DIR",
		}}
	}

	checks := make([]checkResult, 0, 2)
	for _, format := range []export.Format{export.FormatHTML, export.FormatPDF} {
		for _, file := range export.Resources(format) {
			checks = append(checks, checkResourceFile(dir, file, format))
		}
	}
	return checks
}

// checkResourceFile checks that a bundled resource is a readable file.
func checkResourceFile(dir, file string, format export.Format) checkResult {
	path := filepath.Join(dir, file)
	info, err := os.Stat(path)
	if err == nil && info.Mode().IsRegular() {
		return checkResult{
			Name:    file,
			Status:  checkPass,
			Message: path,
		}
	}

	return checkResult{
		Name:    file,
		Status:  checkFail,
		Message: path + " missing; " + string(format) + " export will fail",
		Hint:    "Set resources_dir in config.yaml or QUILL_RESOURCES_DIR",
	}
}
