package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the settings file inside Dir().
const FileName = "config.yaml"

// Defaults for the converter binaries.
const (
	DefaultPandoc = "pandoc"
	DefaultTypst  = "typst"
)

// ResourcesDirName is the bundled resources directory next to the binary.
const ResourcesDirName = "resources"

// Config holds user settings from config.yaml, after environment overrides.
type Config struct {
	// Pandoc is the converter binary name or path.
	Pandoc string `yaml:"pandoc,omitempty"`
	// Typst is the PDF engine binary name or path.
	Typst string `yaml:"typst,omitempty"`
	// ResourcesDir holds style.css and template.typ. Empty means next to the binary.
	ResourcesDir string `yaml:"resources_dir,omitempty"`
	// DailyDir is where today/tomorrow notes are created. Empty means the working directory.
	DailyDir string `yaml:"daily_dir,omitempty"`

	// Source is the file the settings were read from, empty when none existed.
	Source string `yaml:"-"`
}

// envOverrides maps environment variables onto config fields.
var envOverrides = []struct {
	key   string
	apply func(*Config, string)
}{
	{"QUILL_PANDOC", func(c *Config, v string) { c.Pandoc = v }},
	{"QUILL_TYPST", func(c *Config, v string) { c.Typst = v }},
	{"QUILL_RESOURCES_DIR", func(c *Config, v string) { c.ResourcesDir = v }},
	{"QUILL_DAILY_DIR", func(c *Config, v string) { c.DailyDir = v }},
}

// Load reads config.yaml from Dir(), applies environment overrides and defaults.
// A missing file is not an error.
func Load() (*Config, error) {
	dir := Dir()
	if dir == "" {
		return LoadFile("")
	}
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile reads settings from path. An empty path or missing file yields defaults.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
			cfg.Source = path
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	for _, override := range envOverrides {
		if v := os.Getenv(override.key); v != "" {
			override.apply(cfg, v)
		}
	}

	if cfg.Pandoc == "" {
		cfg.Pandoc = DefaultPandoc
	}
	if cfg.Typst == "" {
		cfg.Typst = DefaultTypst
	}
	return cfg, nil
}

// Resources returns the resources directory: the configured one, or
// <install dir>/resources.
func (c *Config) Resources() (string, error) {
	if c.ResourcesDir != "" {
		return c.ResourcesDir, nil
	}
	dir, err := InstallDir()
	if err != nil {
		return "", fmt.Errorf("locating quill installation: %w", err)
	}
	return filepath.Join(dir, ResourcesDirName), nil
}

// Daily returns the directory for date-named notes with a leading ~ expanded.
func (c *Config) Daily() string {
	return expandHome(c.DailyDir)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
