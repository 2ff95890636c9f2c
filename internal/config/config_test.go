package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearEnv blanks every override so tests see only what they set.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, override := range envOverrides {
		t.Setenv(override.key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadFile_MissingUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Pandoc != DefaultPandoc || cfg.Typst != DefaultTypst {
		t.Errorf("binaries = %q/%q, want defaults", cfg.Pandoc, cfg.Typst)
	}
	if cfg.Source != "" {
		t.Errorf("Source = %q, want empty", cfg.Source)
	}
	if cfg.DailyDir != "" || cfg.ResourcesDir != "" {
		t.Errorf("dirs should be empty: %+v", cfg)
	}
}

func TestLoadFile_ReadsYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `pandoc: /opt/pandoc/bin/pandoc
typst: /opt/typst
resources_dir: /usr/share/quill
daily_dir: ~/journal
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Pandoc != "/opt/pandoc/bin/pandoc" {
		t.Errorf("Pandoc = %q", cfg.Pandoc)
	}
	if cfg.Typst != "/opt/typst" {
		t.Errorf("Typst = %q", cfg.Typst)
	}
	if cfg.ResourcesDir != "/usr/share/quill" {
		t.Errorf("ResourcesDir = %q", cfg.ResourcesDir)
	}
	if cfg.DailyDir != "~/journal" {
		t.Errorf("DailyDir = %q", cfg.DailyDir)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, want %q", cfg.Source, path)
	}
}

func TestLoadFile_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "pandoc: from-file\ndaily_dir: file-dir\n")
	t.Setenv("QUILL_PANDOC", "from-env")
	t.Setenv("QUILL_DAILY_DIR", "env-dir")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Pandoc != "from-env" {
		t.Errorf("Pandoc = %q, want from-env", cfg.Pandoc)
	}
	if cfg.DailyDir != "env-dir" {
		t.Errorf("DailyDir = %q, want env-dir", cfg.DailyDir)
	}
}

func TestLoadFile_MalformedYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "pandoc: [unclosed\n")

	_, err := LoadFile(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parsing") {
		t.Errorf("error = %v, want parsing error", err)
	}
}

func TestLoad_UsesConfigHome(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("QUILL_CONFIG_HOME", home)
	if err := os.WriteFile(filepath.Join(home, FileName), []byte("typst: typst-nightly\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Typst != "typst-nightly" {
		t.Errorf("Typst = %q, want typst-nightly", cfg.Typst)
	}
}

func TestResources(t *testing.T) {
	t.Run("configured", func(t *testing.T) {
		cfg := &Config{ResourcesDir: "/srv/quill"}
		got, err := cfg.Resources()
		if err != nil || got != "/srv/quill" {
			t.Errorf("Resources() = %q, %v", got, err)
		}
	})

	t.Run("next to binary", func(t *testing.T) {
		cfg := &Config{}
		got, err := cfg.Resources()
		if err != nil {
			t.Fatalf("Resources() error = %v", err)
		}
		if filepath.Base(got) != ResourcesDirName {
			t.Errorf("Resources() = %q, want .../%s", got, ResourcesDirName)
		}
	})
}

func TestDaily_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	tests := []struct {
		dailyDir string
		want     string
	}{
		{dailyDir: "", want: ""},
		{dailyDir: "journal", want: "journal"},
		{dailyDir: "~/journal", want: filepath.Join(home, "journal")},
		{dailyDir: "~", want: home},
		{dailyDir: "~other/journal", want: "~other/journal"},
	}

	for _, tt := range tests {
		cfg := &Config{DailyDir: tt.dailyDir}
		if got := cfg.Daily(); got != tt.want {
			t.Errorf("Daily(%q) = %q, want %q", tt.dailyDir, got, tt.want)
		}
	}
}
