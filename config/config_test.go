package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	content := `domain: typeshed
locale_dir: po
languages: [ru, de]
line_width: 79
stubs:
  - stubs/
output_dir: out
`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil for an existing config")
	}

	if cfg.Domain != "typeshed" || cfg.LocaleDir != "po" || cfg.LineWidth != 79 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if len(cfg.Languages) != 2 || cfg.Languages[0] != "ru" {
		t.Fatalf("cfg.Languages = %v", cfg.Languages)
	}
	if cfg.OutputDir != "out" {
		t.Fatalf("cfg.OutputDir = %q", cfg.OutputDir)
	}

	// Derived default
	if want := filepath.Join("po", "typeshed.pot"); cfg.POTFile != want {
		t.Fatalf("cfg.POTFile = %q, want %q", cfg.POTFile, want)
	}
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg != nil {
		t.Fatalf("Load() = %+v, want nil when no config exists", cfg)
	}
}

func TestLoad_NegativeWidth(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("line_width: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("Load() accepted a negative line_width")
	}
}

func TestLoad_Malformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("domain: [\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("Load() accepted malformed YAML")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Domain != "stubs" || cfg.LocaleDir != "locales" || cfg.LineWidth != 0 {
		t.Fatalf("Default() = %+v", cfg)
	}
	if len(cfg.Stubs) != 1 || cfg.Stubs[0] != "." {
		t.Fatalf("Default().Stubs = %v", cfg.Stubs)
	}
	if want := filepath.Join("locales", "stubs.pot"); cfg.POTFile != want {
		t.Fatalf("Default().POTFile = %q, want %q", cfg.POTFile, want)
	}
}

func TestPOPath(t *testing.T) {
	cfg := Default()
	want := filepath.Join("locales", "ja", "LC_MESSAGES", "stubs.po")
	if got := cfg.POPath("ja"); got != want {
		t.Fatalf("POPath(ja) = %q, want %q", got, want)
	}
}
