// Package config — .stubintl.yaml configuration file support.
//
// When a .stubintl.yaml file exists in the project root, stubintl uses
// it as the source of defaults for the domain, the locale directory,
// the language list, and the stub roots. Command-line flags always
// override the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// YAML schema
// ---------------------------------------------------------------------------

// Config is the top-level .stubintl.yaml structure.
type Config struct {
	// Domain is the gettext domain name (default "stubs").
	Domain string `yaml:"domain,omitempty"`
	// LocaleDir is the catalog root, laid out as
	// <locale_dir>/<lang>/LC_MESSAGES/<domain>.po (default "locales").
	LocaleDir string `yaml:"locale_dir,omitempty"`
	// Languages is the list of target language codes.
	Languages []string `yaml:"languages,omitempty"`
	// LineWidth is the re-flow column for translated prose.
	// 0 disables wrapping (default).
	LineWidth int `yaml:"line_width,omitempty"`
	// Stubs are the .pyi files and directories to process (default ".").
	Stubs []string `yaml:"stubs,omitempty"`
	// OutputDir is where translated stub trees are written. Empty means
	// stdout for single files.
	OutputDir string `yaml:"output_dir,omitempty"`
	// POTFile is the extraction template path
	// (default "<locale_dir>/<domain>.pot").
	POTFile string `yaml:"pot_file,omitempty"`
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// FileName is the default config file name.
const FileName = ".stubintl.yaml"

// Load reads and validates .stubintl.yaml from the given directory.
// Returns nil if no .stubintl.yaml exists.
func Load(rootDir string) (*Config, error) {
	path := filepath.Join(rootDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if cfg.LineWidth < 0 {
		return nil, fmt.Errorf("%s: line_width must not be negative", path)
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills unset fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.Domain == "" {
		c.Domain = "stubs"
	}
	if c.LocaleDir == "" {
		c.LocaleDir = "locales"
	}
	if len(c.Stubs) == 0 {
		c.Stubs = []string{"."}
	}
	if c.POTFile == "" {
		c.POTFile = filepath.Join(c.LocaleDir, c.Domain+".pot")
	}
}

// Default returns the configuration used when no .stubintl.yaml exists.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// POPath returns the catalog path for a language,
// <locale_dir>/<lang>/LC_MESSAGES/<domain>.po.
func (c *Config) POPath(lang string) string {
	return filepath.Join(c.LocaleDir, lang, "LC_MESSAGES", c.Domain+".po")
}
