// Package config loads project settings from a skein.yml file next to
// the sources. Every field is optional; a missing file yields the
// defaults.
package config

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FileName is the project file looked up next to the sources.
const FileName = "skein.yml"

// WarningLevel adjusts how a class of warnings is reported.
type WarningLevel string

const (
	WarningOff   WarningLevel = "off"
	WarningWarn  WarningLevel = "warn"
	WarningError WarningLevel = "error"
)

func (l WarningLevel) valid() bool {
	switch l {
	case WarningOff, WarningWarn, WarningError:
		return true
	}
	return false
}

// Config is the parsed project file.
type Config struct {
	// Package names the checked program in tool output.
	Package string `yaml:"package"`
	// Files are glob patterns, relative to the config file, selecting
	// the sources to check.
	Files []string `yaml:"files"`
	// Warnings maps a warning class ("unreachable", "unsupported") to
	// the level it should be reported at.
	Warnings map[string]WarningLevel `yaml:"warnings"`
}

// Default is the configuration used when no skein.yml exists.
func Default() Config {
	return Config{
		Files: []string{"*.sk"},
	}
}

// Parse reads a config from raw yaml and validates it.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "malformed "+FileName)
	}
	if len(cfg.Files) == 0 {
		cfg.Files = Default().Files
	}
	for class, level := range cfg.Warnings {
		if !level.valid() {
			return Config{}, errors.Errorf("warning %q has level %q, want one of off, warn, error", class, level)
		}
	}
	return cfg, nil
}

// FindAndLoad looks for skein.yml in dir and parses it. A missing file
// is not an error; the defaults are returned instead.
func FindAndLoad(dir string) (Config, error) {
	path := filepath.Join(dir, FileName)
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, errors.Wrapf(err, "could not read %s", path)
	}
	cfg, err := Parse(raw)
	if err != nil {
		return Config{}, errors.Wrapf(err, "in %s", path)
	}
	return cfg, nil
}

// SourceFiles resolves the config's file globs relative to dir. The
// result is sorted and duplicate-free.
func (c Config) SourceFiles(dir string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, pattern := range c.Files {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, errors.Wrapf(err, "bad file pattern %q", pattern)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	sort.Strings(out)
	return out, nil
}
