// internal/config/config.go
//
// This package handles configuration and the .aockit directory structure.
// Every year repository created by `aockit year` carries an aockit.yaml
// marker at its root plus a .aockit/ folder for runtime state.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// MarkerFile identifies the root of a year repository.
	MarkerFile = "aockit.yaml"

	// RuntimeDir is the per-repo directory for logs, cache and the
	// answer ledger. Gitignored by the scaffold.
	RuntimeDir = ".aockit"
)

// ErrNotFound is returned by Find when no year repository encloses the
// starting directory.
var ErrNotFound = errors.New("config: no aockit.yaml found (run `aockit year` first)")

// PathsConfig names the directories a year repository uses.
type PathsConfig struct {
	Days   string `yaml:"days"`
	Inputs string `yaml:"inputs"`
}

// SubmitConfig controls answer submission.
type SubmitConfig struct {
	Enabled bool `yaml:"enabled"`
}

// YearConfig models aockit.yaml.
type YearConfig struct {
	Version int          `yaml:"version"`
	Year    int          `yaml:"year"`
	Paths   PathsConfig  `yaml:"paths"`
	Submit  SubmitConfig `yaml:"submit"`
}

// Config holds the runtime configuration for one year repository.
type Config struct {
	// Root is the year repository directory (the one holding aockit.yaml).
	Root string

	// RuntimePath is Root/.aockit.
	RuntimePath string

	Year YearConfig
}

// DefaultYearConfig returns the settings the scaffold writes for a new year.
func DefaultYearConfig(year int) YearConfig {
	return YearConfig{
		Version: 1,
		Year:    year,
		Paths:   PathsConfig{Days: "days", Inputs: "inputs"},
		Submit:  SubmitConfig{Enabled: true},
	}
}

// Find walks upward from dir looking for aockit.yaml and returns the
// repository root.
func Find(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("config: resolve %s: %w", dir, err)
	}
	for {
		marker := filepath.Join(current, MarkerFile)
		if info, err := os.Stat(marker); err == nil && !info.IsDir() {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", ErrNotFound
		}
		current = parent
	}
}

// Load reads aockit.yaml from root and prepares the runtime directories.
func Load(root string) (*Config, error) {
	absolute, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", root, err)
	}
	data, err := os.ReadFile(filepath.Join(absolute, MarkerFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("config: read %s: %w", MarkerFile, err)
	}
	year := DefaultYearConfig(0)
	if err := yaml.Unmarshal(data, &year); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", MarkerFile, err)
	}
	if year.Year <= 0 {
		return nil, fmt.Errorf("config: %s has no valid year", MarkerFile)
	}
	if strings.TrimSpace(year.Paths.Days) == "" {
		year.Paths.Days = "days"
	}
	if strings.TrimSpace(year.Paths.Inputs) == "" {
		year.Paths.Inputs = "inputs"
	}
	cfg := &Config{
		Root:        absolute,
		RuntimePath: filepath.Join(absolute, RuntimeDir),
		Year:        year,
	}
	if err := cfg.initRuntimeDirs(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// initRuntimeDirs creates the .aockit structure:
//
//	.aockit/
//	├── logs/    <- submission journal
//	└── cache/   <- puzzle page cache
func (c *Config) initRuntimeDirs() error {
	for _, dir := range []string{c.LogsDir(), c.CacheDir(), c.DaysDir(), c.InputsDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create %s: %w", dir, err)
		}
	}
	return nil
}

// DaysDir returns the directory holding dayNN.go solution files.
func (c *Config) DaysDir() string {
	return filepath.Join(c.Root, c.Year.Paths.Days)
}

// InputsDir returns the directory caching puzzle inputs.
func (c *Config) InputsDir() string {
	return filepath.Join(c.Root, c.Year.Paths.Inputs)
}

// LogsDir returns the runtime log directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.RuntimePath, "logs")
}

// CacheDir returns the puzzle page cache directory.
func (c *Config) CacheDir() string {
	return filepath.Join(c.RuntimePath, "cache")
}

// AnswersPath returns the answer ledger location.
func (c *Config) AnswersPath() string {
	return filepath.Join(c.RuntimePath, "answers.yaml")
}

// JournalPath returns the submission journal location.
func (c *Config) JournalPath() string {
	return filepath.Join(c.LogsDir(), "journal.log")
}

// DayFile returns the path of the solution file for a day (zero-padded).
func (c *Config) DayFile(day int) string {
	return filepath.Join(c.DaysDir(), fmt.Sprintf("day%02d.go", day))
}
