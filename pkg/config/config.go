// Package config defines core configuration types for sentlint.
// These are pure data structures with no dependency on the loader.
package config

import "github.com/yaklabco/sentlint/pkg/lint"

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for sentlint.
type Config struct {
	// Extensions is the set of file extensions treated as Markdown
	// (lowercase, with leading dot).
	Extensions []string `yaml:"extensions"`

	// Ignore contains glob patterns for files and directories to skip.
	Ignore []string `yaml:"ignore"`

	// MaxIgnoreLines bounds how many consecutive lines an ignore region
	// may cover before the region itself is reported.
	MaxIgnoreLines int `yaml:"max_ignore_lines"`

	// Format selects the output format ("text" or "json").
	Format OutputFormat `yaml:"format"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Extensions:     []string{".md", ".markdown"},
		Ignore:         []string{},
		MaxIgnoreLines: lint.DefaultMaxIgnoreLines,
		Format:         FormatText,
	}
}
