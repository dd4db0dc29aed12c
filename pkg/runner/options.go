// Package runner walks directory trees and applies the sentence-newline
// checker to every matching document.
package runner

import "github.com/yaklabco/sentlint/pkg/config"

// Options controls a scan run.
type Options struct {
	// Paths are the user-specified paths (files or directories) to scan.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading
	// dot) considered Markdown. Defaults come from the config.
	Extensions []string

	// ExcludeGlobs are glob patterns used to skip files or directories,
	// relative to WorkingDir.
	ExcludeGlobs []string

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) > 0 {
		return o.Extensions
	}
	if o.Config != nil && len(o.Config.Extensions) > 0 {
		return o.Config.Extensions
	}
	return config.New().Extensions
}

// effectivePaths returns the paths to scan, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
