// Package configloader discovers and loads the project configuration file.
package configloader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yaklabco/sentlint/pkg/config"
)

// configFileNames are the file names probed in the working directory,
// in order of preference.
//
//nolint:gochecknoglobals // Discovery order is fixed package data
var configFileNames = []string{".sentlint.yml", ".sentlint.yaml", "sentlint.yml"}

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// If set, discovery is skipped and a missing file is an error.
	ExplicitPath string
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the loaded configuration (defaults if no file was found).
	Config *config.Config

	// LoadedFrom is the path of the file that was loaded, or empty when
	// the defaults were used.
	LoadedFrom string
}

// Load resolves the configuration. An explicit path wins over discovery;
// with neither present, defaults are returned. CLI flags are applied on
// top of the result by the caller.
func Load(opts LoadOptions) (*LoadResult, error) {
	if opts.ExplicitPath != "" {
		cfg, err := loadFile(opts.ExplicitPath)
		if err != nil {
			return nil, err
		}
		return &LoadResult{Config: cfg, LoadedFrom: opts.ExplicitPath}, nil
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		workDir = wd
	}

	for _, name := range configFileNames {
		path := filepath.Join(workDir, name)
		cfg, err := loadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return &LoadResult{Config: cfg, LoadedFrom: path}, nil
	}

	return &LoadResult{Config: config.New()}, nil
}

func loadFile(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	cfg, err := config.ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}
