package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/sentlint/pkg/config"
	"github.com/yaklabco/sentlint/pkg/runner"
)

// Compile-time interface checks.
var (
	_ Reporter = (*TextReporter)(nil)
	_ Reporter = (*JSONReporter)(nil)
)

// Reporter formats and writes scan results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of diagnostics reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	defaults := DefaultOptions()
	if opts.Writer == nil {
		opts.Writer = defaults.Writer
	}
	if opts.ErrorWriter == nil {
		opts.ErrorWriter = defaults.ErrorWriter
	}

	format := opts.Format
	if format == "" {
		format = config.FormatText
	}

	switch format {
	case config.FormatJSON:
		return NewJSONReporter(opts), nil
	case config.FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
