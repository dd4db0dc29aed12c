package runner

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/sentlint/pkg/lint"
)

// Runner orchestrates checking all discovered files with one Checker.
type Runner struct {
	Checker *lint.Checker
}

// New creates a Runner with the given checker.
func New(checker *lint.Checker) *Runner {
	return &Runner{Checker: checker}
}

// Run discovers files under opts.Paths and checks them one at a time, in
// discovery order. A file that cannot be read records an error outcome and
// the scan continues; the run never stops at the first violation.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	for _, path := range files {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("run cancelled: %w", ctx.Err())
		default:
		}

		outcome := FileOutcome{Path: path}

		content, err := os.ReadFile(path)
		if err != nil {
			outcome.Error = fmt.Errorf("read %s: %w", path, err)
		} else {
			outcome.Diagnostics = r.Checker.CheckDocument(path, string(content))
		}

		result.accumulate(outcome)
	}

	return result, nil
}
