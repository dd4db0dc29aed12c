package runner

import "github.com/yaklabco/sentlint/pkg/lint"

// FileOutcome is the result of checking a single file.
type FileOutcome struct {
	// Path is the file that was checked.
	Path string

	// Diagnostics contains all violations found in the file.
	Diagnostics []lint.Diagnostic

	// Error is set if the file could not be read.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully checked.
	FilesProcessed int

	// FilesErrored is the number of files that could not be read.
	FilesErrored int

	// FilesWithIssues is the number of files with at least one diagnostic.
	FilesWithIssues int

	// DiagnosticsTotal is the total number of diagnostics across all files.
	DiagnosticsTotal int
}

// Result is the overall scan result.
type Result struct {
	// Files contains the outcome for each checked file, in discovery order.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasIssues reports whether any diagnostics were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsTotal > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.DiagnosticsTotal += len(outcome.Diagnostics)
	if len(outcome.Diagnostics) > 0 {
		r.Stats.FilesWithIssues++
	}
}
