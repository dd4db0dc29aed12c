package reporter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/sentlint/pkg/runner"
)

// JSONReporter writes the full result as a single JSON document to the
// output stream, for CI consumption.
type JSONReporter struct {
	opts Options
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts}
}

// jsonDiagnostic is the wire form of a single diagnostic.
type jsonDiagnostic struct {
	Path    string `json:"path"`
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// jsonFileError is the wire form of a file that could not be read.
type jsonFileError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// jsonReport is the top-level JSON document.
type jsonReport struct {
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
	Errors      []jsonFileError  `json:"errors,omitempty"`
	Stats       runner.Stats     `json:"stats"`
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	report := jsonReport{
		Diagnostics: []jsonDiagnostic{},
	}

	if result != nil {
		report.Stats = result.Stats
		for _, file := range result.Files {
			if file.Error != nil {
				report.Errors = append(report.Errors, jsonFileError{
					Path:  file.Path,
					Error: file.Error.Error(),
				})
				continue
			}
			for _, diag := range file.Diagnostics {
				report.Diagnostics = append(report.Diagnostics, jsonDiagnostic{
					Path:    diag.Path,
					Line:    diag.Line,
					Message: diag.Message,
				})
			}
		}
	}

	enc := json.NewEncoder(r.opts.Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return 0, fmt.Errorf("encode json report: %w", err)
	}

	return len(report.Diagnostics), nil
}
