// Package reporter formats and writes scan results.
package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/sentlint/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for summaries (typically os.Stdout).
	Writer io.Writer

	// ErrorWriter is the destination for diagnostics (typically
	// os.Stderr). Violations go to the error stream so that piping
	// stdout stays clean.
	ErrorWriter io.Writer

	// Format specifies the output format.
	Format config.OutputFormat

	// Color controls colorized output: "auto", "always", "never".
	Color string

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Format:      config.FormatText,
		Color:       "auto",
		ShowSummary: true,
	}
}
