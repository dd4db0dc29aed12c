package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/sentlint/internal/ui/pretty"
	"github.com/yaklabco/sentlint/pkg/runner"
)

// TextReporter writes one diagnostic per line to the error stream in the
// canonical "<path>, line <n>: <message>" form, with an optional styled
// summary on the output stream.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.ErrorWriter)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.ErrorWriter, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	var total int

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(file.Path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		for _, diag := range file.Diagnostics {
			fmt.Fprintln(r.bw, r.styles.FormatDiagnostic(diag))
			total++
		}
	}

	if r.opts.ShowSummary {
		if total > 0 {
			fmt.Fprintln(r.opts.Writer, r.styles.Rule(r.opts.Writer))
		}
		fmt.Fprintln(r.opts.Writer, r.styles.FormatSummary(result.Stats))
	}

	return total, nil
}
