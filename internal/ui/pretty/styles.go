// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/yaklabco/sentlint/pkg/lint"
	"github.com/yaklabco/sentlint/pkg/runner"
)

// defaultWidth is used for the summary rule when the terminal width is
// unavailable.
const defaultWidth = 80

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Diagnostic components
	FilePath lipgloss.Style
	Location lipgloss.Style
	Message  lipgloss.Style
	Error    lipgloss.Style

	// Summary styles
	Success lipgloss.Style
	Failure lipgloss.Style

	// Misc
	Dim lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			FilePath: plain,
			Location: plain,
			Message:  plain,
			Error:    plain,
			Success:  plain,
			Failure:  plain,
			Dim:      plain,
		}
	}

	return &Styles{
		FilePath: lipgloss.NewStyle().Bold(true),
		Location: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Message:  lipgloss.NewStyle(),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// FormatDiagnostic renders a diagnostic in the canonical single-line form:
// "<path>, line <n>: <message>". Styling only decorates the segments; the
// plain text stays byte-identical when color is disabled.
func (s *Styles) FormatDiagnostic(d lint.Diagnostic) string {
	return fmt.Sprintf("%s, %s: %s",
		s.FilePath.Render(d.Path),
		s.Location.Render(fmt.Sprintf("line %d", d.Line)),
		s.Message.Render(d.Message),
	)
}

// FormatSummary renders a one-line run summary.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	if stats.DiagnosticsTotal == 0 && stats.FilesErrored == 0 {
		return s.Success.Render(fmt.Sprintf("No issues found in %d files.", stats.FilesProcessed))
	}

	line := fmt.Sprintf("%d issues in %d of %d files.",
		stats.DiagnosticsTotal, stats.FilesWithIssues, stats.FilesProcessed)
	if stats.FilesErrored > 0 {
		line += fmt.Sprintf(" %d files could not be read.", stats.FilesErrored)
	}
	return s.Failure.Render(line)
}

// Rule renders a dim horizontal rule sized to the writer's terminal.
func (s *Styles) Rule(writer io.Writer) string {
	width := TerminalWidth(writer, defaultWidth)
	return s.Dim.Render(strings.Repeat("─", width))
}

// IsColorEnabled determines if color should be enabled based on mode and
// writer. Mode values: "auto" (default), "always", "never". In auto mode,
// color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Honor NO_COLOR (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// TerminalWidth returns the width of the writer's terminal, or fallback
// when the writer is not a terminal.
func TerminalWidth(writer io.Writer, fallback int) int {
	f, ok := writer.(*os.File)
	if !ok {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
