package pretty

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/sentlint/pkg/lint"
	"github.com/yaklabco/sentlint/pkg/runner"
)

func TestFormatDiagnostic_Plain(t *testing.T) {
	styles := NewStyles(false)

	d := lint.Diagnostic{Path: "docs/a.md", Line: 3, Message: "sentence-newline already disabled"}
	got := styles.FormatDiagnostic(d)

	assert.Equal(t, "docs/a.md, line 3: sentence-newline already disabled", got)
}

func TestFormatSummary(t *testing.T) {
	styles := NewStyles(false)

	t.Run("clean run", func(t *testing.T) {
		got := styles.FormatSummary(runner.Stats{FilesProcessed: 4})
		assert.Equal(t, "No issues found in 4 files.", got)
	})

	t.Run("issues found", func(t *testing.T) {
		got := styles.FormatSummary(runner.Stats{
			FilesProcessed:   5,
			FilesWithIssues:  2,
			DiagnosticsTotal: 3,
		})
		assert.Equal(t, "3 issues in 2 of 5 files.", got)
	})

	t.Run("read errors included", func(t *testing.T) {
		got := styles.FormatSummary(runner.Stats{
			FilesProcessed: 1,
			FilesErrored:   2,
		})
		assert.Contains(t, got, "2 files could not be read.")
	})
}

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, IsColorEnabled("always", &buf))
	assert.False(t, IsColorEnabled("never", &buf))
	// A plain buffer is not a TTY.
	assert.False(t, IsColorEnabled("auto", &buf))
}

func TestTerminalWidth_Fallback(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, 80, TerminalWidth(&buf, 80))
}
