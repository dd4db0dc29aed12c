package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/sentlint/pkg/runner"
)

// execute runs the root command with the given args and returns stdout,
// stderr, and the execution error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand(BuildInfo{Version: "test", Commit: "none", Date: "unknown"})

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCheckCommand(t *testing.T) {
	t.Run("violation sets the failure error", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "doc.md")
		require.NoError(t, os.WriteFile(path, []byte("Hello world. Goodbye."), 0o644))

		stdout, stderr, err := execute(t, "check", dir)

		require.ErrorIs(t, err, ErrIssuesFound)
		assert.Contains(t, stderr, path+", line 1: place new sentence on a new line: |``world. Goodb|")
		assert.Contains(t, stdout, "1 issues in 1 of 1 files.")
	})

	t.Run("clean tree passes", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.md"),
			[]byte("Hello world.\nGoodbye."), 0o644))

		stdout, stderr, err := execute(t, "check", dir)

		require.NoError(t, err)
		assert.Empty(t, stderr)
		assert.Contains(t, stdout, "No issues found in 1 files.")
	})

	t.Run("missing argument is a usage error", func(t *testing.T) {
		_, _, err := execute(t, "check")
		assert.Error(t, err)
	})

	t.Run("too many arguments is a usage error", func(t *testing.T) {
		_, _, err := execute(t, "check", "a", "b")
		assert.Error(t, err)
	})

	t.Run("json format", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.md"),
			[]byte("First. Second.\n"), 0o644))

		stdout, _, err := execute(t, "check", dir, "--format", "json")
		require.ErrorIs(t, err, ErrIssuesFound)

		var report struct {
			Diagnostics []struct {
				Path    string `json:"path"`
				Line    int    `json:"line"`
				Message string `json:"message"`
			} `json:"diagnostics"`
		}
		require.NoError(t, json.Unmarshal([]byte(stdout), &report))
		require.Len(t, report.Diagnostics, 1)
		assert.Equal(t, 1, report.Diagnostics[0].Line)
	})

	t.Run("ignore flag skips files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "vendor"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "vendor", "doc.md"),
			[]byte("Bad. Bad.\n"), 0o644))

		_, _, err := execute(t, "check", dir, "--ignore", "**/vendor")
		assert.NoError(t, err)
	})

	t.Run("explicit config file", func(t *testing.T) {
		dir := t.TempDir()
		cfgPath := filepath.Join(dir, "cfg.yml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("extensions:\n  - .txt\n"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.md"),
			[]byte("Bad. Bad.\n"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.txt"),
			[]byte("Bad. Bad.\n"), 0o644))

		_, stderr, err := execute(t, "check", dir, "--config", cfgPath)

		// Only the .txt file matches the configured extensions.
		require.ErrorIs(t, err, ErrIssuesFound)
		assert.Contains(t, stderr, "doc.txt")
		assert.NotContains(t, stderr, "doc.md")
	})
}

func TestInitCommand(t *testing.T) {
	t.Run("creates the config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".sentlint.yml")

		_, _, err := execute(t, "init", "--output", path)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "max_ignore_lines: 20")
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".sentlint.yml")
		require.NoError(t, os.WriteFile(path, []byte("format: json\n"), 0o644))

		_, _, err := execute(t, "init", "--output", path)
		assert.ErrorContains(t, err, "already exists")

		_, _, err = execute(t, "init", "--output", path, "--force")
		assert.NoError(t, err)
	})
}

func TestVersionCommand(t *testing.T) {
	_, _, err := execute(t, "version")
	assert.NoError(t, err)
}

func TestExitCodeFromResult(t *testing.T) {
	clean := &runner.Result{}
	assert.Equal(t, ExitSuccess, ExitCodeFromResult(clean))

	dirty := &runner.Result{Stats: runner.Stats{DiagnosticsTotal: 1}}
	assert.Equal(t, ExitIssuesFound, ExitCodeFromResult(dirty))
}
