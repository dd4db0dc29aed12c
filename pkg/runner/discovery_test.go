package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file with parent directories as needed.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "a.md"), "A.\n")
	writeFile(t, filepath.Join(dir, "b.markdown"), "B.\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not markdown\n")
	writeFile(t, filepath.Join(dir, "sub", "c.md"), "C.\n")
	writeFile(t, filepath.Join(dir, ".hidden", "d.md"), "D.\n")
	writeFile(t, filepath.Join(dir, ".dotfile.md"), "E.\n")
	writeFile(t, filepath.Join(dir, "vendor", "f.md"), "F.\n")

	t.Run("matches extensions and skips hidden entries", func(t *testing.T) {
		files, err := Discover(context.Background(), Options{
			Paths:      []string{dir},
			WorkingDir: dir,
		})
		require.NoError(t, err)

		assert.Equal(t, []string{
			filepath.Join(dir, "a.md"),
			filepath.Join(dir, "b.markdown"),
			filepath.Join(dir, "sub", "c.md"),
			filepath.Join(dir, "vendor", "f.md"),
		}, files)
	})

	t.Run("exclude globs", func(t *testing.T) {
		files, err := Discover(context.Background(), Options{
			Paths:        []string{dir},
			WorkingDir:   dir,
			ExcludeGlobs: []string{"vendor/**", "sub/c.md"},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{
			filepath.Join(dir, "a.md"),
			filepath.Join(dir, "b.markdown"),
		}, files)
	})

	t.Run("single file path", func(t *testing.T) {
		files, err := Discover(context.Background(), Options{
			Paths:      []string{filepath.Join(dir, "a.md")},
			WorkingDir: dir,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "a.md")}, files)
	})

	t.Run("duplicate inputs are deduplicated", func(t *testing.T) {
		files, err := Discover(context.Background(), Options{
			Paths:      []string{dir, filepath.Join(dir, "a.md")},
			WorkingDir: dir,
		})
		require.NoError(t, err)
		assert.Len(t, files, 4)
	})

	t.Run("missing path errors", func(t *testing.T) {
		_, err := Discover(context.Background(), Options{
			Paths:      []string{filepath.Join(dir, "nope")},
			WorkingDir: dir,
		})
		assert.Error(t, err)
	})
}

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"vendor/a.md", "vendor/**", true},
		{"vendor", "vendor/**", true},
		{"vendored/a.md", "vendor/**", false},
		{"docs/vendor/a.md", "**/vendor", true},
		{"a/b/CHANGELOG.md", "**/CHANGELOG.md", true},
		{"CHANGELOG.md", "CHANGELOG.md", true},
		{"docs/x.md", "docs/*.md", true},
		{"docs/sub/x.md", "docs/*.md", false},
		{"docs/sub/x.md", "docs/**/x.md", true},
		{"anything/at/all", "**", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"_"+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, matchGlob(tt.path, tt.pattern))
		})
	}
}
