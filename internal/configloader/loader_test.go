package configloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/sentlint/pkg/config"
)

func TestLoad(t *testing.T) {
	t.Run("no config file returns defaults", func(t *testing.T) {
		result, err := Load(LoadOptions{WorkingDir: t.TempDir()})
		require.NoError(t, err)

		assert.Equal(t, config.New(), result.Config)
		assert.Empty(t, result.LoadedFrom)
	})

	t.Run("discovers dot file in working directory", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, ".sentlint.yml")
		require.NoError(t, os.WriteFile(path, []byte("max_ignore_lines: 7\n"), 0o644))

		result, err := Load(LoadOptions{WorkingDir: dir})
		require.NoError(t, err)

		assert.Equal(t, 7, result.Config.MaxIgnoreLines)
		assert.Equal(t, path, result.LoadedFrom)
	})

	t.Run("dot file wins over plain name", func(t *testing.T) {
		dir := t.TempDir()
		dotPath := filepath.Join(dir, ".sentlint.yml")
		require.NoError(t, os.WriteFile(dotPath, []byte("max_ignore_lines: 1\n"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "sentlint.yml"),
			[]byte("max_ignore_lines: 2\n"), 0o644))

		result, err := Load(LoadOptions{WorkingDir: dir})
		require.NoError(t, err)

		assert.Equal(t, 1, result.Config.MaxIgnoreLines)
		assert.Equal(t, dotPath, result.LoadedFrom)
	})

	t.Run("explicit path", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "custom.yml")
		require.NoError(t, os.WriteFile(path, []byte("format: json\n"), 0o644))

		result, err := Load(LoadOptions{WorkingDir: dir, ExplicitPath: path})
		require.NoError(t, err)

		assert.Equal(t, config.FormatJSON, result.Config.Format)
		assert.Equal(t, path, result.LoadedFrom)
	})

	t.Run("missing explicit path is an error", func(t *testing.T) {
		_, err := Load(LoadOptions{ExplicitPath: filepath.Join(t.TempDir(), "nope.yml")})
		assert.Error(t, err)
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".sentlint.yml"),
			[]byte("extensions: ["), 0o644))

		_, err := Load(LoadOptions{WorkingDir: dir})
		assert.Error(t, err)
	})
}
