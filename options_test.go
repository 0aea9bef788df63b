// FILE: lixenwraith/apacheconf/options_test.go
package apacheconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadOptionsFile tests TOML settings decoding over defaults
func TestLoadOptionsFile(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("Defaults", func(t *testing.T) {
		opts := DefaultOptions()
		assert.Equal(t, DefaultIndent, opts.Indent)
		assert.Equal(t, DefaultSource, opts.Source)
		assert.True(t, opts.StrictClose)
		assert.False(t, opts.RequireClosed)
		assert.Zero(t, opts.MaxFileSize)
	})

	t.Run("PartialFile", func(t *testing.T) {
		path := filepath.Join(tmpDir, "partial.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
indent = "\t"
require_closed = true
`), 0644))

		opts, err := LoadOptionsFile(path)
		require.NoError(t, err)
		assert.Equal(t, "\t", opts.Indent)
		assert.True(t, opts.RequireClosed)
		assert.True(t, opts.StrictClose, "absent keys keep defaults")
	})

	t.Run("AllKeys", func(t *testing.T) {
		path := filepath.Join(tmpDir, "all.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
indent = "  "
source = "vhosts"
strict_close = false
require_closed = true
max_file_size = 4096
`), 0644))

		opts, err := LoadOptionsFile(path)
		require.NoError(t, err)
		assert.Equal(t, Options{
			Indent:        "  ",
			Source:        "vhosts",
			StrictClose:   false,
			RequireClosed: true,
			MaxFileSize:   4096,
		}, opts)
	})

	t.Run("Missing", func(t *testing.T) {
		opts, err := LoadOptionsFile(filepath.Join(tmpDir, "missing.toml"))
		assert.ErrorIs(t, err, ErrSettingsNotFound)
		assert.Equal(t, DefaultOptions(), opts)
	})

	t.Run("UnknownKey", func(t *testing.T) {
		path := filepath.Join(tmpDir, "unknown.toml")
		require.NoError(t, os.WriteFile(path, []byte(`indentation = "  "`), 0644))

		_, err := LoadOptionsFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "indentation")
	})

	t.Run("InvalidTOML", func(t *testing.T) {
		path := filepath.Join(tmpDir, "invalid.toml")
		require.NoError(t, os.WriteFile(path, []byte(`indent = `), 0644))

		_, err := LoadOptionsFile(path)
		assert.Error(t, err)
	})
}
