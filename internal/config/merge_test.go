package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeYAML_ReplacesWholeSections(t *testing.T) {
	target := New()
	target.Query.CollapseRenewables = true

	// The overlay names the query section without collapse_renewables, so
	// the whole section is replaced and the flag falls back to zero.
	path := writeOverlay(t, "query:\n  gdp: PPP\n")
	require.NoError(t, ShallowMergeYAML(target, path))

	assert.Equal(t, "PPP", target.Query.GDP)
	assert.False(t, target.Query.CollapseRenewables)
	assert.Equal(t, FormatTable, target.Output.Format, "untouched sections keep their defaults")
}

func TestShallowMergeYAML_IgnoresUnknownKeys(t *testing.T) {
	target := New()
	path := writeOverlay(t, "plugins:\n  foo: bar\noutput:\n  format: csv\n")

	require.NoError(t, ShallowMergeYAML(target, path))
	assert.Equal(t, FormatCSV, target.Output.Format)
}

func TestShallowMergeYAML_EmptyFileIsNoOp(t *testing.T) {
	target := New()
	want := *target

	path := writeOverlay(t, "# just a comment\n")
	require.NoError(t, ShallowMergeYAML(target, path))
	assert.Equal(t, want, *target)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	t.Run("nil target", func(t *testing.T) {
		path := writeOverlay(t, "output:\n  format: json\n")
		assert.Error(t, ShallowMergeYAML(nil, path))
	})

	t.Run("missing file", func(t *testing.T) {
		err := ShallowMergeYAML(New(), filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeOverlay(t, "output: [unclosed\n")
		assert.Error(t, ShallowMergeYAML(New(), path))
	})

	t.Run("section type mismatch", func(t *testing.T) {
		path := writeOverlay(t, "logging: 42\n")
		err := ShallowMergeYAML(New(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "logging")
	})
}
