package testutil

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertFileContent checks that path exists on fs with content
func AssertFileContent(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err, "expected file %s", path)
	assert.Equal(t, content, string(data), "content of %s", path)
}

// AssertDirExists checks that path is a directory on fs
func AssertDirExists(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	ok, err := afero.IsDir(fs, path)
	require.NoError(t, err, "expected directory %s", path)
	assert.True(t, ok, "%s is not a directory", path)
}

// AssertMissing checks that nothing exists at path on fs
func AssertMissing(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	assert.False(t, exists, "expected %s to be absent", path)
}
