package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateFile writes content to dir/name on fsys, creating parents
func CreateFile(t *testing.T, fsys afero.Fs, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755), "creating parents of %s", path)
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0644), "writing %s", path)
	return path
}

// FileExists reports whether path is a regular file on fsys
func FileExists(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && !info.IsDir()
}

// ReadFile returns the content of path on fsys
func ReadFile(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()

	content, err := afero.ReadFile(fsys, path)
	require.NoError(t, err, "reading %s", path)
	return string(content)
}

// AssertFileContent checks path exists on fsys with exactly expected
func AssertFileContent(t *testing.T, fsys afero.Fs, path, expected string) {
	t.Helper()

	require.True(t, FileExists(fsys, path), "%s does not exist", path)
	assert.Equal(t, expected, ReadFile(t, fsys, path), "content of %s", path)
}

// AssertNoFile checks nothing exists at path on fsys
func AssertNoFile(t *testing.T, fsys afero.Fs, path string) {
	t.Helper()

	exists, err := afero.Exists(fsys, path)
	require.NoError(t, err)
	assert.False(t, exists, "%s exists but should not", path)
}
