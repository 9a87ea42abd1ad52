package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReadsCacheFromBuildDir(t *testing.T) {
	dir := t.TempDir()
	content := "//Enable tests\nBUILD_TESTING:BOOL=ON\nCMAKE_AR:FILEPATH=/usr/bin/ar\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFileName), []byte(content), 0o600))

	entries, err := Load(context.Background(), dir, LoadOptions{Strict: true})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "BUILD_TESTING", entries[0].Name)
	assert.Equal(t, "Enable tests", entries[0].Description)
}

func TestLoadCustomFileName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("A:BOOL=ON\n"), 0o600))

	entries, err := Load(context.Background(), dir, LoadOptions{FileName: "other.txt", Strict: true})
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestLoadMissingStrict(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(context.Background(), dir, LoadOptions{Strict: true})
	require.Error(t, err)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, filepath.Join(dir, DefaultFileName), ioErr.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadMissingLenient(t *testing.T) {
	entries, err := Load(context.Background(), t.TempDir(), LoadOptions{Strict: false})
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestPathDefaults(t *testing.T) {
	assert.Equal(t, filepath.Join(".", DefaultFileName), Path("", ""))
	assert.Equal(t, filepath.Join("build", "x.txt"), Path("build", "x.txt"))
}
