package main

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEntriesFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, name := range []string{"b.jpg", "a.png", "c.CR2", ".hidden.jpg", "README", "sub/d.jpg"} {
		require.NoError(t, afero.WriteFile(fs, filepath.Join("/shots", name), []byte("x"), 0o644))
	}
	return fs
}

func TestListEntries_Directory(t *testing.T) {
	entries, start, err := listEntries(newEntriesFs(t), "/shots")
	require.NoError(t, err)
	assert.Equal(t, []string{"/shots/a.png", "/shots/b.jpg", "/shots/c.CR2"}, entries)
	assert.Equal(t, 0, start)
}

func TestListEntries_FileStartsAtItself(t *testing.T) {
	entries, start, err := listEntries(newEntriesFs(t), "/shots/b.jpg")
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, 1, start)
}

func TestListEntries_Errors(t *testing.T) {
	fs := newEntriesFs(t)

	_, _, err := listEntries(fs, "/missing")
	assert.Error(t, err)

	_, _, err = listEntries(fs, "/shots/README")
	assert.Error(t, err)

	require.NoError(t, fs.MkdirAll("/empty", 0o755))
	_, _, err = listEntries(fs, "/empty")
	assert.Error(t, err)
}
