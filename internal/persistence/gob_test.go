package persistence

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string
	Words [][]string
}

func TestSaveAndLoadGob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "sample.gob")
	in := sample{Name: "corpus", Words: [][]string{{"good", "great"}, {"bad"}}}

	require.NoError(t, SaveGob(path, in))

	var out sample
	require.NoError(t, LoadGob(path, &out))
	assert.Equal(t, in, out)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file should not be left behind")
}

func TestLoadGobMissingFile(t *testing.T) {
	var out sample
	err := LoadGob(filepath.Join(t.TempDir(), "absent.gob"), &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadGobCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.gob")
	require.NoError(t, os.WriteFile(path, []byte("not a gob stream"), 0600))

	var out sample
	err := LoadGob(path, &out)
	require.Error(t, err)
	assert.NotErrorIs(t, err, fs.ErrNotExist)
}
