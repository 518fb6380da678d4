package filesystem

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cards.csv")

	require.NoError(t, os.WriteFile(path, []byte("old"), 0600))

	err := WriteFileAtomic(path, 0644, func(w io.Writer) error {
		_, err := io.WriteString(w, "new")
		return err
	})
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(b))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), fi.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestWriteFileAtomicKeepsOriginalOnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cards.csv")

	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	boom := errors.New("boom")
	err := WriteFileAtomic(path, 0644, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	assert.ErrorIs(t, err, boom)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestTryLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.csv")

	lock, err := TryLock(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(path), ".cards.csv.lock"), lock.Path())

	_, err = TryLock(path)
	assert.ErrorIs(t, err, ErrLocked)

	require.NoError(t, lock.Unlock())

	again, err := TryLock(path)
	require.NoError(t, err)
	require.NoError(t, again.Unlock())
}

func TestGatherFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.CSV", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.csv"), 0755))

	paths, err := GatherFiles([]string{dir}, []string{".csv"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.CSV"),
		filepath.Join(dir, "b.csv"),
	}, paths)

	paths, err = GatherFiles([]string{filepath.Join(dir, "notes.txt")}, []string{".csv"})
	require.NoError(t, err)
	assert.Empty(t, paths)

	_, err = GatherFiles([]string{filepath.Join(dir, "missing.csv")}, []string{".csv"})
	assert.Error(t, err)
}
