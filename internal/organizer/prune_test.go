// internal/organizer/prune_test.go
package organizer

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPruneEmptyDirs_RemovesNestedEmptyTree(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0755))

	PruneEmptyDirs(root, discardLogger())

	_, err := os.Stat(filepath.Join(root, "a"))
	assert.True(t, os.IsNotExist(err), "a should be removed")
	_, err = os.Stat(root)
	assert.NoError(t, err, "root itself must survive")
}

func TestPruneEmptyDirs_KeepsDirsWithFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "keep", "empty"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "keep", "song.mp3"), []byte("x"), 0644))

	PruneEmptyDirs(root, discardLogger())

	_, err := os.Stat(filepath.Join(root, "keep", "song.mp3"))
	assert.NoError(t, err, "file must survive")
	_, err = os.Stat(filepath.Join(root, "keep", "empty"))
	assert.True(t, os.IsNotExist(err), "empty sibling should be removed")
}

func TestPruneEmptyDirs_DirBecomesEmptyAfterChildrenPruned(t *testing.T) {
	// a contains only b, b contains only c; all three must go.
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b", "c"), 0755))

	PruneEmptyDirs(root, discardLogger())

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
