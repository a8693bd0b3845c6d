// internal/organizer/files_test.go
package organizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMusicFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"song.mp3", true},
		{"song.MP3", true},
		{"song.flac", true},
		{"song.wav", true},
		{"song.m4a", true},
		{"song.ogg", true},
		{"cover.jpg", false},
		{"notes.txt", false},
		{"song.mp3.bak", false},
		{".mp3", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMusicFile(tt.path))
		})
	}
}

func TestFindMusicFiles(t *testing.T) {
	root := t.TempDir()
	for _, p := range []string{
		"b/two.flac",
		"a/one.mp3",
		"a/cover.jpg",
		"three.m4a",
	} {
		full := filepath.Join(root, p)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0644))
	}

	files, err := FindMusicFiles(root)
	require.NoError(t, err)

	// Lexical walk order is part of the contract: repeated runs enumerate
	// identically.
	want := []string{
		filepath.Join(root, "a", "one.mp3"),
		filepath.Join(root, "b", "two.flac"),
		filepath.Join(root, "three.m4a"),
	}
	assert.Equal(t, want, files)
}

func TestFindMusicFiles_MissingRoot(t *testing.T) {
	_, err := FindMusicFiles(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotDirectory)
}

func TestFindMusicFiles_RootIsFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "song.mp3")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := FindMusicFiles(file)
	assert.ErrorIs(t, err, ErrNotDirectory)
}
