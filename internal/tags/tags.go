// internal/tags/tags.go

// Package tags extracts embedded metadata from audio files.
package tags

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dhowden/tag"
)

// ErrNoTags indicates the file carries no readable metadata and should be
// skipped rather than organized.
var ErrNoTags = errors.New("no readable tags")

// UnknownArtist is substituted when a file has no artist tag.
const UnknownArtist = "Unknown Artist"

// Metadata is the embedded metadata of one audio file.
type Metadata struct {
	Title      string
	Artist     string // all credited artists, joined with ", "
	MainArtist string // never empty; UnknownArtist when untagged
	Year       string // empty when untagged
	Album      string
}

// Reader extracts metadata from an audio file.
// Implementations return an error wrapping ErrNoTags for files that
// cannot be parsed.
type Reader interface {
	Read(path string) (*Metadata, error)
}

// FileReader reads metadata from files on disk via dhowden/tag.
type FileReader struct{}

// Read parses the tags of the file at path.
func (FileReader) Read(path string) (*Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoTags, err)
	}

	md := &Metadata{
		Title:  strings.TrimSpace(m.Title()),
		Artist: strings.TrimSpace(m.Artist()),
		Album:  strings.TrimSpace(m.Album()),
	}
	if y := m.Year(); y != 0 {
		md.Year = strconv.Itoa(y)
	}
	md.MainArtist = mainArtist(m.AlbumArtist(), md.Artist)
	return md, nil
}

// mainArtist picks the artist the directory hierarchy is built from: the
// album artist when tagged, otherwise the first entry of a ", "-joined
// artist list.
func mainArtist(albumArtist, artist string) string {
	if a := strings.TrimSpace(albumArtist); a != "" {
		return a
	}
	first, _, _ := strings.Cut(artist, ", ")
	first = strings.TrimSpace(first)
	if first == "" {
		return UnknownArtist
	}
	return first
}
