// internal/organizer/planner.go
package organizer

import (
	"path/filepath"
	"unicode"
	"unicode/utf8"

	"tuneshelf/internal/tags"
)

// UnknownAlbum is substituted when a file has no album tag.
const UnknownAlbum = "Unknown Album"

// fallbackBucket groups artists whose name does not start with a letter.
const fallbackBucket = "#"

// Plan is the computed destination for one audio file.
type Plan struct {
	OriginalPath string
	NewPath      string
}

// PlanDestination computes base/<bucket>/<main artist>/<album>/<filename>.
// The original filename and extension are preserved unchanged.
func PlanDestination(path string, md *tags.Metadata, base string) Plan {
	artist := SanitizeSegment(md.MainArtist)
	if artist == "" {
		artist = tags.UnknownArtist
	}
	album := SanitizeSegment(md.Album)
	if album == "" {
		album = UnknownAlbum
	}

	return Plan{
		OriginalPath: path,
		NewPath:      filepath.Join(base, bucketFor(artist), artist, album, filepath.Base(path)),
	}
}

// bucketFor returns the top-level shelf name for an artist: the uppercased
// first letter, or fallbackBucket for names starting with a digit or symbol.
func bucketFor(artist string) string {
	r, _ := utf8.DecodeRuneInString(artist)
	if !unicode.IsLetter(r) {
		return fallbackBucket
	}
	return string(unicode.ToUpper(r))
}
