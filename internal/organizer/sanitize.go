// internal/organizer/sanitize.go
package organizer

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// illegalChars are characters not allowed in filenames on common filesystems,
// plus control bytes.
var illegalChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// multiSpace matches runs of whitespace.
var multiSpace = regexp.MustCompile(`\s+`)

// maxSegment bounds a single directory name, in bytes.
const maxSegment = 120

// SanitizeSegment turns a metadata value into a safe directory name.
// Tags come from arbitrary encoders, so values are NFC-normalized before
// illegal characters are stripped. Returns "" when nothing usable remains.
func SanitizeSegment(name string) string {
	name = norm.NFC.String(name)
	name = illegalChars.ReplaceAllString(name, " ")
	name = multiSpace.ReplaceAllString(name, " ")
	name = strings.Trim(name, " .")

	if len(name) > maxSegment {
		cut := maxSegment
		for cut > 0 && !utf8.RuneStart(name[cut]) {
			cut--
		}
		name = strings.Trim(name[:cut], " .")
	}

	return name
}
