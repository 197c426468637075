package sanitize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// Filename reduces an uploaded file name to something that is safe to join onto a directory.
// It never returns a path: directory components are folded into the name itself.
// An empty result means nothing usable was left.
func Filename(name string) string {
	asciiOnly := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(isNonASCII)))
	folded, _, err := transform.String(asciiOnly, name)
	if err != nil {
		return ""
	}

	folded = strings.NewReplacer("/", " ", "\\", " ").Replace(folded)
	joined := strings.Join(strings.Fields(folded), "_")
	stripped := unsafeChars.ReplaceAllString(joined, "")

	return strings.Trim(stripped, "._")
}

func isNonASCII(r rune) bool {
	return r > unicode.MaxASCII
}
