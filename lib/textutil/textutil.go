package textutil

import (
	"regexp"
	"strings"
	"unicode"
)

// NormalizeLabel turns a label shown by the portal into a result key: it is
// lower-cased and every whitespace character becomes an underscore, ex.
// "Congressional District" -> "congressional_district".
func NormalizeLabel(label string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return unicode.ToLower(r)
	}, label)
}

var innerWhitespace = regexp.MustCompile(`\s+`)

// CollapseWhitespace trims s and squeezes runs of whitespace into one space.
func CollapseWhitespace(s string) string {
	return innerWhitespace.ReplaceAllString(strings.TrimSpace(s), " ")
}
