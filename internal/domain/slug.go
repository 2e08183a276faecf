package domain

import (
	"regexp"
	"strings"
	"unicode"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidSlug reports whether s is a lowercase, hyphen separated URL segment.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// Slugify converts a display name to a URL-safe slug.
//
// Letters and digits are lowercased and kept, runs of spaces, dots and
// hyphens collapse into a single hyphen, and everything else is dropped.
//
//	Slugify("CurePlus Hospital T. Narasipura") // "cureplus-hospital-t-narasipura"
func Slugify(name string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range name {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(unicode.ToLower(r))
		case r == ' ' || r == '-' || r == '.' || r == '_':
			pendingHyphen = true
		}
	}
	return b.String()
}
