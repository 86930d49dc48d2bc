package utils

import (
	"strings"
	"unicode"
)

// Slugify converts a display name into a URL-safe slug. Slugs are computed
// once when content is created and persisted, never derived per request.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true // suppress leading dashes

	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}

	return strings.Trim(b.String(), "-")
}
