package strutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases a string and strips combining diacritical marks, so that
// "Moínho da Ribeira" and "moinho da ribeira" compare equal. Used by the
// cross-language search and by slug generation.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// Transform only fails on malformed UTF-8; fall back to the input
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}

// Slugify derives a URL slug from a name: folded, non-alphanumeric runs
// collapsed to single hyphens, trimmed.
func Slugify(name string) string {
	folded := Fold(name)

	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
