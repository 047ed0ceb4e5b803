package filter

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes characters and drops combining marks, turning "café"
// into "cafe" and "naïve" into "naive".
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Transliterate normalizes diacritics to their ASCII equivalents. Characters
// with no decomposition are left untouched.
func Transliterate(s string) string {
	out, _, err := transform.String(asciiFold, s)
	if err != nil {
		return s
	}
	return out
}

// Slug converts a string to a URL-safe slug: diacritics are transliterated,
// the result is lowercased, and every run of non-alphanumeric characters
// becomes a single hyphen.
func Slug(s string) string {
	s = strings.ToLower(Transliterate(strings.TrimSpace(s)))

	var b strings.Builder
	prevDash := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			prevDash = false
			continue
		}
		if !prevDash {
			b.WriteRune('-')
			prevDash = true
		}
	}

	return strings.Trim(b.String(), "-")
}
