package check

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	alphaRe        = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphanumericRe = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	slugRe         = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// emojiTable mirrors the common emoji blocks; sequence glue runes (ZWJ,
// variation selectors) alone do not count as emoji.
var emojiTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2600, Hi: 0x27bf, Stride: 1},
		{Lo: 0x2b00, Hi: 0x2bff, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1f000, Hi: 0x1f0ff, Stride: 1},
		{Lo: 0x1f1e6, Hi: 0x1f1ff, Stride: 1},
		{Lo: 0x1f300, Hi: 0x1f5ff, Stride: 1},
		{Lo: 0x1f600, Hi: 0x1f64f, Stride: 1},
		{Lo: 0x1f680, Hi: 0x1f6ff, Stride: 1},
		{Lo: 0x1f700, Hi: 0x1f77f, Stride: 1},
		{Lo: 0x1f900, Hi: 0x1faff, Stride: 1},
	},
}

// Alpha reports whether the value consists solely of ASCII letters.
func Alpha(s string) bool {
	return alphaRe.MatchString(s)
}

// Alphanumeric reports whether the value consists solely of ASCII letters and
// digits.
func Alphanumeric(s string) bool {
	return alphanumericRe.MatchString(s)
}

// Slug reports whether the value is a lowercase, hyphen-separated URL slug.
func Slug(s string) bool {
	return slugRe.MatchString(s)
}

// Palindrome reports whether the value reads the same forwards and backwards.
// Case, spacing and punctuation are ignored; at least one letter or digit must
// be present.
func Palindrome(s string) bool {
	var runes []rune
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			runes = append(runes, r)
		}
	}
	if len(runes) == 0 {
		return false
	}

	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}

// HasEmoji reports whether the value contains at least one emoji rune.
func HasEmoji(s string) bool {
	for _, r := range s {
		if unicode.Is(emojiTable, r) {
			return true
		}
	}
	return false
}
