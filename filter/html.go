package filter

import (
	"html"
	"regexp"
)

var tagRe = regexp.MustCompile(`<[^>]*>`)

// EscapeHTML escapes HTML special characters to prevent markup injection.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// UnescapeHTML unescapes HTML entities.
func UnescapeHTML(s string) string {
	return html.UnescapeString(s)
}

// StripTags removes HTML tags and unescapes any remaining HTML entities.
func StripTags(s string) string {
	return html.UnescapeString(tagRe.ReplaceAllString(s, ""))
}

// Text reduces arbitrary markup to plain text: tags, control characters and
// emoji are stripped, then whitespace is normalized.
func Text(s string) string {
	s = StripTags(s)
	s = RemoveControlChars(s)
	s = RemoveEmoji(s)
	return NormalizeWhitespace(s)
}
