package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/scrub/filter"
)

func TestTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "removes leading and trailing spaces", input: "  hello world  ", expected: "hello world"},
		{name: "removes tabs and newlines", input: "\t\nhello\n\t", expected: "hello"},
		{name: "handles empty string", input: "", expected: ""},
		{name: "preserves internal whitespace", input: "  hello  world  ", expected: "hello  world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, filter.Trim(tt.input))
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "collapses runs of spaces", input: "a   b    c", expected: "a b c"},
		{name: "mixes tabs and newlines", input: "a\t\nb", expected: "a b"},
		{name: "trims the ends", input: "  a b  ", expected: "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, filter.NormalizeWhitespace(tt.input))
		})
	}
}

func TestSingleLine(t *testing.T) {
	assert.Equal(t, "a b c", filter.SingleLine("a\nb\r\nc"))
	assert.Equal(t, "", filter.SingleLine("\n\r\n"))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		limit    int
		expected string
	}{
		{name: "shorter input untouched", input: "abc", limit: 5, expected: "abc"},
		{name: "longer input cut", input: "abcdef", limit: 3, expected: "abc"},
		{name: "counts runes not bytes", input: "héllo", limit: 2, expected: "hé"},
		{name: "zero limit empties", input: "abc", limit: 0, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, filter.Truncate(tt.input, tt.limit))
		})
	}
}

func TestRemoveControlChars(t *testing.T) {
	assert.Equal(t, "ab", filter.RemoveControlChars("a\x00\x1bb"))
	assert.Equal(t, "a\nb\tc", filter.RemoveControlChars("a\nb\tc"))
}

func TestCase(t *testing.T) {
	assert.Equal(t, "hello", filter.ToLower("HeLLo"))
	assert.Equal(t, "HELLO", filter.ToUpper("heLLo"))
}
