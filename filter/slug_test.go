package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/scrub/filter"
)

func TestTransliterate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "diacritics fold to ascii", input: "café", expected: "cafe"},
		{name: "multiple marks", input: "naïve déjà", expected: "naive deja"},
		{name: "plain ascii untouched", input: "hello", expected: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, filter.Transliterate(tt.input))
		})
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "spaces become hyphens", input: "Hello World", expected: "hello-world"},
		{name: "punctuation collapses", input: "Hello, World!", expected: "hello-world"},
		{name: "diacritics transliterate", input: "Déjà Vu", expected: "deja-vu"},
		{name: "edges trimmed", input: "  --Hello--  ", expected: "hello"},
		{name: "empty input", input: "", expected: ""},
		{name: "already a slug", input: "hello-world", expected: "hello-world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, filter.Slug(tt.input))
		})
	}
}
