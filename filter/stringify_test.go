package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/scrub/filter"
)

func TestStringify(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{name: "nil becomes empty string", input: nil, expected: ""},
		{name: "string passes through", input: "abc", expected: "abc"},
		{name: "true", input: true, expected: "true"},
		{name: "false", input: false, expected: "false"},
		{name: "int decimal form", input: 42, expected: "42"},
		{name: "negative int", input: -7, expected: "-7"},
		{name: "float decimal form", input: 77.3, expected: "77.3"},
		{name: "integral float drops the point", input: 10.0, expected: "10"},
		{name: "list serializes as JSON", input: []any{1, "a"}, expected: `[1,"a"]`},
		{name: "map serializes as JSON", input: map[string]any{"a": 1}, expected: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, filter.Stringify(tt.input))
		})
	}
}

func TestToNumeric(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected any
	}{
		{name: "int stays int", input: 42, expected: 42},
		{name: "plain digits become int", input: "42", expected: 42},
		{name: "decimal point forces float", input: "77.3", expected: 77.3},
		{name: "exponent forces float", input: "1e3", expected: 1000.0},
		{name: "integral float normalizes to int", input: 10.0, expected: 10},
		{name: "non-numeric collapses to zero", input: "abc", expected: 0},
		{name: "nil collapses to zero", input: nil, expected: 0},
		{name: "negative string", input: "-5", expected: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, filter.ToNumeric(tt.input))
		})
	}
}
