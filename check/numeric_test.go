package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/scrub/check"
)

func TestNumeric(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected bool
	}{
		{name: "int", input: 42, expected: true},
		{name: "float", input: 77.3, expected: true},
		{name: "numeric string", input: "77.3", expected: true},
		{name: "exponent string", input: "1e3", expected: true},
		{name: "padded numeric string", input: " 42 ", expected: true},
		{name: "word", input: "abc", expected: false},
		{name: "empty string", input: "", expected: false},
		{name: "bool", input: true, expected: false},
		{name: "nil", input: nil, expected: false},
		{name: "list", input: []any{1}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, check.Numeric(tt.input))
		})
	}
}

func TestInteger(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected bool
	}{
		{name: "int", input: 42, expected: true},
		{name: "integral float", input: 7.0, expected: true},
		{name: "fractional float", input: 7.5, expected: false},
		{name: "integral string", input: "7", expected: true},
		{name: "fractional string", input: "7.5", expected: false},
		{name: "word", input: "abc", expected: false},
		{name: "nil", input: nil, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, check.Integer(tt.input))
		})
	}
}
