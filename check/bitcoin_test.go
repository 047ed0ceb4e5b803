package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/scrub/check"
)

func TestBitcoinAddress(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "legacy p2pkh", input: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", expected: true},
		{name: "legacy p2sh", input: "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy", expected: true},
		{name: "bech32", input: "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq", expected: true},
		{name: "base58 forbidden character", input: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfN0", expected: false},
		{name: "wrong prefix", input: "2A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", expected: false},
		{name: "too short", input: "1abc", expected: false},
		{name: "empty", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, check.BitcoinAddress(tt.input))
		})
	}
}
