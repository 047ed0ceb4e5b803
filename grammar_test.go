package scrub_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/scrub"
)

func TestParseRuleHead(t *testing.T) {
	t.Run("type with filter list", func(t *testing.T) {
		r := scrub.ParseRule("string:trim|escape;min:3;max:20")
		assert.Equal(t, []scrub.Type{scrub.TypeString}, r.Types)
		assert.Equal(t, []scrub.FilterRef{{Name: "trim"}, {Name: "escape"}}, r.Filters)
		require.NotNil(t, r.Min)
		require.NotNil(t, r.Max)
		assert.Equal(t, 3.0, *r.Min)
		assert.Equal(t, 20.0, *r.Max)
	})

	t.Run("type aliases canonicalize", func(t *testing.T) {
		assert.Equal(t, []scrub.Type{scrub.TypeInt}, scrub.ParseRule("integer").Types)
		assert.Equal(t, []scrub.Type{scrub.TypeFloat}, scrub.ParseRule("floating").Types)
		assert.Equal(t, []scrub.Type{scrub.TypeNumber}, scrub.ParseRule("numeric").Types)
		assert.Equal(t, []scrub.Type{scrub.TypeBool}, scrub.ParseRule("boolean").Types)
	})

	t.Run("type list keeps declared order", func(t *testing.T) {
		r := scrub.ParseRule("string|numeric")
		assert.Equal(t, []scrub.Type{scrub.TypeString, scrub.TypeNumber}, r.Types)
	})

	t.Run("unknown type token defaults to string", func(t *testing.T) {
		r := scrub.ParseRule("whatever")
		assert.Equal(t, []scrub.Type{scrub.TypeString}, r.Types)
	})
}

func TestParseRuleValues(t *testing.T) {
	t.Run("numeric whitelist coerces elements", func(t *testing.T) {
		r := scrub.ParseRule("numeric;values:10|77.3|99")
		assert.Equal(t, []any{10, 77.3, 99}, r.Values)
	})

	t.Run("string whitelist stays verbatim", func(t *testing.T) {
		r := scrub.ParseRule("string;values:admin|editor")
		assert.Equal(t, []any{"admin", "editor"}, r.Values)
	})

	t.Run("non-numeric token on numeric rule stays a string", func(t *testing.T) {
		r := scrub.ParseRule("numeric;values:10|oops")
		assert.Equal(t, []any{10, "oops"}, r.Values)
	})
}

func TestParseRuleDefault(t *testing.T) {
	t.Run("default follows the declared type", func(t *testing.T) {
		r := scrub.ParseRule("integer;default:10")
		assert.True(t, r.HasDefault)
		assert.Equal(t, 10, r.Default)
	})

	t.Run("scalar default collapses a pipe list to its first element", func(t *testing.T) {
		r := scrub.ParseRule("string;default:a|b|c")
		assert.Equal(t, "a", r.Default)
	})

	t.Run("array default keeps the whole list", func(t *testing.T) {
		r := scrub.ParseRule("array;default:a|b")
		assert.Equal(t, []any{"a", "b"}, r.Default)
	})
}

func TestParseRuleFlags(t *testing.T) {
	t.Run("bare required flag", func(t *testing.T) {
		r := scrub.ParseRule("string;required")
		assert.True(t, r.Required)
	})

	t.Run("bare check flag", func(t *testing.T) {
		r := scrub.ParseRule("string;required;email")
		assert.Equal(t, []scrub.CheckRef{{Name: "email"}}, r.Checks)
	})

	t.Run("keyed check with argument", func(t *testing.T) {
		r := scrub.ParseRule("string;password:12")
		assert.Equal(t, []scrub.CheckRef{{Name: "password", Arg: "12"}}, r.Checks)
	})

	t.Run("keyed filter with argument", func(t *testing.T) {
		r := scrub.ParseRule("string:trim;truncate:10")
		assert.Equal(t, []scrub.FilterRef{{Name: "trim"}, {Name: "truncate", Arg: "10"}}, r.Filters)
	})

	t.Run("assoc flag", func(t *testing.T) {
		r := scrub.ParseRule("array;assoc")
		require.NotNil(t, r.Assoc)
		assert.True(t, *r.Assoc)
	})
}

func TestParseRuleResilience(t *testing.T) {
	t.Run("unknown keyed segment kept verbatim", func(t *testing.T) {
		r := scrub.ParseRule("string;x-custom:abc")
		assert.Equal(t, map[string]string{"x-custom": "abc"}, r.Extra)
	})

	t.Run("empty and malformed segments are skipped", func(t *testing.T) {
		r := scrub.ParseRule("string;;min:oops; ;max:5")
		assert.Nil(t, r.Min)
		require.NotNil(t, r.Max)
		assert.Equal(t, 5.0, *r.Max)
	})

	t.Run("unknown bare flag becomes a check no-op", func(t *testing.T) {
		r := scrub.ParseRule("string;frobnicate")
		assert.Equal(t, []scrub.CheckRef{{Name: "frobnicate"}}, r.Checks)
	})
}
