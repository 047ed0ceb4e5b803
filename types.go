package scrub

import (
	"github.com/dmitrymomot/scrub/check"
	"github.com/dmitrymomot/scrub/filter"
)

// Type identifies one of the closed set of value types a Rule can declare.
type Type string

const (
	TypeString Type = "string"
	TypeArray  Type = "array"
	TypeInt    Type = "int"
	TypeFloat  Type = "float"
	TypeNumber Type = "number"
	TypeBool   Type = "bool"
)

// typeAliases maps every accepted grammar spelling to its canonical tag.
var typeAliases = map[string]Type{
	"string":   TypeString,
	"array":    TypeArray,
	"int":      TypeInt,
	"integer":  TypeInt,
	"float":    TypeFloat,
	"floating": TypeFloat,
	"number":   TypeNumber,
	"numeric":  TypeNumber,
	"bool":     TypeBool,
	"boolean":  TypeBool,
}

func canonicalType(name string) (Type, bool) {
	t, ok := typeAliases[name]
	return t, ok
}

// typeHandler pairs the validity predicate with the coercion for one type tag.
// Coercions assume the predicate passed; they still degrade safely when it did
// not.
type typeHandler struct {
	valid  func(any) bool
	coerce func(any) any
}

var typeHandlers = map[Type]typeHandler{
	TypeString: {
		valid:  func(any) bool { return true },
		coerce: func(v any) any { return filter.Stringify(v) },
	},
	TypeArray: {
		valid: isComposite,
		coerce: func(v any) any {
			if isComposite(v) {
				return v
			}
			return []any{}
		},
	},
	TypeInt: {
		valid: check.Integer,
		coerce: func(v any) any {
			switch n := filter.ToNumeric(v).(type) {
			case int:
				return n
			case float64:
				return int(n)
			}
			return 0
		},
	},
	TypeFloat: {
		valid: check.Numeric,
		coerce: func(v any) any {
			switch n := filter.ToNumeric(v).(type) {
			case int:
				return float64(n)
			case float64:
				return n
			}
			return float64(0)
		},
	},
	TypeNumber: {
		valid:  check.Numeric,
		coerce: func(v any) any { return filter.ToNumeric(v) },
	},
	TypeBool: {
		// Strict acceptance: only genuine booleans pass. The coercion is
		// deliberately lenient and truth-casts the string form.
		valid:  func(v any) bool { _, ok := v.(bool); return ok },
		coerce: func(v any) any { return truthy(v) },
	},
}

func truthy(v any) bool {
	switch filter.ToLower(filter.Trim(filter.Stringify(v))) {
	case "", "0", "false", "no", "off":
		return false
	}
	return true
}

// coerceToken runs a raw grammar token through the declared type's dispatch,
// so "values:10|77.3|99" on a numeric rule yields numbers. Tokens the type
// does not accept stay verbatim strings. Bool tokens truth-cast directly:
// grammar tokens are always strings and would never pass the strict bool
// acceptance.
func coerceToken(t Type, token string) any {
	if t == TypeBool {
		return truthy(token)
	}
	h, ok := typeHandlers[t]
	if !ok || !h.valid(token) {
		return token
	}
	return h.coerce(token)
}
