package scrub

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/scrub/filter"
)

// Hook transforms a value before or after the main type/filter pipeline. A
// non-nil error is a hook fault: the Sanitizer resolves it like a type
// mismatch (default or drop), the Validator aborts the call with it.
type Hook func(any) (any, error)

// FilterRef names a registered scalar transform with an optional argument.
type FilterRef struct {
	Name string
	Arg  string
}

// CheckRef names a registered predicate with an optional argument.
type CheckRef struct {
	Name string
	Arg  string
}

// Rule is the normalized constraint set for one field. Rules are built once
// per engine and never mutated afterwards.
type Rule struct {
	// Types lists the acceptable types. Validation accepts a value matching
	// any listed type; the first entry drives sanitizer coercion. Empty means
	// string.
	Types []Type

	// Filters are applied in order after string coercion (sanitization only).
	Filters []FilterRef

	// Values is an optional whitelist checked with strict equality.
	Values []any

	// Default is the fallback used when the key is absent, the whitelist
	// misses, or type coercion fails. HasDefault distinguishes an explicit
	// nil default from no default; it is set automatically by SetDefault and
	// the grammar.
	Default    any
	HasDefault bool

	// Min and Max bound numeric values by magnitude and strings by character
	// count (validation only). They are a no-op for other types.
	Min *float64
	Max *float64

	// Required makes absence itself a validation error.
	Required bool

	// Fields is the explicit schema for a nested map, or for each map element
	// of a list. Elem is the positional rule applied to every element of a
	// list when the elements are scalars rather than records.
	Fields RuleSet
	Elem   any

	// ChildRules is a uniform schema applied to every array-valued child,
	// regardless of key name; Recursive extends it to every nesting depth.
	ChildRules RuleSet
	Recursive  bool

	// Assoc forces map (true) or list (false) interpretation of the field's
	// value, bypassing shape auto-detection.
	Assoc *bool

	// Before and After run around the main pipeline during sanitization;
	// Before also runs ahead of validation checks.
	Before Hook
	After  Hook

	// Validate is a custom predicate hook (validation only). Returning an
	// *Entry overrides the recorded code and message; any other error records
	// code "validation_failed".
	Validate func(any) error

	// Checks dispatches to the named predicate collaborators.
	Checks []CheckRef

	// Extra holds unknown grammar keys verbatim, for forward compatibility.
	Extra map[string]string

	// Compiled forms of the nested schemas, resolved once per engine.
	fields   map[string]*Rule
	children map[string]*Rule
	elem     *Rule
}

// SetDefault sets the fallback value and marks it present.
func (r *Rule) SetDefault(v any) *Rule {
	r.Default = v
	r.HasDefault = true
	return r
}

func (r *Rule) firstType() Type {
	if len(r.Types) == 0 {
		return TypeString
	}
	return r.Types[0]
}

func (r *Rule) hasType(t Type) bool {
	for _, rt := range r.Types {
		if rt == t {
			return true
		}
	}
	return len(r.Types) == 0 && t == TypeString
}

func (r *Rule) hasNumericType() bool {
	return r.hasType(TypeInt) || r.hasType(TypeFloat) || r.hasType(TypeNumber)
}

// RuleSet maps field names to raw rules: grammar strings, Rule values, or
// decoded map forms.
type RuleSet map[string]any

// normalizeRule turns any raw rule form into a structured Rule. The result is
// always a private copy; unusable forms yield nil and the field is ignored.
func normalizeRule(raw any) *Rule {
	switch r := raw.(type) {
	case nil:
		return nil
	case *Rule:
		cp := *r
		return &cp
	case Rule:
		cp := r
		return &cp
	case string:
		return ParseRule(r)
	case map[string]any:
		return ruleFromMap(r)
	}
	return nil
}

// compileSet normalizes a rule set and resolves its nested schemas, so the
// recursive engines never re-parse during descent.
func compileSet(rs RuleSet) map[string]*Rule {
	out := make(map[string]*Rule, len(rs))
	for name, raw := range rs {
		out[name] = compileRule(raw)
	}
	return out
}

func compileRule(raw any) *Rule {
	r := normalizeRule(raw)
	if r == nil {
		return nil
	}
	if r.Fields != nil {
		r.fields = compileSet(r.Fields)
	}
	if r.ChildRules != nil {
		r.children = compileSet(r.ChildRules)
	}
	if r.Elem != nil {
		r.elem = compileRule(r.Elem)
	}
	return r
}

// ruleFromMap builds a Rule from the decoded-JSON/YAML map form. Hooks are
// code-only and cannot appear here.
func ruleFromMap(m map[string]any) *Rule {
	r := &Rule{}
	for key, v := range m {
		switch key {
		case "type":
			for _, tok := range stringList(v) {
				if t, ok := canonicalType(strings.TrimSpace(tok)); ok {
					r.Types = append(r.Types, t)
				}
			}
		case "filters":
			for _, name := range stringList(v) {
				if name = strings.TrimSpace(name); name != "" {
					r.Filters = append(r.Filters, FilterRef{Name: name})
				}
			}
		case "values":
			r.Values = valueList(v)
		case "default":
			r.SetDefault(v)
		case "min":
			r.Min = boundOf(v)
		case "max":
			r.Max = boundOf(v)
		case "required":
			r.Required = flagOf(v)
		case "fields", "data":
			if fields, ok := v.(map[string]any); ok {
				r.Fields = RuleSet(fields)
			}
		case "elem":
			r.Elem = v
		case "childRules", "child_rules":
			if children, ok := v.(map[string]any); ok {
				r.ChildRules = RuleSet(children)
			}
		case "recursive", "recursiveChildRules":
			r.Recursive = flagOf(v)
		case "assoc":
			b := flagOf(v)
			r.Assoc = &b
		default:
			r.addByName(key, v)
		}
	}

	// Whitelist and default entries serialized as strings follow the declared
	// type, matching the grammar's coercion behavior.
	for i, val := range r.Values {
		if s, ok := val.(string); ok {
			r.Values[i] = coerceToken(r.firstType(), s)
		}
	}
	if s, ok := r.Default.(string); ok && r.HasDefault && r.firstType() != TypeArray {
		r.Default = coerceToken(r.firstType(), s)
	}
	return r
}

// addByName routes an unreserved key to the filter or check registries, or
// stores it verbatim.
func (r *Rule) addByName(key string, v any) {
	if _, ok := filterRegistry[key]; ok {
		arg := ""
		if !flagOnly(v) {
			arg = filter.Stringify(v)
		}
		r.Filters = append(r.Filters, FilterRef{Name: key, Arg: arg})
		return
	}
	if _, ok := checkRegistry[key]; ok {
		arg := ""
		if !flagOnly(v) {
			arg = filter.Stringify(v)
		}
		r.Checks = append(r.Checks, CheckRef{Name: key, Arg: arg})
		return
	}
	if r.Extra == nil {
		r.Extra = make(map[string]string)
	}
	r.Extra[key] = filter.Stringify(v)
}

func flagOnly(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

func stringList(v any) []string {
	switch val := v.(type) {
	case string:
		return strings.Split(val, "|")
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			out = append(out, filter.Stringify(item))
		}
		return out
	case []string:
		return val
	}
	return nil
}

func valueList(v any) []any {
	switch val := v.(type) {
	case []any:
		out := make([]any, len(val))
		copy(out, val)
		return out
	case nil:
		return nil
	default:
		return []any{val}
	}
}

func boundOf(v any) *float64 {
	if f, ok := numericValue(v); ok {
		return &f
	}
	if s, ok := v.(string); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return &f
		}
	}
	return nil
}

func flagOf(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return parseFlag(val)
	}
	if f, ok := numericValue(v); ok {
		return f != 0
	}
	return false
}
