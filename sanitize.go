package scrub

import (
	"github.com/dmitrymomot/scrub/filter"
)

// Option configures engine behavior.
type Option func(*options)

type options struct {
	lenient bool
}

// Lenient keeps unknown top-level scalar keys in the output, stringified and
// HTML-escaped, instead of dropping them. Unknown composite keys are dropped
// either way. The default policy is strict: only rule-governed keys survive.
func Lenient() Option {
	return func(o *options) {
		o.lenient = true
	}
}

// Sanitizer applies a RuleSet to dynamic trees, producing cleaned copies. It
// is read-only after construction and safe to reuse across calls.
type Sanitizer struct {
	rules map[string]*Rule
	opts  options
}

// NewSanitizer normalizes the rule set once and returns a reusable engine.
func NewSanitizer(rules RuleSet, opts ...Option) *Sanitizer {
	s := &Sanitizer{rules: compileSet(rules)}
	for _, opt := range opts {
		opt(&s.opts)
	}
	return s
}

// Sanitize builds a cleaned copy of data. It never fails: every fault
// resolves to the field default, a dropped key, or an empty array.
func (s *Sanitizer) Sanitize(data map[string]any) *Sanitized {
	return &Sanitized{tree: sanitizeTree(s.rules, data, s.opts)}
}

// Sanitized is the cleaned tree produced by one Sanitize call.
type Sanitized struct {
	tree map[string]any
}

// All returns the whole cleaned tree.
func (s *Sanitized) All() map[string]any {
	return s.tree
}

// Get returns the value at a dotted path (list segments are numeric indices),
// or def when the path does not resolve.
func (s *Sanitized) Get(path string, def any) any {
	if v, ok := lookupPath(s.tree, path); ok {
		return v
	}
	return def
}

// sanitizeTree applies each rule to its key; nested descents always run
// strict.
func sanitizeTree(rules map[string]*Rule, data map[string]any, opts options) map[string]any {
	out := make(map[string]any, len(rules))
	for name, rule := range rules {
		if rule == nil {
			continue
		}
		raw, present := data[name]
		if !present {
			if rule.HasDefault {
				if v, ok := applyType(rule, rule.Default); ok {
					out[name] = v
				}
			}
			continue
		}
		if v, ok := sanitizeField(rule, raw); ok {
			out[name] = v
		}
	}

	if opts.lenient {
		for key, v := range data {
			if _, governed := rules[key]; governed || isComposite(v) {
				continue
			}
			out[key] = filter.EscapeHTML(filter.Stringify(v))
		}
	}
	return out
}

// sanitizeField runs the full per-field pipeline: before hook, whitelist,
// type/filter pipeline, after hook. The bool result reports whether the field
// survives.
func sanitizeField(rule *Rule, v any) (any, bool) {
	usingDefault := false

	if rule.Before != nil {
		nv, err := rule.Before(v)
		if err != nil {
			// Hook faults resolve like type faults: default or drop.
			if !rule.HasDefault {
				return nil, false
			}
			v, usingDefault = rule.Default, true
		} else {
			v = nv
		}
	}

	if !usingDefault && len(rule.Values) > 0 && !whitelisted(rule.Values, v) {
		if !rule.HasDefault {
			return nil, false
		}
		// The default re-enters the pipeline with the whitelist bypassed.
		v, usingDefault = rule.Default, true
	}

	out, ok := applyType(rule, v)
	if !ok {
		if usingDefault || !rule.HasDefault {
			return nil, false
		}
		out, ok = applyType(rule, rule.Default)
		if !ok {
			return nil, false
		}
		usingDefault = true
	}

	if rule.After != nil {
		nv, err := rule.After(out)
		if err != nil {
			if usingDefault || !rule.HasDefault {
				return nil, false
			}
			def, ok := applyType(rule, rule.Default)
			if !ok {
				return nil, false
			}
			nv, err = rule.After(def)
			if err != nil {
				return nil, false
			}
		}
		out = nv
	}
	return out, true
}

// applyType is the main type/filter pipeline. Arrays never fault; every other
// type faults when the validity predicate rejects the value.
func applyType(rule *Rule, v any) (any, bool) {
	t := rule.firstType()
	if t == TypeArray {
		return sanitizeArray(rule, v), true
	}
	if t == TypeString {
		return applyFilters(filter.Stringify(v), rule.Filters), true
	}

	h := typeHandlers[t]
	if !h.valid(v) {
		return nil, false
	}
	return h.coerce(v), true
}

// sanitizeArray resolves the value's shape and applies the nested strategies:
// the explicit schema (Fields/Elem) produces the field's own children, bare
// filters touch scalar elements in place, and ChildRules sweeps every
// array-valued child, recursively when configured. Type mismatches and empty
// results collapse to an empty list.
func sanitizeArray(rule *Rule, v any) any {
	if !isComposite(v) {
		return []any{}
	}

	asMap := isAssoc(v)
	if rule.Assoc != nil {
		asMap = *rule.Assoc
	}

	var out any
	switch {
	case rule.fields != nil || rule.elem != nil:
		out = sanitizeWithSchema(rule, v, asMap)
	case len(rule.Filters) > 0:
		out = filterScalars(v, rule.Filters)
	default:
		out = cloneTree(v)
	}

	if rule.children != nil {
		out = sanitizeChildren(out, rule.children, rule.Recursive)
	}

	switch node := out.(type) {
	case []any:
		if len(node) == 0 {
			return []any{}
		}
	case map[string]any:
		if len(node) == 0 {
			return []any{}
		}
	}
	return out
}

func sanitizeWithSchema(rule *Rule, v any, asMap bool) any {
	switch node := v.(type) {
	case map[string]any:
		if asMap && rule.fields != nil {
			return sanitizeTree(rule.fields, node, options{})
		}
		// Forced list semantics: each value is an element, keys survive.
		out := make(map[string]any, len(node))
		for k, elem := range node {
			if ev, ok := sanitizeElement(rule, elem); ok {
				out[k] = ev
			}
		}
		return out
	case []any:
		out := make([]any, 0, len(node))
		for _, elem := range node {
			if ev, ok := sanitizeElement(rule, elem); ok {
				out = append(out, ev)
			}
		}
		return out
	}
	return []any{}
}

// sanitizeElement applies the explicit schema to one element: records go
// through Fields, everything else through the positional Elem rule. Elements
// neither can govern are dropped.
func sanitizeElement(rule *Rule, elem any) (any, bool) {
	if m, ok := elem.(map[string]any); ok && rule.fields != nil {
		return sanitizeTree(rule.fields, m, options{}), true
	}
	if rule.elem != nil {
		return sanitizeField(rule.elem, elem)
	}
	return nil, false
}

// filterScalars applies the declared filters to every scalar element in
// place; composite elements pass through untouched.
func filterScalars(v any, filters []FilterRef) any {
	switch node := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for k, elem := range node {
			if isComposite(elem) {
				out[k] = cloneTree(elem)
				continue
			}
			out[k] = applyFilters(filter.Stringify(elem), filters)
		}
		return out
	case []any:
		out := make([]any, len(node))
		for i, elem := range node {
			if isComposite(elem) {
				out[i] = cloneTree(elem)
				continue
			}
			out[i] = applyFilters(filter.Stringify(elem), filters)
		}
		return out
	}
	return v
}

// sanitizeChildren sweeps every array-valued child with the uniform schema.
// Lists are transparent containers; records are sanitized against the schema.
// In recursive mode, composite values under keys the schema does not govern
// are kept and descended into, so the schema reaches arbitrary depth.
func sanitizeChildren(v any, rules map[string]*Rule, recursive bool) any {
	switch node := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for k, child := range node {
			out[k] = sanitizeChild(child, rules, recursive)
		}
		return out
	case []any:
		out := make([]any, len(node))
		for i, child := range node {
			out[i] = sanitizeChild(child, rules, recursive)
		}
		return out
	}
	return v
}

func sanitizeChild(child any, rules map[string]*Rule, recursive bool) any {
	switch c := child.(type) {
	case map[string]any:
		cleaned := sanitizeTree(rules, c, options{})
		if recursive {
			for k, raw := range c {
				if _, governed := rules[k]; governed || !isComposite(raw) {
					continue
				}
				cleaned[k] = sanitizeChild(raw, rules, recursive)
			}
		}
		return cleaned
	case []any:
		out := make([]any, len(c))
		for i, elem := range c {
			out[i] = sanitizeChild(elem, rules, recursive)
		}
		return out
	}
	return child
}
