package scrub

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/dmitrymomot/scrub/check"
)

// Validator checks dynamic trees against a RuleSet, recording every failure
// as a path-addressed entry. It never mutates or drops data and is read-only
// after construction.
type Validator struct {
	rules map[string]*Rule
}

// NewValidator normalizes the rule set once and returns a reusable engine.
func NewValidator(rules RuleSet) *Validator {
	return &Validator{rules: compileSet(rules)}
}

// Validate checks data against the rule set. The returned error is non-nil
// only when a caller-supplied Before hook fails; engine findings are
// collected in the Report. All applicable checks run for every field; a
// failure never short-circuits the rest.
func (v *Validator) Validate(data map[string]any) (*Report, error) {
	errs := Errors{}
	if err := validateTree(v.rules, data, "", errs); err != nil {
		return nil, err
	}
	return &Report{errs: errs}, nil
}

func validateTree(rules map[string]*Rule, data map[string]any, prefix string, errs Errors) error {
	for name, rule := range rules {
		if rule == nil {
			continue
		}
		path := joinPath(prefix, name)

		raw, present := data[name]
		if !present {
			if rule.Required {
				errs.add(path, Entry{Code: CodeFieldRequired, Message: "field is required"})
			}
			continue
		}
		// Present-but-null bypasses type and format checks entirely.
		if raw == nil {
			continue
		}
		if err := validateField(rule, raw, path, errs); err != nil {
			return err
		}
	}
	return nil
}

func validateField(rule *Rule, v any, path string, errs Errors) error {
	if rule.Before != nil {
		nv, err := rule.Before(v)
		if err != nil {
			return fmt.Errorf("before hook at %s: %w", path, err)
		}
		v = nv
	}

	typeOK := matchesAnyType(rule, v)
	if !typeOK {
		errs.add(path, Entry{Code: CodeTypeMismatch, Message: typeMismatchMessage(rule)})
	}

	if len(rule.Values) > 0 && !whitelisted(rule.Values, v) {
		errs.add(path, Entry{Code: CodeValueNotAllowed, Message: "value is not allowed"})
	}

	checkBounds(rule, v, path, errs)

	for _, c := range rule.Checks {
		fn, ok := checkRegistry[c.Name]
		if !ok {
			continue
		}
		if !fn(v, c.Arg) {
			errs.add(path, Entry{Code: CheckCode(c.Name), Message: checkMessage(c.Name)})
		}
	}

	if rule.Validate != nil {
		if err := rule.Validate(v); err != nil {
			var entry *Entry
			if errors.As(err, &entry) {
				errs.add(path, *entry)
			} else {
				errs.add(path, Entry{Code: CodeValidationFailed, Message: err.Error()})
			}
		}
	}

	if rule.hasType(TypeArray) && isComposite(v) {
		return validateArray(rule, v, path, errs)
	}
	return nil
}

// matchesAnyType implements OR semantics over the declared type list.
func matchesAnyType(rule *Rule, v any) bool {
	if len(rule.Types) == 0 {
		return true
	}
	for _, t := range rule.Types {
		if h, ok := typeHandlers[t]; ok && h.valid(v) {
			return true
		}
	}
	return false
}

func typeMismatchMessage(rule *Rule) string {
	if len(rule.Types) == 1 {
		return "must be of type " + string(rule.Types[0])
	}
	names := ""
	for i, t := range rule.Types {
		if i > 0 {
			names += " or "
		}
		names += string(t)
	}
	return "must be of type " + names
}

// checkBounds compares numeric values by magnitude and strings by character
// count. Bounds on any other type are a no-op.
func checkBounds(rule *Rule, v any, path string, errs Errors) {
	if rule.Min == nil && rule.Max == nil {
		return
	}

	var (
		size    float64
		kind    string
		sizable bool
	)
	switch {
	case rule.hasNumericType() && check.Numeric(v):
		if f, ok := numericValue(v); ok {
			size, sizable, kind = f, true, "number"
		} else if s, isStr := v.(string); isStr {
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				size, sizable, kind = f, true, "number"
			}
		}
	case rule.hasType(TypeString):
		if s, ok := v.(string); ok {
			size, sizable, kind = float64(utf8.RuneCountInString(s)), true, "string"
		}
	}
	if !sizable {
		return
	}

	if rule.Min != nil && size < *rule.Min {
		errs.add(path, Entry{Code: CodeBoundViolation, Message: boundMessage(kind, "at least", *rule.Min)})
	}
	if rule.Max != nil && size > *rule.Max {
		errs.add(path, Entry{Code: CodeBoundViolation, Message: boundMessage(kind, "at most", *rule.Max)})
	}
}

func boundMessage(kind, dir string, bound float64) string {
	b := strconv.FormatFloat(bound, 'f', -1, 64)
	if kind == "string" {
		return "must be " + dir + " " + b + " characters long"
	}
	return "must be " + dir + " " + b
}

// validateArray recurses into a composite value: the explicit schema
// (Fields/Elem) validates the field's own children with per-index paths, and
// ChildRules validates every array-valued child against the uniform schema,
// through all depths when Recursive is set.
func validateArray(rule *Rule, v any, path string, errs Errors) error {
	asMap := isAssoc(v)
	if rule.Assoc != nil {
		asMap = *rule.Assoc
	}

	if rule.fields != nil || rule.elem != nil {
		switch node := v.(type) {
		case map[string]any:
			if asMap && rule.fields != nil {
				if err := validateTree(rule.fields, node, path, errs); err != nil {
					return err
				}
			} else {
				for k, elem := range node {
					if err := validateElement(rule, elem, joinPath(path, k), errs); err != nil {
						return err
					}
				}
			}
		case []any:
			for i, elem := range node {
				if err := validateElement(rule, elem, joinPath(path, strconv.Itoa(i)), errs); err != nil {
					return err
				}
			}
		}
	}

	if rule.children != nil {
		return validateChildren(v, rule.children, rule.Recursive, path, errs)
	}
	return nil
}

func validateElement(rule *Rule, elem any, path string, errs Errors) error {
	if m, ok := elem.(map[string]any); ok && rule.fields != nil {
		return validateTree(rule.fields, m, path, errs)
	}
	if rule.elem != nil && elem != nil {
		return validateField(rule.elem, elem, path, errs)
	}
	return nil
}

func validateChildren(v any, rules map[string]*Rule, recursive bool, path string, errs Errors) error {
	switch node := v.(type) {
	case map[string]any:
		for k, child := range node {
			if !isComposite(child) {
				continue
			}
			if err := validateChild(child, rules, recursive, joinPath(path, k), errs); err != nil {
				return err
			}
		}
	case []any:
		for i, child := range node {
			if !isComposite(child) {
				continue
			}
			if err := validateChild(child, rules, recursive, joinPath(path, strconv.Itoa(i)), errs); err != nil {
				return err
			}
		}
	}
	return nil
}

// validateChild mirrors the sanitizer's descent: records are validated
// against the schema, lists are transparent containers, and recursive mode
// follows composite values under ungoverned keys to arbitrary depth.
func validateChild(child any, rules map[string]*Rule, recursive bool, path string, errs Errors) error {
	switch c := child.(type) {
	case map[string]any:
		if err := validateTree(rules, c, path, errs); err != nil {
			return err
		}
		if !recursive {
			return nil
		}
		for k, gc := range c {
			if _, governed := rules[k]; governed || !isComposite(gc) {
				continue
			}
			if err := validateChild(gc, rules, recursive, joinPath(path, k), errs); err != nil {
				return err
			}
		}
	case []any:
		for i, elem := range c {
			if !isComposite(elem) {
				continue
			}
			if err := validateChild(elem, rules, recursive, joinPath(path, strconv.Itoa(i)), errs); err != nil {
				return err
			}
		}
	}
	return nil
}
