// Package scrub is a declarative, rule-driven engine for cleaning and
// validating dynamic data trees, the map[string]any / []any shape produced
// by decoding JSON-like input.
//
// One rule model serves two engines. A rule can be written as a compact
// grammar string or as a structured Rule value, and describes a field's
// expected type, whitelist, bounds, default, named filters and checks, custom
// hooks, and nested schemas:
//
//	rules := scrub.RuleSet{
//	    "username": "string:trim|escape;min:3;max:32",
//	    "age":      "integer;default:18",
//	    "role":     "string;values:admin|editor|viewer;default:viewer",
//	    "email":    "string:trim;required;email",
//	    "posts": scrub.Rule{
//	        Types: []scrub.Type{scrub.TypeArray},
//	        Fields: scrub.RuleSet{
//	            "title": "string:trim;required",
//	            "tags":  scrub.Rule{Types: []scrub.Type{scrub.TypeArray}, Elem: "string:trim|slug"},
//	        },
//	    },
//	}
//
// The Sanitizer produces a cleaned copy of the input and never fails: type
// mismatches fall back to the field default or drop the key, whitelist misses
// do the same, and invalid arrays degrade to empty ones.
//
//	clean := scrub.NewSanitizer(rules).Sanitize(input)
//	name := clean.Get("username", "")
//
// The Validator never touches the data; it records every failure as a
// path-addressed entry (posts.0.tags.1) and reports them all at once:
//
//	report, err := scrub.NewValidator(rules).Validate(input)
//	if err != nil { ... } // a caller-supplied hook failed
//	if !report.Valid() {
//	    for path, entries := range report.Errors() { ... }
//	}
//
// Rule sets can also be loaded from serialized form with FromJSON and
// FromYAML. The scalar transforms and format predicates the engine dispatches
// to live in the filter and check subpackages and are usable on their own.
//
// Both engines are read-only after construction and safe for concurrent use;
// every call works on its own result tree.
package scrub
