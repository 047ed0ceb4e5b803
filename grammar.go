package scrub

import (
	"strconv"
	"strings"
)

// ParseRule parses the compact rule grammar into a structured Rule.
//
// Segments are separated by ';'. The first segment declares the type (or a
// '|'-separated list of types), optionally followed by ':' and a
// '|'-separated filter list:
//
//	string:trim|escape;min:3;max:64
//	numeric;values:10|77.3|99;default:10
//	string;required;email
//
// Later segments are key:value pairs; a value containing '|' becomes a list,
// each element coerced through the declared type. A bare segment is a
// boolean-true flag (required, assoc, or a standalone check name). Defaults
// are always scalar unless the type is array, so a '|'-bearing default on a
// scalar type collapses to its first element. Unknown keyed segments are kept
// verbatim in Extra; malformed segments are skipped, never fatal.
func ParseRule(s string) *Rule {
	r := &Rule{}
	for i, seg := range strings.Split(s, ";") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		if i == 0 {
			parseHead(r, seg)
			continue
		}
		parseSegment(r, seg)
	}
	if len(r.Types) == 0 {
		r.Types = []Type{TypeString}
	}
	return r
}

// parseHead handles the leading "type[:f1|f2]" segment.
func parseHead(r *Rule, seg string) {
	head, rest, hasFilters := strings.Cut(seg, ":")
	for _, tok := range strings.Split(head, "|") {
		if t, ok := canonicalType(strings.TrimSpace(tok)); ok {
			r.Types = append(r.Types, t)
		}
	}
	if !hasFilters {
		return
	}
	for _, name := range strings.Split(rest, "|") {
		if name = strings.TrimSpace(name); name != "" {
			r.Filters = append(r.Filters, FilterRef{Name: name})
		}
	}
}

func parseSegment(r *Rule, seg string) {
	key, val, keyed := strings.Cut(seg, ":")
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}

	if !keyed {
		switch key {
		case "required":
			r.Required = true
		case "assoc":
			t := true
			r.Assoc = &t
		case "recursive":
			r.Recursive = true
		default:
			// Standalone flags address the predicate catalogue; unknown
			// names stay as apply-time no-ops.
			r.Checks = append(r.Checks, CheckRef{Name: key})
		}
		return
	}

	val = strings.TrimSpace(val)
	switch key {
	case "values":
		for _, part := range strings.Split(val, "|") {
			r.Values = append(r.Values, coerceToken(r.firstType(), strings.TrimSpace(part)))
		}
	case "default":
		if r.firstType() == TypeArray {
			parts := strings.Split(val, "|")
			arr := make([]any, 0, len(parts))
			for _, part := range parts {
				arr = append(arr, strings.TrimSpace(part))
			}
			r.SetDefault(arr)
			return
		}
		first, _, _ := strings.Cut(val, "|")
		r.SetDefault(coerceToken(r.firstType(), strings.TrimSpace(first)))
	case "min":
		r.Min = parseBound(val)
	case "max":
		r.Max = parseBound(val)
	case "required":
		r.Required = parseFlag(val)
	case "assoc":
		b := parseFlag(val)
		r.Assoc = &b
	case "recursive":
		r.Recursive = parseFlag(val)
	default:
		if _, ok := filterRegistry[key]; ok {
			r.Filters = append(r.Filters, FilterRef{Name: key, Arg: val})
			return
		}
		if _, ok := checkRegistry[key]; ok {
			r.Checks = append(r.Checks, CheckRef{Name: key, Arg: val})
			return
		}
		if r.Extra == nil {
			r.Extra = make(map[string]string)
		}
		r.Extra[key] = val
	}
}

func parseBound(val string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseFlag(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
