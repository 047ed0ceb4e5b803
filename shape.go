package scrub

import (
	"strconv"
	"strings"
)

func isList(v any) bool {
	_, ok := v.([]any)
	return ok
}

func isAssoc(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

func isComposite(v any) bool {
	return isList(v) || isAssoc(v)
}

// joinPath composes dotted field paths as validation and lookup recurse into
// nested structures.
func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

// lookupPath walks a dotted path through nested maps and lists; list segments
// are numeric indices.
func lookupPath(tree any, path string) (any, bool) {
	cur := tree
	for _, part := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[part]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			cur = node[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

// cloneTree deep-copies the composite layers of a tree; scalars are shared.
func cloneTree(v any) any {
	switch node := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for k, child := range node {
			out[k] = cloneTree(child)
		}
		return out
	case []any:
		out := make([]any, len(node))
		for i, child := range node {
			out[i] = cloneTree(child)
		}
		return out
	}
	return v
}

// numericValue extracts a float magnitude from genuine Go numbers only;
// numeric strings do not qualify.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// equalValue implements strict whitelist equality: numbers compare
// numerically across int/float representations, all other scalars by ==, and
// composites never match.
func equalValue(a, b any) bool {
	if isComposite(a) || isComposite(b) {
		return false
	}
	if af, ok := numericValue(a); ok {
		bf, ok := numericValue(b)
		return ok && af == bf
	}
	if _, ok := numericValue(b); ok {
		return false
	}
	return a == b
}

func whitelisted(values []any, v any) bool {
	for _, allowed := range values {
		if equalValue(allowed, v) {
			return true
		}
	}
	return false
}
