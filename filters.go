package scrub

import (
	"strconv"

	"github.com/dmitrymomot/scrub/filter"
)

// filterFunc applies one named transform; arg carries the raw grammar
// argument, empty when absent.
type filterFunc func(s, arg string) string

// filterRegistry maps grammar names to the string-filter collaborators.
// Unknown names are apply-time no-ops so rule sets stay forward compatible.
var filterRegistry = map[string]filterFunc{
	"trim":        func(s, _ string) string { return filter.Trim(s) },
	"escape":      func(s, _ string) string { return filter.EscapeHTML(s) },
	"strip_tags":  func(s, _ string) string { return filter.StripTags(s) },
	"text":        func(s, _ string) string { return filter.Text(s) },
	"lower":       func(s, _ string) string { return filter.ToLower(s) },
	"upper":       func(s, _ string) string { return filter.ToUpper(s) },
	"single_line": func(s, _ string) string { return filter.SingleLine(s) },
	"slug":        func(s, _ string) string { return filter.Slug(s) },
	"translit":    func(s, _ string) string { return filter.Transliterate(s) },
	// Values reaching a filter are already in canonical string form.
	"stringify": func(s, _ string) string { return s },
	"truncate": func(s, arg string) string {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return s
		}
		return filter.Truncate(s, n)
	},
}

// applyFilters runs the declared filters in order.
func applyFilters(s string, filters []FilterRef) string {
	for _, f := range filters {
		if fn, ok := filterRegistry[f.Name]; ok {
			s = fn(s, f.Arg)
		}
	}
	return s
}
