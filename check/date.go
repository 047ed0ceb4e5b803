package check

import (
	"strings"
	"time"
)

// dateLayouts covers the date and timestamp shapes commonly seen in form and
// API input.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02.01.2006",
	"02/01/2006",
	"01/02/2006",
	"Jan 2, 2006",
}

// Date reports whether the value parses as a date in one of the supported
// layouts.
func Date(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// DateLayout reports whether the value parses as a date in the given layout.
func DateLayout(s, layout string) bool {
	_, err := time.Parse(layout, strings.TrimSpace(s))
	return err == nil
}
