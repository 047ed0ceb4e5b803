package scrub

import (
	"fmt"
	"sort"
	"strings"
)

// Error codes recorded by the Validator. Failed utility checks record
// "invalid_<name>" via CheckCode.
const (
	CodeTypeMismatch     = "type_mismatch"
	CodeValueNotAllowed  = "value_not_allowed"
	CodeFieldRequired    = "field_required"
	CodeBoundViolation   = "bound_violation"
	CodeValidationFailed = "validation_failed"
)

// CheckCode returns the error code recorded when the named utility check
// fails.
func CheckCode(name string) string {
	return "invalid_" + name
}

// Entry is a single validation failure. It implements error so custom
// Validate hooks can return an *Entry to control the recorded code and
// message.
type Entry struct {
	Code    string
	Message string
}

func (e *Entry) Error() string {
	return e.Message
}

// Errors maps dotted field paths to the failures recorded at that path, in
// the order the checks ran.
type Errors map[string][]Entry

// Error summarizes the collection, one field per clause, fields in path
// order.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	paths := make([]string, 0, len(e))
	for path := range e {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var parts []string
	for _, path := range paths {
		for _, entry := range e[path] {
			parts = append(parts, fmt.Sprintf("%s: %s", path, entry.Message))
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e Errors) Empty() bool {
	return len(e) == 0
}

func (e Errors) add(path string, entry Entry) {
	e[path] = append(e[path], entry)
}

// Report is the outcome of one Validate call.
type Report struct {
	errs Errors
}

// Valid reports whether no errors were recorded.
func (r *Report) Valid() bool {
	return r.errs.Empty()
}

// Errors returns the full path-addressed collection.
func (r *Report) Errors() Errors {
	return r.errs
}

// Has reports whether any error was recorded at the given path.
func (r *Report) Has(path string) bool {
	return len(r.errs[path]) > 0
}

// First returns the first error recorded at the given path, or nil.
func (r *Report) First(path string) *Entry {
	entries := r.errs[path]
	if len(entries) == 0 {
		return nil
	}
	return &entries[0]
}
