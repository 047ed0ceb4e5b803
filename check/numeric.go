package check

import (
	"math"
	"strconv"
	"strings"
)

// Numeric reports whether the value is a genuine number or a numeric-looking
// string. This is the acceptance check behind the engine's number, int and
// float types.
func Numeric(v any) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return false
		}
		_, err := strconv.ParseFloat(s, 64)
		return err == nil
	}
	return false
}

// Integer reports whether the value is numeric and carries no fractional
// part, so "7" and 7.0 pass while "7.5" does not.
func Integer(v any) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return float64(n) == math.Trunc(float64(n))
	case float64:
		return n == math.Trunc(n)
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return false
		}
		return f == math.Trunc(f)
	}
	return false
}
