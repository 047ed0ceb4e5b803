package filter

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Stringify converts any value to its canonical string form: numbers in
// decimal notation, booleans as "true"/"false", nil as the empty string, and
// composite values (slices, maps) as their JSON serialization.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int8:
		return strconv.FormatInt(int64(val), 10)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case uint16:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// ToNumeric normalizes any value to an int or a float64. The int-vs-float
// decision follows the canonical string form: a decimal point or exponent
// marker yields a float, everything else an int. Values with no usable numeric
// form yield int zero.
func ToNumeric(v any) any {
	s := strings.TrimSpace(Stringify(v))
	if s == "" {
		return 0
	}

	if strings.ContainsAny(s, ".eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return f
	}

	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// Out-of-range integer forms still carry a usable float value.
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0
		}
		return f
	}
	return int(i)
}
