package check

import "unicode"

// StrongPassword reports whether the value meets the usual strength bar: at
// least minLen characters with an uppercase letter, a lowercase letter, a
// digit and a special character. A non-positive minLen falls back to 8.
func StrongPassword(s string, minLen int) bool {
	if minLen <= 0 {
		minLen = 8
	}

	var upper, lower, digit, special bool
	count := 0
	for _, r := range s {
		count++
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}

	return count >= minLen && upper && lower && digit && special
}
