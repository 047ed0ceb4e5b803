package scrub

import (
	"strconv"

	"github.com/dmitrymomot/scrub/check"
	"github.com/dmitrymomot/scrub/filter"
)

// checkFunc reports whether a value passes one named predicate; arg carries
// the raw grammar argument, empty when absent.
type checkFunc func(v any, arg string) bool

// checkRegistry maps grammar flag names to the predicate collaborators. Most
// predicates operate on the canonical string form of the value.
var checkRegistry = map[string]checkFunc{
	"email":        stringCheck(check.Email),
	"url":          stringCheck(check.URL),
	"ip":           stringCheck(check.IP),
	"mac":          stringCheck(check.MAC),
	"phone":        stringCheck(check.Phone),
	"hex_color":    stringCheck(check.HexColor),
	"uuid":         stringCheck(check.UUID),
	"json":         stringCheck(check.JSON),
	"base64":       stringCheck(check.Base64),
	"domain":       stringCheck(check.Domain),
	"semver":       stringCheck(check.Semver),
	"alpha":        stringCheck(check.Alpha),
	"alphanumeric": stringCheck(check.Alphanumeric),
	"slug":         stringCheck(check.Slug),
	"palindrome":   stringCheck(check.Palindrome),
	"emoji":        stringCheck(check.HasEmoji),
	"btc":          stringCheck(check.BitcoinAddress),
	"numeric":      func(v any, _ string) bool { return check.Numeric(v) },
	"date": func(v any, arg string) bool {
		s := filter.Stringify(v)
		if arg != "" {
			return check.DateLayout(s, arg)
		}
		return check.Date(s)
	},
	"password": func(v any, arg string) bool {
		minLen, _ := strconv.Atoi(arg)
		return check.StrongPassword(filter.Stringify(v), minLen)
	},
}

// checkMessages holds the fixed failure message per predicate; names missing
// here fall back to a generic phrasing.
var checkMessages = map[string]string{
	"email":        "must be a valid email address",
	"url":          "must be a valid URL",
	"ip":           "must be a valid IP address",
	"mac":          "must be a valid MAC address",
	"phone":        "must be a valid phone number",
	"hex_color":    "must be a valid hex color",
	"uuid":         "must be a valid UUID",
	"json":         "must be valid JSON",
	"base64":       "must be valid base64",
	"domain":       "must be a valid domain name",
	"semver":       "must be a valid semantic version",
	"alpha":        "may only contain letters",
	"alphanumeric": "may only contain letters and numbers",
	"slug":         "must be a valid slug",
	"palindrome":   "must be a palindrome",
	"emoji":        "must contain an emoji",
	"btc":          "must be a valid Bitcoin address",
	"numeric":      "must be a number",
	"date":         "must be a valid date",
	"password":     "is not strong enough",
}

func stringCheck(fn func(string) bool) checkFunc {
	return func(v any, _ string) bool {
		return fn(filter.Stringify(v))
	}
}

func checkMessage(name string) string {
	if msg, ok := checkMessages[name]; ok {
		return msg
	}
	return "failed the " + name + " check"
}
