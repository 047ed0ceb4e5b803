package check

import (
	"encoding/base64"
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

var (
	// International phone format with optional country code.
	phoneRe = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

	semverRe = regexp.MustCompile(`^v?\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?(?:\+[0-9A-Za-z.-]+)?$`)

	domainLabelRe = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)
)

// Email reports whether the value is a plausible email address. It combines
// RFC 5322 parsing with the stricter shape expected of web-form input: a
// non-empty local part and a dotted domain.
func Email(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// URL reports whether the value is an absolute URL with a scheme and host.
func URL(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}

	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// IP reports whether the value is a valid IPv4 or IPv6 address.
func IP(s string) bool {
	return net.ParseIP(strings.TrimSpace(s)) != nil
}

// MAC reports whether the value is a valid hardware address.
func MAC(s string) bool {
	_, err := net.ParseMAC(strings.TrimSpace(s))
	return err == nil
}

// Phone reports whether the value is an international phone number. Common
// separators (spaces, dashes, dots, parentheses) are ignored.
func Phone(s string) bool {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.', '(', ')':
			return -1
		}
		return r
	}, strings.TrimSpace(s))

	return phoneRe.MatchString(cleaned)
}

// HexColor reports whether the value is a #RGB or #RRGGBB hex color.
func HexColor(s string) bool {
	return hexColorRe.MatchString(strings.TrimSpace(s))
}

// UUID reports whether the value is a canonical UUID.
func UUID(s string) bool {
	// Fast rejection before parsing: canonical UUIDs are 36 bytes with fixed
	// hyphen positions.
	if len(s) != 36 {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}

	_, err := uuid.Parse(s)
	return err == nil
}

// JSON reports whether the value is syntactically valid JSON.
func JSON(s string) bool {
	return json.Valid([]byte(s))
}

// Base64 reports whether the value is valid standard base64.
func Base64(s string) bool {
	if s == "" {
		return false
	}
	_, err := base64.StdEncoding.DecodeString(s)
	return err == nil
}

// Domain reports whether the value is a plausible DNS domain name.
func Domain(s string) bool {
	s = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), ".")
	if s == "" || len(s) > 253 || !strings.Contains(s, ".") {
		return false
	}

	for _, label := range strings.Split(s, ".") {
		if !domainLabelRe.MatchString(label) {
			return false
		}
	}
	return true
}

// Semver reports whether the value is a semantic version, with an optional
// leading "v".
func Semver(s string) bool {
	return semverRe.MatchString(strings.TrimSpace(s))
}
