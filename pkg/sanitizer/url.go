package sanitizer

import (
	"net/url"
	"strings"
)

// IsAbsoluteURL reports whether s parses as a URL with both a scheme and a host.
// Any scheme is accepted.
func IsAbsoluteURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

func NormalizeURL(s string) string {
	return strings.TrimSpace(s)
}
