package sanitizer

import (
	"regexp"
	"strings"

	"creatorverse/pkg/model"
)

var (
	handlePatterns = map[model.Platform]*regexp.Regexp{
		model.PlatformYouTube:   regexp.MustCompile(`(?i:youtube\.com/(?:@|user/|channel/)?)([A-Za-z0-9_-]+)`),
		model.PlatformTwitter:   regexp.MustCompile(`(?i:twitter\.com/|x\.com/)([A-Za-z0-9_]+)`),
		model.PlatformInstagram: regexp.MustCompile(`(?i:instagram\.com/)([A-Za-z0-9_.]+)`),
	}

	reValidHandle = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
)

// ExtractHandle returns the canonical handle for input on platform, or "" when there is none.
// Bare input loses a single leading "@" and is otherwise returned as is. URL input must match
// the platform's profile pattern.
func ExtractHandle(platform model.Platform, input string) string {
	if input == "" {
		return ""
	}
	input = strings.TrimSpace(input)

	if !looksLikeURL(input) {
		return strings.TrimPrefix(input, "@")
	}

	re, ok := handlePatterns[platform]
	if !ok {
		return ""
	}
	match := re.FindStringSubmatch(input)
	if len(match) < 2 || match[1] == "" {
		return ""
	}
	return strings.TrimSuffix(match[1], "/")
}

// IsValidHandle validates the extracted handle, never the raw input.
func IsValidHandle(platform model.Platform, raw string) bool {
	handle := ExtractHandle(platform, raw)
	return handle != "" && reValidHandle.MatchString(handle)
}

// Every profile pattern needs a path separator, so "http" without one is a bare
// handle: "httpbin" and "@httpbin" stay "httpbin" instead of extracting to "".
func looksLikeURL(s string) bool {
	return strings.Contains(s, "http") && strings.Contains(s, "/")
}
