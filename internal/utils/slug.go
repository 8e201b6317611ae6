package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalid  = regexp.MustCompile(`[^a-z0-9_\s-]`)
	slugCollapse = regexp.MustCompile(`[-\s]+`)
)

// Slugify converts a name to a URL slug: lowercase, strip everything
// that is not alphanumeric/underscore/hyphen/space, then collapse runs
// of spaces and hyphens into a single hyphen.
// "STEM Careers" → "stem-careers", "Health & Wellness" → "health-wellness".
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-_")
}
