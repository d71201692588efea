package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9]`)
	slugDashRuns     = regexp.MustCompile(`-+`)
)

// Slugify turns free text into a URL slug: lowercase, non-alphanumerics
// collapsed to single dashes, no leading or trailing dash.
func Slugify(s string) string {
	slug := strings.ToLower(s)
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	slug = slugDashRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
