package common

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

func RandomID() string {
	u, _ := uuid.NewRandom()
	return u.String()
}

var (
	slugInvalidRegex  = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaceRegex    = regexp.MustCompile(`\s+`)
	slugCollapseRegex = regexp.MustCompile(`-+`)
	whitespaceRegex   = regexp.MustCompile(`\s+`)
)

// CreateSlug derives a stable URL slug from a business name.
// Empty or fully-stripped input falls back to "business-profile".
func CreateSlug(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = slugInvalidRegex.ReplaceAllString(s, "")
	s = slugSpaceRegex.ReplaceAllString(s, "-")
	s = slugCollapseRegex.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "business-profile"
	}
	return s
}

// CollapseWhitespace folds runs of whitespace into single spaces and trims.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

var RESERVED_SITE_SLUGS = map[string]struct{}{
	"admin":       {},
	"api":         {},
	"site":        {},
	"assets":      {},
	"favicon":     {},
	"robots.txt":  {},
	"sitemap.xml": {},
}

var siteSlugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidateSiteSlug normalizes a slug and reports whether it may be used
// as a public site path segment.
func ValidateSiteSlug(rawSlug string) (string, bool, string) {
	slug := CreateSlug(rawSlug)
	if slug == "" {
		return slug, false, "Slug is required."
	}
	if _, reserved := RESERVED_SITE_SLUGS[slug]; reserved {
		return slug, false, "This slug is reserved and cannot be used."
	}
	if !siteSlugRegex.MatchString(slug) {
		return slug, false, "Use lowercase letters, numbers, and dashes only."
	}
	return slug, true, ""
}
