package validation

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxSiteLength bounds the length of a site filter value.
const MaxSiteLength = 100

// SitePattern defines the valid site filter format: letters, digits, spaces, dots, hyphens, underscores.
var SitePattern = regexp.MustCompile(`^[a-zA-Z0-9 ._-]+$`)

// ValidateSite checks if a site filter value is well formed.
// It does not check that the site exists; unknown sites select nothing.
func ValidateSite(site string) bool {
	if site == "" || len(site) > MaxSiteLength {
		return false
	}
	return SitePattern.MatchString(site)
}

// NormalizeSite trims surrounding whitespace and collapses inner runs of whitespace.
func NormalizeSite(site string) string {
	return strings.Join(strings.FieldsFunc(site, unicode.IsSpace), " ")
}
