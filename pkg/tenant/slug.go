package tenant

import (
	"regexp"
	"strings"
)

// reservedSlugs are names that collide with the application's own routing
// namespace. A tenant claiming "api" or "admin" as a subdomain would alias
// application routes, so these never validate.
var reservedSlugs = map[string]struct{}{
	"api":         {},
	"_next":       {},
	"static":      {},
	"public":      {},
	"admin":       {},
	"healthz":     {},
	".well-known": {},
	"favicon.ico": {},
	"robots.txt":  {},
	"sitemap.xml": {},
}

var slugPattern = regexp.MustCompile(`^[a-z0-9-]{3,63}$`)

// IsReservedSlug reports whether s is in the reserved-name set.
func IsReservedSlug(s string) bool {
	_, ok := reservedSlugs[s]
	return ok
}

// IsValidSlug reports whether s is usable as a tenant slug: 3-63 chars of
// lowercase letters, digits, and hyphens, with no leading, trailing, or
// doubled hyphen, and not a reserved name.
//
// The same rule guards both directions: subdomain candidates before the
// resolution call, and slugs coming back from the resolution endpoint.
func IsValidSlug(s string) bool {
	if IsReservedSlug(s) {
		return false
	}
	if !slugPattern.MatchString(s) {
		return false
	}
	if strings.HasPrefix(s, "-") || strings.HasSuffix(s, "-") {
		return false
	}
	return !strings.Contains(s, "--")
}
