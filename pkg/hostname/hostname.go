package hostname

import (
	"errors"
	"regexp"
	"strings"
)

// MaxLength is the RFC 1035 limit on a full domain name.
const MaxLength = 253

var (
	// ErrMissing is returned when the host header is absent or blank.
	ErrMissing = errors.New("host header missing")

	// ErrTooLong is returned when the host header exceeds MaxLength characters.
	ErrTooLong = errors.New("host header too long")

	// ErrInvalidFormat is returned when the host contains characters outside
	// the hostname alphabet or a malformed port suffix.
	ErrInvalidFormat = errors.New("host header has invalid format")

	// ErrSuspicious is returned when the host carries an injection-style
	// payload. Callers should log these separately from plain format errors.
	ErrSuspicious = errors.New("host header contains suspicious pattern")
)

// hostPattern matches a lowercased hostname with an optional port suffix.
var hostPattern = regexp.MustCompile(`^[a-z0-9.-]+(:[0-9]{1,5})?$`)

// suspiciousPatterns are substrings that never occur in a legitimate host
// header but show up in path-traversal and injection probes. Checked against
// the lowercased input so "JavaScript:" is caught too.
var suspiciousPatterns = []string{
	"..",
	"<", ">",
	"'", `"`, "`",
	"{", "}",
	"javascript:",
}

// Normalize converts an untrusted host header into a canonical hostname:
// lowercased, with any port, trailing dot, and "www." prefix stripped.
//
// It is the single gate between attacker-controlled input and downstream URL
// construction, so it rejects rather than repairs: a missing, oversized,
// malformed, or suspicious value yields a sentinel error and an empty string.
// Normalize never panics.
func Normalize(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrMissing
	}
	if len(raw) > MaxLength {
		return "", ErrTooLong
	}

	host := strings.ToLower(strings.TrimSpace(raw))

	for _, p := range suspiciousPatterns {
		if strings.Contains(host, p) {
			return "", ErrSuspicious
		}
	}

	if !hostPattern.MatchString(host) {
		return "", ErrInvalidFormat
	}

	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}
	host = strings.TrimPrefix(host, "www.")
	host = strings.TrimSuffix(host, ".")

	if host == "" {
		return "", ErrInvalidFormat
	}

	return host, nil
}

// IsSuspicious reports whether err marks an injection-style rejection rather
// than a plain format failure.
func IsSuspicious(err error) bool {
	return errors.Is(err, ErrSuspicious)
}
