package slug

import (
	"crypto/rand"
	"strings"
	"unicode"
)

// Option configures slug generation.
type Option func(*config)

type config struct {
	maxLength    int
	suffixLength int
}

func defaultConfig() *config {
	return &config{
		maxLength:    63, // DNS label limit; slugs double as subdomains
		suffixLength: 0,
	}
}

// MaxLength caps the generated slug's rune count.
func MaxLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxLength = n
		}
	}
}

// WithSuffix appends a random alphanumeric suffix of the given length,
// separated by a hyphen, to reduce collision probability.
func WithSuffix(length int) Option {
	return func(c *config) {
		if length > 0 {
			c.suffixLength = length
		}
	}
}

// Make converts free-form input (typically an organization name) into a
// lowercase hyphen-separated slug containing only [a-z0-9-]. Diacritics fold
// to their ASCII base; every other non-alphanumeric run collapses into a
// single hyphen.
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	budget := cfg.maxLength
	if cfg.suffixLength > 0 {
		budget -= cfg.suffixLength + 1 // room for "-" + suffix
		if budget < 0 {
			budget = 0
		}
	}

	var b strings.Builder
	b.Grow(len(s))
	lastHyphen := true // suppress leading hyphen
	count := 0

	for _, r := range s {
		if count >= budget {
			break
		}

		r = unicode.ToLower(r)
		if folded, ok := diacritics[r]; ok {
			r = folded
		}

		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
			count++
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
			count++
		}
	}

	result := strings.TrimSuffix(b.String(), "-")

	if cfg.suffixLength > 0 {
		suffix := randomSuffix(cfg.suffixLength)
		if result == "" {
			return suffix
		}
		return result + "-" + suffix
	}

	return result
}

// diacritics maps common Latin diacritics to ASCII equivalents. Lowercase
// only; Make lowercases before lookup.
var diacritics = map[rune]rune{
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a', 'ā': 'a', 'ą': 'a',
	'ç': 'c', 'ć': 'c', 'č': 'c',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e', 'ē': 'e', 'ė': 'e', 'ę': 'e',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i', 'ī': 'i', 'į': 'i',
	'ł': 'l',
	'ñ': 'n', 'ń': 'n', 'ň': 'n',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o', 'ø': 'o', 'ō': 'o',
	'ś': 's', 'š': 's', 'ß': 's',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u', 'ū': 'u', 'ů': 'u',
	'ý': 'y', 'ÿ': 'y',
	'ź': 'z', 'ž': 'z', 'ż': 'z',
}

const suffixCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomSuffix(length int) string {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		// Deterministic fallback; collisions are caught by unique indexes.
		for i := range b {
			b[i] = suffixCharset[i%len(suffixCharset)]
		}
		return string(b)
	}
	for i := range b {
		b[i] = suffixCharset[b[i]%byte(len(suffixCharset))]
	}
	return string(b)
}
