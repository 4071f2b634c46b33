package tenant

import (
	"log/slog"
	"time"
)

// config holds gate middleware configuration.
type config struct {
	log           *slog.Logger
	skipPrefixes  []string
	passPrefixes  []string
	slowThreshold time.Duration
}

// Option configures the gate middleware.
type Option func(*config)

// WithLogger sets the logger for gate diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// WithSkipPrefixes replaces the path prefixes that bypass the gate entirely.
// Static-asset paths (any path with a file extension) always bypass.
func WithSkipPrefixes(prefixes ...string) Option {
	return func(c *config) { c.skipPrefixes = prefixes }
}

// WithPassPrefixes replaces the path prefixes that, once a tenant is
// resolved, are forwarded unrewritten with tenant headers attached.
func WithPassPrefixes(prefixes ...string) Option {
	return func(c *config) { c.passPrefixes = prefixes }
}

// WithSlowThreshold sets the entry-to-decision duration above which the gate
// logs a performance warning.
func WithSlowThreshold(d time.Duration) Option {
	if d <= 0 {
		panic("WithSlowThreshold: duration must be > 0")
	}
	return func(c *config) { c.slowThreshold = d }
}
