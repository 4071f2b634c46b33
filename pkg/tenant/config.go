package tenant

import (
	"fmt"
	"net/url"
	"time"

	"github.com/saasbase/saasbase/pkg/hostname"
)

// Config carries the gate's deployment settings.
//
// FETCH_TIMEOUT stays an integer millisecond value for compatibility with
// existing deployments.
type Config struct {
	Port              int    `env:"PORT" envDefault:"8080"`          // Port the application listens on; derives the base URL when BASE_URL is unset.
	BaseURL           string `env:"BASE_URL"`                        // Public base URL; its host portion becomes the root domain.
	InternalAPISecret string `env:"INTERNAL_API_SECRET"`             // Shared secret for internal resolution calls; empty activates the legacy marker auth.
	FetchTimeout      int    `env:"FETCH_TIMEOUT" envDefault:"5000"` // Resolution call timeout in milliseconds.
}

// EffectiveBaseURL returns BaseURL, or a localhost URL derived from Port.
func (c Config) EffectiveBaseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return fmt.Sprintf("http://localhost:%d", c.Port)
}

// RootDomain extracts the deployment's root domain from the base URL,
// normalized the same way inbound hosts are so equality checks line up.
func (c Config) RootDomain() (string, error) {
	u, err := url.Parse(c.EffectiveBaseURL())
	if err != nil {
		return "", fmt.Errorf("parse base URL: %w", err)
	}
	host, err := hostname.Normalize(u.Host)
	if err != nil {
		return "", fmt.Errorf("base URL host: %w", err)
	}
	return host, nil
}

// ResolveTimeout returns the configured lookup timeout as a duration.
func (c Config) ResolveTimeout() time.Duration {
	if c.FetchTimeout <= 0 {
		return DefaultResolveTimeout
	}
	return time.Duration(c.FetchTimeout) * time.Millisecond
}
