package tenant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/saasbase/saasbase/pkg/logger"
)

// DefaultResolveTimeout bounds the resolution call when no explicit timeout
// is configured.
const DefaultResolveTimeout = 5 * time.Second

// maxPayloadBytes caps the resolution response body. Tenant payloads are a
// few hundred bytes; anything larger is a misbehaving upstream.
const maxPayloadBytes = 64 << 10

// HTTPResolver resolves tenants through the internal resolution endpoint:
//
//	GET <base>/internal/tenant/resolve?slug=<slug>&hostname=<hostname>
//
// Calls are authenticated with the shared-secret header when a secret is
// configured, falling back to the legacy caller marker otherwise. Every call
// is bounded by the configured timeout; expiry cancels the in-flight request.
//
// The resolver never returns an error without logging its cause, and it
// performs no caching: failures are assumed transient and re-attempted on the
// next request, while result caching belongs to the endpoint's own backing
// store.
type HTTPResolver struct {
	baseURL string
	secret  string
	timeout time.Duration
	client  *http.Client
	log     *slog.Logger
}

// ResolverOption configures an HTTPResolver.
type ResolverOption func(*HTTPResolver)

// WithSecret sets the shared secret for the internal call. An empty secret
// activates the deprecated legacy marker header.
func WithSecret(secret string) ResolverOption {
	return func(r *HTTPResolver) { r.secret = secret }
}

// WithTimeout bounds each resolution call.
func WithTimeout(d time.Duration) ResolverOption {
	if d <= 0 {
		panic("WithTimeout: duration must be > 0")
	}
	return func(r *HTTPResolver) { r.timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) ResolverOption {
	if c == nil {
		panic("WithHTTPClient: nil client")
	}
	return func(r *HTTPResolver) { r.client = c }
}

// WithResolverLogger supplies a logger for resolution diagnostics.
func WithResolverLogger(log *slog.Logger) ResolverOption {
	return func(r *HTTPResolver) {
		if log != nil {
			r.log = log
		}
	}
}

// NewHTTPResolver creates a resolver against the given base URL
// (scheme://host[:port], no trailing slash required).
func NewHTTPResolver(baseURL string, opts ...ResolverOption) *HTTPResolver {
	r := &HTTPResolver{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		timeout: DefaultResolveTimeout,
		client:  &http.Client{},
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve looks up the tenant for host, passing the subdomain slug candidate
// when one was derived. A nil, nil return means no tenant is assigned to the
// host. All failure modes are logged here and surface as errors the caller
// collapses into a generic not-found outcome.
func (r *HTTPResolver) Resolve(ctx context.Context, host, slug string) (*TenantInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	q := url.Values{}
	if slug != "" {
		q.Set("slug", slug)
	}
	if host != "" {
		q.Set("hostname", host)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/internal/tenant/resolve?"+q.Encode(), nil)
	if err != nil {
		return nil, errors.Join(ErrUnreachable, err)
	}

	if r.secret != "" {
		req.Header.Set(HeaderInternalSecret, r.secret)
	} else {
		// Legacy unauthenticated mode, kept for deployments without a
		// configured secret.
		req.Header.Set(HeaderInternalCall, InternalCallValue)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			r.log.ErrorContext(ctx, "tenant resolution timed out",
				logger.Host(host), slog.Duration("timeout", r.timeout))
			return nil, errors.Join(ErrTimeout, err)
		}
		r.log.ErrorContext(ctx, "tenant resolution request failed",
			logger.Host(host), logger.Error(err))
		return nil, errors.Join(ErrUnreachable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		// Routine outcome: the host simply is not assigned to a tenant.
		r.log.DebugContext(ctx, "tenant not found", logger.Host(host))
		return nil, nil
	case resp.StatusCode != http.StatusOK:
		r.log.ErrorContext(ctx, "tenant resolution returned unexpected status",
			logger.Host(host), slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var info TenantInfo
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxPayloadBytes)).Decode(&info); err != nil {
		r.log.ErrorContext(ctx, "tenant payload failed to decode",
			logger.Host(host), logger.Error(err))
		return nil, errors.Join(ErrInvalidPayload, err)
	}

	// Untrusted-output defense: the store should never emit an invalid slug,
	// so a failure here is an upstream bug, not user error.
	if info.Slug != "" && !IsValidSlug(info.Slug) {
		r.log.ErrorContext(ctx, "tenant payload contains invalid slug",
			logger.Host(host), logger.Slug(info.Slug))
		return nil, ErrInvalidPayload
	}

	return &info, nil
}
