package tenant

import "context"

// TenantInfo identifies the organization a request is scoped to. It is
// resolved per request from the internal resolution endpoint and lives only
// for the duration of that request; this package never persists or mutates
// tenant records.
type TenantInfo struct {
	ID           string `json:"id"`
	Slug         string `json:"slug"`
	CustomDomain string `json:"customDomain,omitempty"`
}

// Domain returns the domain the tenant should be addressed by: the custom
// domain when one is bound, otherwise the fallback (normally the validated
// request host).
func (t *TenantInfo) Domain(fallback string) string {
	if t.CustomDomain != "" {
		return t.CustomDomain
	}
	return fallback
}

// Resolver maps a validated hostname to a tenant.
//
// slug carries the candidate extracted from a root-domain subdomain, or an
// empty string for custom-domain lookups. A (nil, nil) return means the host
// is not assigned to any tenant, which is a routine outcome, not an error.
type Resolver interface {
	Resolve(ctx context.Context, host, slug string) (*TenantInfo, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, host, slug string) (*TenantInfo, error)

// Resolve calls the function.
func (f ResolverFunc) Resolve(ctx context.Context, host, slug string) (*TenantInfo, error) {
	return f(ctx, host, slug)
}
