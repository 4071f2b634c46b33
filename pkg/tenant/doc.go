// Package tenant implements the host-based tenant gate: per-request
// middleware that maps an inbound host header to an organization and rewrites
// the request into that organization's route namespace.
//
// # Request flow
//
// Each request passes through three stages in strict sequence:
//
//  1. Host validation — the raw host header is normalized and validated by
//     pkg/hostname; rejection terminates the request with a generic 400.
//  2. Resolution — a host equal to the root domain passes through untouched.
//     Any other host is resolved through a Resolver (normally HTTPResolver
//     against the internal resolution endpoint), with subdomain slugs
//     validated before the call and resolution bounded by a deadline.
//     Failure of any kind terminates the request with a generic 404.
//  3. Rewrite — a resolved request has tenant identity attached as request
//     headers and context, and its path rewritten to /s/<slug><path> unless
//     it already targets the scoped namespace, /api, or /healthz.
//
// The gate holds no state between requests and imposes no coordination on
// the resolution endpoint beyond the per-call timeout; resolution failures
// are never cached and simply retry on the next request.
//
// # Usage
//
//	resolver := tenant.NewHTTPResolver(cfg.EffectiveBaseURL(),
//	    tenant.WithSecret(cfg.InternalAPISecret),
//	    tenant.WithTimeout(cfg.ResolveTimeout()),
//	    tenant.WithResolverLogger(log),
//	)
//
//	root, _ := cfg.RootDomain()
//	r.Use(tenant.Middleware(root, resolver, tenant.WithLogger(log)))
//
// Handlers mounted under /s/{slug} can then read the tenant from context:
//
//	info := tenant.MustFromContext(r.Context())
//
// # Security posture
//
// Responses for malformed hosts and unassigned hosts are deliberately
// indistinguishable beyond their status codes, with generic bodies, so the
// gate cannot be used to enumerate tenants or probe validation rules. Slugs
// returned by the resolution endpoint are re-validated even though the
// endpoint is trusted; an invalid slug there is treated as an upstream bug
// and logged as an error.
package tenant
