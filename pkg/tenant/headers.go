package tenant

// Request headers the gate injects for downstream stages. Values are written
// with http.Header.Set, so the canonical forms below are what handlers and
// upstream proxies observe.
const (
	HeaderTenantID        = "X-Tenant-ID"
	HeaderTenantSlug      = "X-Tenant-Slug"
	HeaderTenantDomain    = "X-Tenant-Domain"
	HeaderTenantTimestamp = "X-Tenant-Timestamp"
	HeaderMiddlewareStart = "X-Middleware-Start"
)

// Headers authenticating calls to the internal resolution endpoint.
const (
	// HeaderInternalSecret carries the shared secret for service-to-service
	// calls. Preferred whenever a secret is configured.
	HeaderInternalSecret = "X-Internal-Secret"

	// HeaderInternalCall is the legacy caller marker, accepted only when no
	// shared secret is configured.
	//
	// Deprecated: this mode exists for backward compatibility with
	// deployments that predate INTERNAL_API_SECRET and offers no real
	// authentication. Configure a secret instead.
	HeaderInternalCall = "X-Internal-Call"

	// InternalCallValue is the marker value sent in HeaderInternalCall.
	InternalCallValue = "tenant-resolver"
)
