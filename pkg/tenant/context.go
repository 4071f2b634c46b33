package tenant

import (
	"context"
	"log/slog"
)

// contextKey is a private type to prevent collisions with other context keys.
type contextKey struct{}

// WithTenant adds a resolved tenant to the context.
func WithTenant(ctx context.Context, info *TenantInfo) context.Context {
	return context.WithValue(ctx, contextKey{}, info)
}

// FromContext retrieves the tenant from the context.
// Returns nil, false if no tenant is present.
func FromContext(ctx context.Context) (*TenantInfo, bool) {
	info, ok := ctx.Value(contextKey{}).(*TenantInfo)
	return info, ok && info != nil
}

// MustFromContext retrieves the tenant from the context and panics when none
// is present. Use only in handlers mounted under the tenant-scoped prefix,
// where the gate guarantees a tenant.
func MustFromContext(ctx context.Context) *TenantInfo {
	info, ok := FromContext(ctx)
	if !ok {
		panic(ErrNoTenantInContext)
	}
	return info
}

// LoggerExtractor returns a context extractor for the logger that annotates
// every record emitted inside a tenant scope with the tenant id.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if info, ok := FromContext(ctx); ok {
			return slog.String("tenant_id", info.ID), true
		}
		return slog.Attr{}, false
	}
}
