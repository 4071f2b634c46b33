// Package organization owns the organization store and the internal
// tenant-resolution endpoint the gate's resolver calls. Organizations are the
// tenants of the application: each one claims a unique slug usable as a
// subdomain and may bind a single custom domain.
package organization

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/saasbase/saasbase/pkg/tenant"
)

var (
	// ErrNotFound is returned when no organization matches the lookup.
	ErrNotFound = errors.New("organization not found")

	// ErrInvalidSlug is returned when a requested slug fails validation.
	ErrInvalidSlug = errors.New("invalid organization slug")

	// ErrSlugTaken is returned when the slug is already claimed.
	ErrSlugTaken = errors.New("organization slug already taken")

	// ErrDomainTaken is returned when the custom domain is already bound.
	ErrDomainTaken = errors.New("custom domain already taken")
)

// Organization is a tenant record as persisted in PostgreSQL.
type Organization struct {
	ID           uuid.UUID
	Name         string
	Slug         string
	CustomDomain *string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TenantInfo converts the record into the transient payload served by the
// resolution endpoint.
func (o *Organization) TenantInfo() *tenant.TenantInfo {
	info := &tenant.TenantInfo{
		ID:   o.ID.String(),
		Slug: o.Slug,
	}
	if o.CustomDomain != nil {
		info.CustomDomain = *o.CustomDomain
	}
	return info
}

// Storage is the lookup surface the resolution endpoint depends on.
type Storage interface {
	// FindForResolve returns the organization whose slug equals slug or
	// whose custom domain equals host. Empty arguments never match.
	// Returns ErrNotFound when no organization qualifies.
	FindForResolve(ctx context.Context, slug, host string) (*Organization, error)
}
