package organization

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/saasbase/saasbase/pkg/hostname"
	"github.com/saasbase/saasbase/pkg/pg"
	"github.com/saasbase/saasbase/pkg/slug"
	"github.com/saasbase/saasbase/pkg/tenant"
)

const orgColumns = "id, name, slug, custom_domain, active, created_at, updated_at"

// Store persists organizations in PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a Store on the given pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// FindForResolve implements the Storage lookup: slug equality or custom
// domain equality, whichever matches first. Empty arguments never match
// because slugs and domains are non-empty by construction.
func (s *Store) FindForResolve(ctx context.Context, slugVal, host string) (*Organization, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM organizations
		WHERE (slug = $1 AND $1 <> '') OR (custom_domain = $2 AND $2 <> '')
		LIMIT 1`, orgColumns)

	org, err := s.scanOne(ctx, query, slugVal, host)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find organization for resolve: %w", err)
	}
	return org, nil
}

// GetBySlug returns the organization claiming slugVal.
func (s *Store) GetBySlug(ctx context.Context, slugVal string) (*Organization, error) {
	query := fmt.Sprintf("SELECT %s FROM organizations WHERE slug = $1", orgColumns)
	org, err := s.scanOne(ctx, query, slugVal)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get organization by slug: %w", err)
	}
	return org, nil
}

// CreateParams describes a new organization. Slug is optional; when empty it
// is derived from the name.
type CreateParams struct {
	Name string
	Slug string
}

// Create inserts a new active organization. A generated slug that collides
// with an existing one is retried once with a random suffix; an explicit slug
// that collides fails with ErrSlugTaken.
func (s *Store) Create(ctx context.Context, params CreateParams) (*Organization, error) {
	derived := params.Slug == ""
	slugVal := params.Slug
	if derived {
		slugVal = slug.Make(params.Name)
	}
	if !tenant.IsValidSlug(slugVal) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlug, slugVal)
	}

	org, err := s.insert(ctx, params.Name, slugVal)
	if err != nil && pg.IsDuplicateKeyError(err) {
		if !derived {
			return nil, ErrSlugTaken
		}
		// Name collision on a derived slug: disambiguate and try once more.
		slugVal = slug.Make(params.Name, slug.WithSuffix(6))
		org, err = s.insert(ctx, params.Name, slugVal)
	}
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("create organization: %w", err)
	}
	return org, nil
}

// SetCustomDomain binds a custom domain to the organization, replacing any
// previous binding. The domain is normalized the same way inbound hosts are
// so lookups by validated hostname always line up.
func (s *Store) SetCustomDomain(ctx context.Context, id uuid.UUID, domain string) (*Organization, error) {
	normalized, err := hostname.Normalize(domain)
	if err != nil {
		return nil, fmt.Errorf("custom domain: %w", err)
	}

	query := fmt.Sprintf(`
		UPDATE organizations
		SET custom_domain = $2, updated_at = now()
		WHERE id = $1
		RETURNING %s`, orgColumns)

	org, err := s.scanOne(ctx, query, id, normalized)
	if err != nil {
		switch {
		case pg.IsNotFoundError(err):
			return nil, ErrNotFound
		case pg.IsDuplicateKeyError(err):
			return nil, ErrDomainTaken
		}
		return nil, fmt.Errorf("set custom domain: %w", err)
	}
	return org, nil
}

// Deactivate marks the organization inactive, removing it from resolution
// without deleting its data.
func (s *Store) Deactivate(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx,
		"UPDATE organizations SET active = false, updated_at = now() WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deactivate organization: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) insert(ctx context.Context, name, slugVal string) (*Organization, error) {
	query := fmt.Sprintf(`
		INSERT INTO organizations (id, name, slug, active)
		VALUES ($1, $2, $3, true)
		RETURNING %s`, orgColumns)
	return s.scanOne(ctx, query, uuid.New(), name, slugVal)
}

func (s *Store) scanOne(ctx context.Context, query string, args ...any) (*Organization, error) {
	var org Organization
	err := s.pool.QueryRow(ctx, query, args...).Scan(
		&org.ID,
		&org.Name,
		&org.Slug,
		&org.CustomDomain,
		&org.Active,
		&org.CreatedAt,
		&org.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &org, nil
}
