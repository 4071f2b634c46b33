package organization_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saasbase/saasbase/modules/organization"
	"github.com/saasbase/saasbase/pkg/tenant"
)

func TestCacheKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "org:resolve:slug:acme", organization.CacheKey("acme", ""))
	assert.Equal(t, "org:resolve:host:acme.com", organization.CacheKey("", "acme.com"))
	// Slug wins when both are set, matching the resolve precedence.
	assert.Equal(t, "org:resolve:slug:acme", organization.CacheKey("acme", "acme.com"))
}

func TestMemoryCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		c := organization.NewMemoryCache(4, time.Minute)
		info := &tenant.TenantInfo{ID: "42", Slug: "acme"}
		c.Set(ctx, "k", info)

		got, ok := c.Get(ctx, "k")
		require.True(t, ok)
		assert.Equal(t, info, got)
	})

	t.Run("miss", func(t *testing.T) {
		t.Parallel()

		c := organization.NewMemoryCache(4, time.Minute)
		_, ok := c.Get(ctx, "absent")
		assert.False(t, ok)
	})

	t.Run("expires", func(t *testing.T) {
		t.Parallel()

		c := organization.NewMemoryCache(4, 10*time.Millisecond)
		c.Set(ctx, "k", &tenant.TenantInfo{ID: "42", Slug: "acme"})

		time.Sleep(25 * time.Millisecond)
		_, ok := c.Get(ctx, "k")
		assert.False(t, ok)
	})

	t.Run("copies on read", func(t *testing.T) {
		t.Parallel()

		c := organization.NewMemoryCache(4, time.Minute)
		c.Set(ctx, "k", &tenant.TenantInfo{ID: "42", Slug: "acme"})

		first, ok := c.Get(ctx, "k")
		require.True(t, ok)
		first.Slug = "mutated"

		second, ok := c.Get(ctx, "k")
		require.True(t, ok)
		assert.Equal(t, "acme", second.Slug)
	})
}
