package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saasbase/saasbase/pkg/cache"
)

func TestLRU(t *testing.T) {
	t.Parallel()

	t.Run("basic set and get", func(t *testing.T) {
		t.Parallel()

		c := cache.NewLRU[string, int](2)
		c.Set("a", 1)

		v, ok := c.Get("a")
		require.True(t, ok)
		assert.Equal(t, 1, v)

		_, ok = c.Get("missing")
		assert.False(t, ok)
	})

	t.Run("evicts least recently used at capacity", func(t *testing.T) {
		t.Parallel()

		c := cache.NewLRU[string, int](2)
		c.Set("a", 1)
		c.Set("b", 2)

		// Touch "a" so "b" becomes the eviction candidate.
		_, ok := c.Get("a")
		require.True(t, ok)

		c.Set("c", 3)

		_, ok = c.Get("b")
		assert.False(t, ok)
		_, ok = c.Get("a")
		assert.True(t, ok)
		_, ok = c.Get("c")
		assert.True(t, ok)
	})

	t.Run("updating existing key does not grow cache", func(t *testing.T) {
		t.Parallel()

		c := cache.NewLRU[string, int](2)
		c.Set("a", 1)
		c.Set("a", 2)
		c.Set("b", 3)

		assert.Equal(t, 2, c.Len())
		v, ok := c.Get("a")
		require.True(t, ok)
		assert.Equal(t, 2, v)
	})

	t.Run("expired entries are dropped on access", func(t *testing.T) {
		t.Parallel()

		c := cache.NewLRU[string, int](4)
		c.SetTTL("short", 1, 10*time.Millisecond)
		c.Set("forever", 2)

		time.Sleep(20 * time.Millisecond)

		_, ok := c.Get("short")
		assert.False(t, ok)
		_, ok = c.Get("forever")
		assert.True(t, ok)
	})

	t.Run("delete removes entry", func(t *testing.T) {
		t.Parallel()

		c := cache.NewLRU[string, int](2)
		c.Set("a", 1)
		c.Delete("a")
		c.Delete("a") // repeated delete is a no-op

		_, ok := c.Get("a")
		assert.False(t, ok)
		assert.Zero(t, c.Len())
	})

	t.Run("zero capacity panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { cache.NewLRU[string, int](0) })
	})
}
