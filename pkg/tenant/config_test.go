package tenant_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saasbase/saasbase/pkg/tenant"
)

func TestConfigEffectiveBaseURL(t *testing.T) {
	t.Parallel()

	cfg := tenant.Config{Port: 3000}
	assert.Equal(t, "http://localhost:3000", cfg.EffectiveBaseURL())

	cfg.BaseURL = "https://app.example.com"
	assert.Equal(t, "https://app.example.com", cfg.EffectiveBaseURL())
}

func TestConfigRootDomain(t *testing.T) {
	t.Parallel()

	t.Run("from base URL", func(t *testing.T) {
		t.Parallel()

		cfg := tenant.Config{BaseURL: "https://App.Example.com:443/"}
		root, err := cfg.RootDomain()
		require.NoError(t, err)
		assert.Equal(t, "app.example.com", root)
	})

	t.Run("www is stripped", func(t *testing.T) {
		t.Parallel()

		cfg := tenant.Config{BaseURL: "https://www.example.com"}
		root, err := cfg.RootDomain()
		require.NoError(t, err)
		assert.Equal(t, "example.com", root)
	})

	t.Run("falls back to localhost", func(t *testing.T) {
		t.Parallel()

		cfg := tenant.Config{Port: 8080}
		root, err := cfg.RootDomain()
		require.NoError(t, err)
		assert.Equal(t, "localhost", root)
	})

	t.Run("unusable base URL", func(t *testing.T) {
		t.Parallel()

		cfg := tenant.Config{BaseURL: "https://bad_host^/"}
		_, err := cfg.RootDomain()
		assert.Error(t, err)
	})
}

func TestConfigResolveTimeout(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5*time.Second, tenant.Config{FetchTimeout: 5000}.ResolveTimeout())
	assert.Equal(t, 250*time.Millisecond, tenant.Config{FetchTimeout: 250}.ResolveTimeout())
	assert.Equal(t, tenant.DefaultResolveTimeout, tenant.Config{}.ResolveTimeout(), "zero falls back to the default")
	assert.Equal(t, tenant.DefaultResolveTimeout, tenant.Config{FetchTimeout: -1}.ResolveTimeout())
}
