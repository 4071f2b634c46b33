package hostname_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saasbase/saasbase/pkg/hostname"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("lowercases and keeps plain hostnames", func(t *testing.T) {
		t.Parallel()

		host, err := hostname.Normalize("Acme.Example.COM")
		require.NoError(t, err)
		assert.Equal(t, "acme.example.com", host)
	})

	t.Run("strips port", func(t *testing.T) {
		t.Parallel()

		host, err := hostname.Normalize("acme.example.com:8443")
		require.NoError(t, err)
		assert.Equal(t, "acme.example.com", host)
	})

	t.Run("strips trailing dot", func(t *testing.T) {
		t.Parallel()

		host, err := hostname.Normalize("acme.example.com.")
		require.NoError(t, err)
		assert.Equal(t, "acme.example.com", host)
	})

	t.Run("strips www prefix", func(t *testing.T) {
		t.Parallel()

		host, err := hostname.Normalize("www.example.com")
		require.NoError(t, err)
		assert.Equal(t, "example.com", host)
	})

	t.Run("www stripping is case insensitive and idempotent", func(t *testing.T) {
		t.Parallel()

		for _, h := range []string{"example.com", "acme.example.com", "billing.io"} {
			plain, err := hostname.Normalize(h)
			require.NoError(t, err)

			prefixed, err := hostname.Normalize("WWW." + h)
			require.NoError(t, err)

			assert.Equal(t, plain, prefixed)
		}
	})

	t.Run("rejects empty header", func(t *testing.T) {
		t.Parallel()

		_, err := hostname.Normalize("")
		assert.ErrorIs(t, err, hostname.ErrMissing)

		_, err = hostname.Normalize("   ")
		assert.ErrorIs(t, err, hostname.ErrMissing)
	})

	t.Run("rejects oversized header", func(t *testing.T) {
		t.Parallel()

		_, err := hostname.Normalize(strings.Repeat("a", hostname.MaxLength+1))
		assert.ErrorIs(t, err, hostname.ErrTooLong)
	})

	t.Run("accepts header at exactly the limit", func(t *testing.T) {
		t.Parallel()

		label := strings.Repeat("a", hostname.MaxLength-4) + ".com"
		host, err := hostname.Normalize(label)
		require.NoError(t, err)
		assert.Equal(t, label, host)
	})

	t.Run("rejects suspicious patterns", func(t *testing.T) {
		t.Parallel()

		cases := []string{
			"a..b.example.com",
			"host<script>.com",
			"host>.com",
			"host'.com",
			`host".com`,
			"host`.com",
			"host{.com",
			"host}.com",
			"javascript:alert(1)",
			"JAVASCRIPT:alert(1)",
		}
		for _, raw := range cases {
			_, err := hostname.Normalize(raw)
			assert.ErrorIs(t, err, hostname.ErrSuspicious, "input %q", raw)
			assert.True(t, hostname.IsSuspicious(err))
		}
	})

	t.Run("rejects invalid formats", func(t *testing.T) {
		t.Parallel()

		cases := []string{
			"host_name.example.com",
			"host name.example.com",
			"host/path.example.com",
			"acme.example.com:notaport",
			"héllo.example.com",
		}
		for _, raw := range cases {
			_, err := hostname.Normalize(raw)
			assert.ErrorIs(t, err, hostname.ErrInvalidFormat, "input %q", raw)
			assert.False(t, hostname.IsSuspicious(err))
		}
	})

	t.Run("rejects value that normalizes to nothing", func(t *testing.T) {
		t.Parallel()

		_, err := hostname.Normalize("www.")
		assert.ErrorIs(t, err, hostname.ErrInvalidFormat)
	})
}
