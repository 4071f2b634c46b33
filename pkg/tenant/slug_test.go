package tenant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saasbase/saasbase/pkg/tenant"
)

func TestIsValidSlug(t *testing.T) {
	t.Parallel()

	valid := []string{
		"acme",
		"acme-corp",
		"a1b",
		"123",
		"tenant-42",
		"abc",
	}
	for _, s := range valid {
		assert.True(t, tenant.IsValidSlug(s), "expected %q to be valid", s)
	}

	invalid := []struct {
		slug   string
		reason string
	}{
		{"", "empty"},
		{"ab", "too short"},
		{"Acme", "uppercase"},
		{"acme_corp", "underscore"},
		{"-acme", "leading hyphen"},
		{"acme-", "trailing hyphen"},
		{"acme--corp", "doubled hyphen"},
		{"acme.corp", "dot"},
		{"api", "reserved"},
		{"admin", "reserved"},
		{"_next", "reserved and invalid char"},
		{"acme corp", "space"},
	}
	for _, tc := range invalid {
		assert.False(t, tenant.IsValidSlug(tc.slug), "expected %q to be invalid (%s)", tc.slug, tc.reason)
	}

	long := make([]byte, 64)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, tenant.IsValidSlug(string(long)), "64 chars exceeds the limit")
	assert.True(t, tenant.IsValidSlug(string(long[:63])), "63 chars is the limit")
}

func TestIsReservedSlug(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"api", "_next", "static", "public", "admin", "healthz", ".well-known", "favicon.ico", "robots.txt", "sitemap.xml"} {
		assert.True(t, tenant.IsReservedSlug(s), "expected %q to be reserved", s)
	}
	assert.False(t, tenant.IsReservedSlug("acme"))
	assert.False(t, tenant.IsReservedSlug("API"), "reservation is case sensitive; uppercase fails the pattern instead")
}
