package slug_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saasbase/saasbase/pkg/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple name", "Acme Corp", "acme-corp"},
		{"punctuation collapses", "Acme, Inc. (EU)", "acme-inc-eu"},
		{"diacritics fold", "Café Müller", "cafe-muller"},
		{"leading and trailing junk", "  --Acme--  ", "acme"},
		{"consecutive separators collapse", "a  &  b", "a-b"},
		{"already clean", "acme", "acme"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, slug.Make(tt.input))
		})
	}
}

func TestMakeMaxLength(t *testing.T) {
	t.Parallel()

	got := slug.Make(strings.Repeat("a", 100))
	assert.Len(t, got, 63)

	got = slug.Make("hello world", slug.MaxLength(5))
	assert.LessOrEqual(t, len(got), 5)
	assert.False(t, strings.HasSuffix(got, "-"))
}

func TestMakeWithSuffix(t *testing.T) {
	t.Parallel()

	got := slug.Make("acme", slug.WithSuffix(6))
	parts := strings.SplitN(got, "-", 2)
	assert.Equal(t, "acme", parts[0])
	assert.Len(t, parts[1], 6)

	// Suffix must fit inside the length cap.
	capped := slug.Make(strings.Repeat("x", 100), slug.MaxLength(20), slug.WithSuffix(6))
	assert.LessOrEqual(t, len(capped), 20)

	// Empty base still yields a usable identifier.
	onlySuffix := slug.Make("!!!", slug.WithSuffix(6))
	assert.Len(t, onlySuffix, 6)
}
