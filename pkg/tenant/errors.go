package tenant

import "errors"

var (
	// ErrTimeout is returned when the resolution call exceeds its deadline.
	ErrTimeout = errors.New("tenant resolution timed out")

	// ErrUnreachable is returned when the resolution endpoint cannot be
	// reached or the request cannot be built.
	ErrUnreachable = errors.New("tenant resolution endpoint unreachable")

	// ErrUnexpectedStatus is returned for non-200 responses other than 404.
	ErrUnexpectedStatus = errors.New("tenant resolution returned unexpected status")

	// ErrInvalidPayload is returned when the resolution endpoint emits a
	// response that fails decoding or slug re-validation. The endpoint is
	// trusted infrastructure, so this signals an upstream bug.
	ErrInvalidPayload = errors.New("tenant resolution returned invalid payload")

	// ErrNoTenantInContext is returned by MustFromContext-style accessors
	// when a handler runs outside a tenant scope.
	ErrNoTenantInContext = errors.New("no tenant in context")
)
