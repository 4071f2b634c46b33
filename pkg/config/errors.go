package config

import "errors"

var (
	// ErrNilPointer is returned when Load receives a nil config pointer.
	ErrNilPointer = errors.New("config: nil pointer provided")

	// ErrParsingConfig wraps failures from parsing environment variables.
	ErrParsingConfig = errors.New("config: failed to parse environment variables")
)
