package types

import "errors"

// Enum parse errors
var (
	// ErrUnknownHashFunction is returned when a hash function name is not recognized
	ErrUnknownHashFunction = errors.New("unknown hash function")

	// ErrUnknownConsistencyMode is returned when a consistency mode name is not recognized
	ErrUnknownConsistencyMode = errors.New("unknown consistency mode")
)
