package cubealg

import "errors"

// Sentinel errors for the cubealg package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("cubealg: invalid move notation")
	ErrUnknownRotation = errors.New("cubealg: unknown rotation")
)
