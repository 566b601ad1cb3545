package store

import "errors"

// Sentinel errors handlers map onto HTTP statuses. Anything else coming out
// of a store function is an internal failure.
var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInsufficientTokens = errors.New("insufficient tokens")
)
