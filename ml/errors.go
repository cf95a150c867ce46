package ml

import "errors"

// Errors returned by the network. Call sites wrap them with context, so
// compare with errors.Is.
var (
	ErrInvalidTopology   = errors.New("invalid topology")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrAllocationFailure = errors.New("weight tensor too large to allocate")
)
