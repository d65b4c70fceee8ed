package petals

import "errors"

// Sentinel errors for pattern enumeration and petal computation.
var (
	// ErrInvalidCardinality indicates a dataset count a diagram cannot hold.
	ErrInvalidCardinality = errors.New("petals: number of datasets must be between 2 and 6")
	// ErrEmptyUniverse indicates the union of all datasets is empty,
	// leaving percentages undefined.
	ErrEmptyUniverse = errors.New("petals: union of datasets is empty")
	// ErrBadTemplate indicates a description template that cannot be parsed.
	ErrBadTemplate = errors.New("petals: malformed description template")
)
