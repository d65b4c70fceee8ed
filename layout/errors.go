package layout

import "errors"

// Sentinel errors for the rendering boundary.
var (
	// ErrInvalidCardinality indicates a dataset count a diagram cannot hold.
	ErrInvalidCardinality = errors.New("layout: number of sets must be between 2 and 6")
	// ErrLabelCount indicates petal codes whose width disagrees with the
	// number of dataset labels.
	ErrLabelCount = errors.New("layout: inconsistent petal codes and dataset labels")
	// ErrPatternMismatch indicates petal keys and table keys are not the
	// same set, which would render a partial diagram.
	ErrPatternMismatch = errors.New("layout: petal patterns do not match layout table")
	// ErrBadTable indicates a layout table inconsistent with its diagram order.
	ErrBadTable = errors.New("layout: malformed layout table")
	// ErrBadPalette indicates a palette with too few anchor colors.
	ErrBadPalette = errors.New("layout: palette has fewer colors than datasets")
	// ErrNoBuiltinTable indicates no built-in table exists for the order;
	// supply one via Options.Table.
	ErrNoBuiltinTable = errors.New("layout: no built-in table for this number of sets")
)
