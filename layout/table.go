package layout

import (
	"fmt"
	"strings"
)

// Table is the static layout for one diagram order: where each dataset's
// region sits and where each petal's text goes. Tables are plain data —
// pass them in explicitly rather than hiding them in globals.
//
// Exactly one of Ellipses/Triangles is populated, matching ShapeFor(n).
type Table struct {
	// Labels maps each logic code to its text anchor.
	Labels map[string]Point
	// Ellipses holds one region per dataset when ShapeFor(n) == Ellipses.
	Ellipses []Ellipse
	// Triangles holds one region per dataset when ShapeFor(n) == Triangles.
	Triangles []Triangle
}

// Validate checks tab's internal consistency for an n-set diagram:
// exactly 2ⁿ−1 label anchors keyed by well-formed width-n codes, and
// exactly n regions of the kind ShapeFor(n) dictates.
func (tab Table) Validate(n int) error {
	shape, err := ShapeFor(n)
	if err != nil {
		return err
	}

	want := 1<<uint(n) - 1
	if len(tab.Labels) != want {
		return fmt.Errorf("%w: %d label anchors for %d sets, want %d", ErrBadTable, len(tab.Labels), n, want)
	}
	for code := range tab.Labels {
		if err = checkCode(code, n); err != nil {
			return err
		}
	}

	switch shape {
	case Ellipses:
		if len(tab.Ellipses) != n || len(tab.Triangles) != 0 {
			return fmt.Errorf("%w: want %d ellipses and no triangles, have %d/%d",
				ErrBadTable, n, len(tab.Ellipses), len(tab.Triangles))
		}
	case Triangles:
		if len(tab.Triangles) != n || len(tab.Ellipses) != 0 {
			return fmt.Errorf("%w: want %d triangles and no ellipses, have %d/%d",
				ErrBadTable, n, len(tab.Triangles), len(tab.Ellipses))
		}
	}

	return nil
}

// checkCode verifies one label key: width n, binary alphabet, not all-zero.
func checkCode(code string, n int) error {
	if len(code) != n {
		return fmt.Errorf("%w: label code %q has width %d, want %d", ErrBadTable, code, len(code), n)
	}
	if strings.Count(code, "0")+strings.Count(code, "1") != n {
		return fmt.Errorf("%w: label code %q is not binary", ErrBadTable, code)
	}
	if !strings.Contains(code, "1") {
		return fmt.Errorf("%w: all-zero label code is not a diagram region", ErrBadTable)
	}

	return nil
}

// BuiltinTable returns the packaged symmetric layout for an n-set diagram.
// Only n = 2 and n = 3 ship built-in; other orders return ErrNoBuiltinTable
// and take a caller-supplied Table.
func BuiltinTable(n int) (Table, error) {
	switch n {
	case 2:
		return twoSetTable(), nil
	case 3:
		return threeSetTable(), nil
	default:
		if _, err := ShapeFor(n); err != nil {
			return Table{}, err
		}

		return Table{}, fmt.Errorf("%w: got %d", ErrNoBuiltinTable, n)
	}
}

// twoSetTable lays out two equal circles with a lens-shaped overlap.
func twoSetTable() Table {
	return Table{
		Labels: map[string]Point{
			"10": {X: 0.26, Y: 0.50},
			"01": {X: 0.74, Y: 0.50},
			"11": {X: 0.50, Y: 0.50},
		},
		Ellipses: []Ellipse{
			{Center: Point{X: 0.375, Y: 0.5}, Width: 0.5, Height: 0.5},
			{Center: Point{X: 0.625, Y: 0.5}, Width: 0.5, Height: 0.5},
		},
	}
}

// threeSetTable lays out three equal circles in the classic triangular
// arrangement: two on top, one below.
func threeSetTable() Table {
	return Table{
		Labels: map[string]Point{
			"100": {X: 0.27, Y: 0.65},
			"010": {X: 0.73, Y: 0.65},
			"001": {X: 0.50, Y: 0.27},
			"110": {X: 0.50, Y: 0.65},
			"101": {X: 0.39, Y: 0.46},
			"011": {X: 0.61, Y: 0.46},
			"111": {X: 0.50, Y: 0.51},
		},
		Ellipses: []Ellipse{
			{Center: Point{X: 0.333, Y: 0.633}, Width: 0.5, Height: 0.5},
			{Center: Point{X: 0.666, Y: 0.633}, Width: 0.5, Height: 0.5},
			{Center: Point{X: 0.500, Y: 0.310}, Width: 0.5, Height: 0.5},
		},
	}
}
