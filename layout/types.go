// Package layout defines the geometric types shared by tables, palettes
// and the Canvas interface.
package layout

import "fmt"

// Point is a position on the unit drawing surface, both axes in [0, 1].
type Point struct {
	X, Y float64
}

// Shape selects how a diagram of a given order is drawn.
type Shape int

const (
	// Ellipses draws one (possibly rotated) ellipse per dataset; used for
	// 2 to 5 sets.
	Ellipses Shape = iota
	// Triangles draws one triangle per dataset; the only workable layout
	// for 6 sets.
	Triangles
)

// ShapeFor resolves the shape variant for an n-set diagram.
// This is the single place the ellipse/triangle dispatch lives; nothing
// shape-related leaks into the petal computation.
func ShapeFor(n int) (Shape, error) {
	switch {
	case n >= 2 && n <= 5:
		return Ellipses, nil
	case n == 6:
		return Triangles, nil
	default:
		return 0, fmt.Errorf("%w: got %d", ErrInvalidCardinality, n)
	}
}

// Ellipse is one dataset's region in an ellipse layout.
type Ellipse struct {
	Center        Point
	Width, Height float64
	// Angle is the counter-clockwise rotation in degrees.
	Angle float64
}

// Triangle is one dataset's region in a triangle layout.
type Triangle struct {
	A, B, C Point
}

// Color is an RGBA color with each channel in [0, 1].
type Color struct {
	R, G, B, A float64
}

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a

	return c
}

// Opaquer returns c pushed halfway toward full opacity; used to derive a
// region's edge color from its translucent face color.
func (c Color) Opaquer() Color {
	c.A = (1 + c.A) / 2

	return c
}
