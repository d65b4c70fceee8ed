package layout

import "fmt"

// Palette is an ordered list of anchor colors, one per dataset in diagram
// order. The default ramp is perceptually ordered dark→bright so adjacent
// datasets stay distinguishable at any order up to six.
type Palette struct {
	Anchors []Color
}

// DefaultPalette returns the packaged six-color ramp, fully opaque;
// Colors applies the per-diagram alpha.
func DefaultPalette() Palette {
	return Palette{Anchors: []Color{
		{R: 0.267, G: 0.005, B: 0.329, A: 1},
		{R: 0.253, G: 0.265, B: 0.530, A: 1},
		{R: 0.164, G: 0.471, B: 0.558, A: 1},
		{R: 0.135, G: 0.659, B: 0.518, A: 1},
		{R: 0.478, G: 0.821, B: 0.318, A: 1},
		{R: 0.993, G: 0.906, B: 0.144, A: 1},
	}}
}

// Colors returns the first n anchors with the given face alpha applied.
//
// Errors: ErrInvalidCardinality unless 2 ≤ n ≤ 6; ErrBadPalette when the
// palette carries fewer than n anchors.
func (p Palette) Colors(n int, alpha float64) ([]Color, error) {
	if n < 2 || n > 6 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCardinality, n)
	}
	if len(p.Anchors) < n {
		return nil, fmt.Errorf("%w: %d anchors for %d sets", ErrBadPalette, len(p.Anchors), n)
	}

	out := make([]Color, n)
	for i := 0; i < n; i++ {
		out[i] = p.Anchors[i].WithAlpha(alpha)
	}

	return out, nil
}
