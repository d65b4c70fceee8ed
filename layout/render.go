package layout

import (
	"fmt"
	"sort"
)

// Canvas is the plotting surface a caller brings: an adapter over any 2D
// drawing backend. Coordinates arrive on the unit square; colors carry
// their alpha. Render calls it region-by-region, then text, then legend.
type Canvas interface {
	// Ellipse draws a filled ellipse rotated by angle degrees.
	Ellipse(center Point, width, height, angle float64, face, edge Color)
	// Polygon draws a closed filled polygon.
	Polygon(pts []Point, face, edge Color)
	// Text draws s centered at the given point.
	Text(at Point, s string)
	// Legend associates the dataset labels with their region colors,
	// in diagram order.
	Legend(labels []string, colors []Color)
}

// Options configures one Render call.
type Options struct {
	// Table is the static layout; the zero value selects the built-in
	// table for the diagram order (available for 2 and 3 sets).
	Table Table
	// Palette supplies region colors; the zero value selects DefaultPalette.
	Palette Palette
	// Alpha is the face translucency of each region.
	Alpha float64
	// ShowLegend toggles the final Legend call.
	ShowLegend bool
}

// DefaultOptions mirrors the classic look: built-in table, default ramp,
// 0.4 face alpha, legend on.
func DefaultOptions() Options {
	return Options{
		Palette:    DefaultPalette(),
		Alpha:      0.4,
		ShowLegend: true,
	}
}

// Check fail-fast validates one diagram's inputs against a layout table:
// every petal code must have a label anchor and vice versa, and the code
// width must equal the number of dataset labels. Nothing is drawn on error
// — a partial diagram is worse than none.
func Check(descriptions map[string]string, labels []string, tab Table) error {
	n := len(labels)
	if _, err := ShapeFor(n); err != nil {
		return err
	}
	for code := range descriptions {
		if len(code) != n {
			return fmt.Errorf("%w: petal code %q vs %d labels", ErrLabelCount, code, n)
		}
	}
	if err := tab.Validate(n); err != nil {
		return err
	}
	for code := range tab.Labels {
		if _, ok := descriptions[code]; !ok {
			return fmt.Errorf("%w: table expects %q, petals lack it", ErrPatternMismatch, code)
		}
	}
	for code := range descriptions {
		if _, ok := tab.Labels[code]; !ok {
			return fmt.Errorf("%w: petals contain %q, table lacks it", ErrPatternMismatch, code)
		}
	}

	return nil
}

// Render draws one diagram: validates, resolves the shape variant and
// colors, then emits regions, petal texts (in ascending code order, so
// output is deterministic) and optionally the legend.
//
// descriptions is the petal computer's output; labels name the datasets
// in the same order the datasets were supplied.
func Render(c Canvas, descriptions map[string]string, labels []string, opts Options) error {
	n := len(labels)

	tab := opts.Table
	if tab.Labels == nil {
		builtin, err := BuiltinTable(n)
		if err != nil {
			return err
		}
		tab = builtin
	}
	if err := Check(descriptions, labels, tab); err != nil {
		return err
	}

	shape, err := ShapeFor(n)
	if err != nil {
		return err
	}
	pal := opts.Palette
	if len(pal.Anchors) == 0 {
		pal = DefaultPalette()
	}
	colors, err := pal.Colors(n, opts.Alpha)
	if err != nil {
		return err
	}

	switch shape {
	case Ellipses:
		for i, e := range tab.Ellipses {
			c.Ellipse(e.Center, e.Width, e.Height, e.Angle, colors[i], colors[i].Opaquer())
		}
	case Triangles:
		for i, tr := range tab.Triangles {
			c.Polygon([]Point{tr.A, tr.B, tr.C}, colors[i], colors[i].Opaquer())
		}
	}

	codes := make([]string, 0, len(tab.Labels))
	for code := range tab.Labels {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		c.Text(tab.Labels[code], descriptions[code])
	}

	if opts.ShowLegend {
		c.Legend(labels, colors)
	}

	return nil
}
