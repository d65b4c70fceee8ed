package layout_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/venn/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestShapeFor covers the variant dispatch across the full range.
func TestShapeFor(t *testing.T) {
	cases := []struct {
		n     int
		shape layout.Shape
		err   error
	}{
		{1, 0, layout.ErrInvalidCardinality},
		{2, layout.Ellipses, nil},
		{3, layout.Ellipses, nil},
		{4, layout.Ellipses, nil},
		{5, layout.Ellipses, nil},
		{6, layout.Triangles, nil},
		{7, 0, layout.ErrInvalidCardinality},
	}
	for _, tc := range cases {
		shape, err := layout.ShapeFor(tc.n)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("ShapeFor(%d) error = %v; want %v", tc.n, err, tc.err)
			}

			continue
		}
		if err != nil {
			t.Fatalf("ShapeFor(%d) error: %v", tc.n, err)
		}
		if shape != tc.shape {
			t.Errorf("ShapeFor(%d) = %v; want %v", tc.n, shape, tc.shape)
		}
	}
}

// TestBuiltinTable_Valid verifies the packaged tables pass their own checks.
func TestBuiltinTable_Valid(t *testing.T) {
	for _, n := range []int{2, 3} {
		tab, err := layout.BuiltinTable(n)
		require.NoError(t, err)
		assert.NoError(t, tab.Validate(n), "built-in table for n=%d must validate", n)
		assert.Len(t, tab.Ellipses, n)
	}
}

// TestBuiltinTable_Missing verifies larger orders demand a caller table.
func TestBuiltinTable_Missing(t *testing.T) {
	for _, n := range []int{4, 5, 6} {
		_, err := layout.BuiltinTable(n)
		assert.ErrorIs(t, err, layout.ErrNoBuiltinTable, "n=%d", n)
	}
	_, err := layout.BuiltinTable(9)
	assert.ErrorIs(t, err, layout.ErrInvalidCardinality)
}

// TestTableValidate_Rejects covers the malformed-table branches.
func TestTableValidate_Rejects(t *testing.T) {
	good, err := layout.BuiltinTable(2)
	require.NoError(t, err)

	t.Run("MissingLabel", func(t *testing.T) {
		tab := layout.Table{Labels: map[string]layout.Point{"10": {}, "01": {}}, Ellipses: good.Ellipses}
		assert.ErrorIs(t, tab.Validate(2), layout.ErrBadTable)
	})

	t.Run("WrongWidthCode", func(t *testing.T) {
		tab := layout.Table{
			Labels:   map[string]layout.Point{"10": {}, "01": {}, "110": {}},
			Ellipses: good.Ellipses,
		}
		assert.ErrorIs(t, tab.Validate(2), layout.ErrBadTable)
	})

	t.Run("NonBinaryCode", func(t *testing.T) {
		tab := layout.Table{
			Labels:   map[string]layout.Point{"10": {}, "01": {}, "1x": {}},
			Ellipses: good.Ellipses,
		}
		assert.ErrorIs(t, tab.Validate(2), layout.ErrBadTable)
	})

	t.Run("AllZeroCode", func(t *testing.T) {
		tab := layout.Table{
			Labels:   map[string]layout.Point{"10": {}, "01": {}, "00": {}},
			Ellipses: good.Ellipses,
		}
		assert.ErrorIs(t, tab.Validate(2), layout.ErrBadTable)
	})

	t.Run("RegionCountMismatch", func(t *testing.T) {
		tab := layout.Table{Labels: good.Labels, Ellipses: good.Ellipses[:1]}
		assert.ErrorIs(t, tab.Validate(2), layout.ErrBadTable)
	})

	t.Run("WrongRegionKind", func(t *testing.T) {
		tab := layout.Table{
			Labels:    good.Labels,
			Triangles: []layout.Triangle{{}, {}},
		}
		assert.ErrorIs(t, tab.Validate(2), layout.ErrBadTable)
	})

	t.Run("OrderOutOfRange", func(t *testing.T) {
		assert.ErrorIs(t, layout.Table{}.Validate(7), layout.ErrInvalidCardinality)
	})
}
