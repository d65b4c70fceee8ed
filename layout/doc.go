// Package layout is the rendering boundary for venn diagrams: static shape
// and label-placement tables, palette sampling, and a Canvas interface that
// any plotting surface can implement.
//
// What:
//
//   - Shape: the tagged variant behind "how is an N-set diagram drawn" —
//     overlapping ellipses for 2–5 sets, triangles for 6.
//   - Table: per-N static layout data (one region per dataset, one label
//     anchor per logic code). Built-ins ship for N=2 and N=3; larger
//     diagrams take a caller-supplied table.
//   - Check: fail-fast cross-validation between computed petal
//     descriptions, dataset labels and a layout table — a mismatch aborts
//     before anything is drawn, never after a partial diagram.
//   - Palette: ordered color ramp with alpha handling for faces and edges.
//   - Render: draws regions, petal texts and the legend onto a Canvas.
//
// Why:
//
//   - The petal computation is exact; the only failure mode left is wiring
//     its output to the wrong table. Check makes that loud.
//   - Coordinates are data, not algorithm: keeping them in Table values
//     (instead of module globals) keeps the core free of hidden state.
//
// Errors:
//
//   - ErrInvalidCardinality: label count outside [2, 6].
//   - ErrLabelCount: petal code width disagrees with the label count.
//   - ErrPatternMismatch: table and petal keys are not the same set.
//   - ErrBadTable: a table is internally inconsistent for its N.
//   - ErrBadPalette: fewer palette anchors than datasets.
//   - ErrNoBuiltinTable: no built-in table for the requested N.
package layout
