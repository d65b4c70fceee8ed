// Package petals enumerates membership patterns across N datasets and
// computes, for each pattern, the disjoint "petal" of elements matching
// exactly that pattern — the numbers behind a Venn/Euler diagram.
//
// What:
//
//   - Logics(n) lists every non-empty inclusion/exclusion combination as a
//     zero-padded binary string ("01", "10", "11", ...), ascending.
//   - Compute(datasets) resolves each logic code to its Petal: the members,
//     their count, and their share of the universe (union of all datasets).
//   - Describe(datasets, tmpl) renders each Petal through a template such as
//     "{size} ({percentage:.1f}%)".
//
// Why:
//
//   - Diagram tools need disjoint region counts, not raw pairwise overlaps:
//     "in A and B but not C" is a single petal, and the petals of a diagram
//     partition the universe by construction.
//   - Percentages are normalized against the true union, never the sum of
//     dataset sizes, so overlapping inputs cannot push the total past 100.
//
// Algorithm, per logic code P of width n:
//
//	included = { Dᵢ : P[i] == '1' },  excluded = { Dᵢ : P[i] == '0' }
//	petal    = (universe ∩ ⋂ included) − (⋃ excluded)
//
// Complexity:
//
//   - Logics:  O(n·2ⁿ) characters, at most 63 codes (n ≤ 6 in a diagram).
//   - Compute: O(2ⁿ · Σ|Dᵢ|) set work, Memory: O(|universe|) per petal.
//
// Errors:
//
//   - ErrInvalidCardinality: dataset count outside [2, 6] (or n < 1 for the
//     Logics primitive).
//   - ErrEmptyUniverse: every dataset empty — percentages are undefined, so
//     the whole computation is rejected instead of returning NaN.
//   - ErrBadTemplate: template references an unknown field or is malformed.
//
// All functions are pure: no shared state, no mutation of the inputs, and
// identical inputs always produce identical results.
package petals
