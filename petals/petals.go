package petals

import (
	"fmt"

	"github.com/katalvlaran/venn/setops"
)

// Petal is the disjoint region of a diagram matching exactly one logic
// code: every member belongs to each dataset whose bit is '1' and to no
// dataset whose bit is '0'. The petals of one Compute call partition the
// universe.
type Petal[T comparable] struct {
	// Logic is the membership pattern this petal answers to, e.g. "101".
	Logic string
	// Members holds the elements unique to this pattern.
	Members setops.Set[T]
	// Size is len(Members), kept alongside for direct formatting.
	Size int
	// Percentage is Size as a share of the universe size, in [0, 100].
	// Raw value — format to any precision the display needs.
	Percentage float64
}

// Compute resolves every logic code over the given datasets to its Petal.
//
// The universe is the union of all datasets, computed fresh per call;
// nothing is cached and the inputs are never mutated. The returned map
// covers exactly the Logics(len(datasets)) sequence — on any error the
// result is nil, never a partial map.
//
// Errors: ErrInvalidCardinality unless MinSets ≤ len(datasets) ≤ MaxSets;
// ErrEmptyUniverse when every dataset is empty.
func Compute[T comparable](datasets []setops.Set[T]) (map[string]Petal[T], error) {
	n := len(datasets)
	if n < MinSets || n > MaxSets {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCardinality, n)
	}

	universe := setops.UnionAll(datasets...)
	if universe.Empty() {
		return nil, ErrEmptyUniverse
	}
	total := float64(universe.Len())

	codes, err := Logics(n)
	if err != nil {
		return nil, err
	}

	out := make(map[string]Petal[T], len(codes))
	included := make([]setops.Set[T], 0, n)
	excluded := make([]setops.Set[T], 0, n)
	for _, code := range codes {
		included, excluded = included[:0], excluded[:0]
		for i := 0; i < n; i++ {
			if code[i] == '1' {
				included = append(included, datasets[i])
			} else {
				excluded = append(excluded, datasets[i])
			}
		}

		// (universe ∩ ⋂ included) − (⋃ excluded). Intersecting against the
		// universe keeps the pipeline total even at the all-ones code,
		// where the excluded union folds to ∅ and subtracts nothing.
		members := universe.
			Intersect(setops.IntersectAll(included...)).
			Subtract(setops.UnionAll(excluded...))

		out[code] = Petal[T]{
			Logic:      code,
			Members:    members,
			Size:       members.Len(),
			Percentage: 100 * float64(members.Len()) / total,
		}
	}

	return out, nil
}

// Describe computes the petals and renders each through tmpl, mapping
// every logic code to its formatted description. An empty tmpl selects
// DefaultTemplate. See ParseTemplate for the recognized fields.
func Describe[T comparable](datasets []setops.Set[T], tmpl string) (map[string]string, error) {
	if tmpl == "" {
		tmpl = DefaultTemplate
	}
	t, err := ParseTemplate(tmpl)
	if err != nil {
		return nil, err
	}

	computed, err := Compute(datasets)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(computed))
	for code, p := range computed {
		out[code] = t.Render(p.Logic, p.Size, p.Percentage)
	}

	return out, nil
}
