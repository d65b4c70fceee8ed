package setops_test

import (
	"testing"

	"github.com/katalvlaran/venn/setops"
)

// buildRange returns the set {0, 1, ..., n-1}.
func buildRange(n int) setops.Set[int] {
	s := make(setops.Set[int], n)
	for i := 0; i < n; i++ {
		s.Add(i)
	}

	return s
}

// BenchmarkIntersect measures a half-overlapping intersection of two 10k sets.
func BenchmarkIntersect(b *testing.B) {
	x := buildRange(10_000)
	y := make(setops.Set[int], 10_000)
	for i := 5_000; i < 15_000; i++ {
		y.Add(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Intersect(y)
	}
}

// BenchmarkUnionAll measures the 6-way union fold over 10k-element sets.
func BenchmarkUnionAll(b *testing.B) {
	sets := make([]setops.Set[int], 6)
	for i := range sets {
		sets[i] = buildRange(10_000)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = setops.UnionAll(sets...)
	}
}
