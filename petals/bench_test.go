package petals_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/venn/petals"
	"github.com/katalvlaran/venn/setops"
)

// benchDatasets builds n staggered datasets of `size` elements each,
// every neighbor pair overlapping by half.
func benchDatasets(n, size int) []setops.Set[int] {
	out := make([]setops.Set[int], n)
	for i := range out {
		s := make(setops.Set[int], size)
		for j := 0; j < size; j++ {
			s.Add(i*size/2 + j)
		}
		out[i] = s
	}

	return out
}

// BenchmarkLogics measures enumeration alone at the largest diagram order.
func BenchmarkLogics(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := petals.Logics(petals.MaxSets); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCompute sweeps the diagram orders over 10k-element datasets.
func BenchmarkCompute(b *testing.B) {
	for n := petals.MinSets; n <= petals.MaxSets; n++ {
		datasets := benchDatasets(n, 10_000)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := petals.Compute(datasets); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkDescribe measures the full compute+format pipeline at n=3.
func BenchmarkDescribe(b *testing.B) {
	datasets := benchDatasets(3, 10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := petals.Describe(datasets, ""); err != nil {
			b.Fatal(err)
		}
	}
}
