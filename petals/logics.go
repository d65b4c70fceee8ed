package petals

import (
	"fmt"
)

// Diagram cardinality bounds: a Venn/Euler diagram is drawable for
// 2..6 sets (ellipses up to 5, triangles at 6).
const (
	MinSets = 2
	MaxSets = 6
)

// maxLogicsOrder bounds the Logics primitive itself. 1<<n must not wrap
// a 32-bit int, and beyond this 2ⁿ−1 codes would not fit sane memory
// anyway — diagrams never go past MaxSets.
const maxLogicsOrder = 30

// Logics returns every non-empty membership pattern over n datasets as an
// n-character binary string: the integers 1 through 2ⁿ−1, each rendered in
// binary and left-padded with '0' to width n, in ascending order.
//
// The all-zero code is never produced — "outside every dataset" is not a
// diagram region. The result is freshly allocated on every call.
//
// Logics is the raw primitive and only requires n ≥ 1; the diagram-level
// bound [MinSets, MaxSets] is enforced by Compute and the layout boundary.
func Logics(n int) ([]string, error) {
	if n < 1 || n > maxLogicsOrder {
		return nil, fmt.Errorf("%w: order %d out of range [1, %d]", ErrInvalidCardinality, n, maxLogicsOrder)
	}

	codes := make([]string, 0, 1<<uint(n)-1)
	for i := 1; i < 1<<uint(n); i++ {
		codes = append(codes, fmt.Sprintf("%0*b", n, i))
	}

	return codes, nil
}
