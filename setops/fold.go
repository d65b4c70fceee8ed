package setops

// UnionAll folds Union over sets, seeding with the empty set.
// UnionAll() is therefore ∅ — callers that subtract "the union of the
// excluded sets" get a well-defined no-op when nothing is excluded.
func UnionAll[T comparable](sets ...Set[T]) Set[T] {
	out := New[T]()
	for _, s := range sets {
		for e := range s {
			out[e] = struct{}{}
		}
	}

	return out
}

// IntersectAll folds Intersect over sets, starting from the first operand.
// IntersectAll() is ∅, not "everything": with no operands there is no
// universe to intersect against, and returning the empty set keeps the
// fold total instead of panicking. Callers needing a universe-relative
// intersection intersect the universe explicitly.
func IntersectAll[T comparable](sets ...Set[T]) Set[T] {
	if len(sets) == 0 {
		return New[T]()
	}
	out := sets[0].Clone()
	for _, s := range sets[1:] {
		if out.Empty() {
			break
		}
		out = out.Intersect(s)
	}

	return out
}
