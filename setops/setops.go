package setops

// Set is an unordered collection of unique elements of any comparable type.
// The zero value (a nil map) is a valid empty set for read operations;
// use New or From before calling Add.
type Set[T comparable] map[T]struct{}

// New returns an empty Set.
func New[T comparable]() Set[T] {
	return make(Set[T])
}

// From builds a Set from the given elements; duplicates collapse.
func From[T comparable](elems ...T) Set[T] {
	s := make(Set[T], len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}

	return s
}

// Add inserts e into s.
func (s Set[T]) Add(e T) {
	s[e] = struct{}{}
}

// Contains reports whether e is a member of s.
func (s Set[T]) Contains(e T) bool {
	_, ok := s[e]

	return ok
}

// Len returns the number of elements in s.
func (s Set[T]) Len() int {
	return len(s)
}

// Empty reports whether s has no elements.
func (s Set[T]) Empty() bool {
	return len(s) == 0
}

// Elems returns the elements of s as a slice, in unspecified order.
func (s Set[T]) Elems() []T {
	out := make([]T, 0, len(s))
	for e := range s {
		out = append(out, e)
	}

	return out
}

// Clone returns an independent copy of s.
func (s Set[T]) Clone() Set[T] {
	out := make(Set[T], len(s))
	for e := range s {
		out[e] = struct{}{}
	}

	return out
}

// Equal reports whether s and other contain exactly the same elements.
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for e := range s {
		if _, ok := other[e]; !ok {
			return false
		}
	}

	return true
}

// Union returns a new set with every element of s and every element of other.
func (s Set[T]) Union(other Set[T]) Set[T] {
	out := make(Set[T], len(s)+len(other))
	for e := range s {
		out[e] = struct{}{}
	}
	for e := range other {
		out[e] = struct{}{}
	}

	return out
}

// Intersect returns a new set with the elements present in both s and other.
func (s Set[T]) Intersect(other Set[T]) Set[T] {
	// Iterate the smaller operand.
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(Set[T])
	for e := range small {
		if _, ok := large[e]; ok {
			out[e] = struct{}{}
		}
	}

	return out
}

// Subtract returns a new set with the elements of s that are not in other.
func (s Set[T]) Subtract(other Set[T]) Set[T] {
	out := make(Set[T])
	for e := range s {
		if _, ok := other[e]; !ok {
			out[e] = struct{}{}
		}
	}

	return out
}
