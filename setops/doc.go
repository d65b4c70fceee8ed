// Package setops provides a minimal generic set type and the n-ary
// union/intersection folds the petal computer is built on.
//
// What:
//
//   - Set[T comparable] wraps map[T]struct{} with value-semantics helpers.
//   - Binary operations: Union, Intersect, Subtract — always allocate a
//     fresh result, never mutate an operand.
//   - N-ary folds: UnionAll, IntersectAll — explicit left folds with
//     pinned-down empty-argument behavior (both yield the empty set).
//
// Why:
//
//   - Venn petal computation is three set operations per logic code;
//     keeping them as small audited primitives keeps the core readable.
//   - The empty-fold edge cases matter: subtracting the union of zero
//     sets must subtract ∅, not be skipped.
//
// Complexity:
//
//   - Union/Subtract:   O(|a|+|b|), Memory: O(result).
//   - Intersect:        O(min(|a|,|b|)), Memory: O(result).
//   - UnionAll:         O(Σ|sᵢ|).
//   - IntersectAll:     O(|s₀| + Σ min sizes).
//
// Element order is never promised: Elems returns elements in map order.
// Callers that need determinism sort the result themselves.
package setops
