// Package venn computes the data behind Venn/Euler set-overlap diagrams
// of two to six named datasets.
//
// 🚀 What is venn?
//
//	A small, pure-Go library that answers one question exactly: for every
//	possible inclusion/exclusion combination across N sets, which elements
//	belong to that combination alone, and what share of the whole do they
//	represent?
//		• Pattern enumeration: all 2ⁿ−1 binary "logic codes" for N sets
//		• Petal computation: the disjoint region behind each logic code,
//		  with exact size and percentage of the universe
//		• Layout boundary: static shape/label tables, palette sampling and
//		  a Canvas interface so any plotting surface can draw the result
//
// ✨ Why choose venn?
//
//   - Exact by construction – petals partition the universe, percentages
//     always sum to 100
//   - Pure Go – no cgo, no hidden deps, no global state
//   - Fail-fast – sentinel errors instead of NaN percentages or partial
//     diagrams
//
// Everything is organized under three subpackages:
//
//	setops/ — generic Set[T] primitives and n-ary union/intersection folds
//	petals/ — logic-code enumeration and petal computation (the core)
//	layout/ — shape tables, palette and the rendering boundary
//
// Quick ASCII example (N = 2):
//
//	    ┌────A────┐
//	    │ 10 ┌────┼────┐
//	    │    │ 11 │  B │
//	    └────┼────┘ 01 │
//	         └─────────┘
//
//	three petals: "10" (only A), "01" (only B), "11" (both).
//
// Dive into each subpackage's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/venn
package venn
