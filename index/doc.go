// Package index defines Index, the hierarchical composite key that addresses a
// physical degree of freedom (lattice site, orbital, spin, ...) in a
// tight-binding model.
//
// An Index is an ordered, variable-length sequence of signed integers:
//
//	{x, y, spin}      site (x,y) with spin
//	{unitCell, orb}   orbital inside a unit cell
//
// The length is meaningful: {0} and {0, 0} are different keys.
//
// Ordering
//
//   - Two keys are equal iff they have the same length and the same sub-indices.
//   - Compare is lexicographic over sub-indices; when one key is a leading
//     prefix of the other, the shorter key sorts first ({0} < {0, 0} < {1}).
//   - The order is total, so keys can be kept in a sorted table and located
//     with a binary search in O(log n) comparisons.
//
// Block prefixes
//
//	A is a block prefix of B if A is a strict leading prefix of B.
//	{1} is a block prefix of {1, 0} and {1, 1}, but not of {1} or {2, 0}.
//
// The model package uses prefixes to address blocks: a block key selects the
// block that holds the basis keys starting with it, and Concat joins a block
// key with an intra-block key.
//
// Index values are immutable. Every constructor copies its input and every
// accessor returning sub-indices returns a copy, so keys can be shared freely
// between goroutines.
package index
