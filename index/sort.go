// SPDX-License-Identifier: MIT

package index

import "slices"

// Sort orders keys in place by Compare.
func Sort(keys []Index) {
	slices.SortFunc(keys, func(a, b Index) int { return a.Compare(b) })
}

// Search returns the position of key in the sorted slice keys and whether it
// was found. When absent, the position is where key would be inserted.
// Complexity: O(log n) comparisons.
func Search(keys []Index, key Index) (int, bool) {
	return slices.BinarySearchFunc(keys, key, func(a, b Index) int { return a.Compare(b) })
}

// Dedup removes adjacent duplicates from a sorted slice and returns the
// shortened slice.
func Dedup(keys []Index) []Index {
	return slices.CompactFunc(keys, func(a, b Index) bool { return a.Equal(b) })
}
