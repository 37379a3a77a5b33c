// SPDX-License-Identifier: MIT

package index

import (
	"strconv"
	"strings"
)

// Index is an immutable composite key made of signed sub-indices.
// The zero value is the empty key {}.
type Index struct {
	subs []int // never aliased outside the package
}

// New builds an Index from the given sub-indices. The input slice is copied.
// Complexity: O(len(subs)).
func New(subs ...int) Index {
	if len(subs) == 0 {
		return Index{}
	}
	cp := make([]int, len(subs))
	copy(cp, subs)

	return Index{subs: cp}
}

// Concat returns the key formed by the sub-indices of a followed by those of b.
// Used to build "block key + intra-block key" composites.
// Complexity: O(len(a)+len(b)).
func Concat(a, b Index) Index {
	out := make([]int, 0, len(a.subs)+len(b.subs))
	out = append(out, a.subs...)
	out = append(out, b.subs...)
	if len(out) == 0 {
		return Index{}
	}

	return Index{subs: out}
}

// Len returns the number of sub-indices.
func (x Index) Len() int { return len(x.subs) }

// IsEmpty reports whether x has no sub-indices.
func (x Index) IsEmpty() bool { return len(x.subs) == 0 }

// At returns the i-th sub-index. It panics when i is out of range, like a slice access.
func (x Index) At(i int) int { return x.subs[i] }

// Subs returns a copy of the sub-indices.
func (x Index) Subs() []int {
	out := make([]int, len(x.subs))
	copy(out, x.subs)

	return out
}

// Equal reports whether x and y have the same length and sub-indices.
// Complexity: O(min(len)).
func (x Index) Equal(y Index) bool {
	if len(x.subs) != len(y.subs) {
		return false
	}
	for i, v := range x.subs {
		if v != y.subs[i] {
			return false
		}
	}

	return true
}

// Compare returns -1, 0 or +1 when x sorts before, equal to or after y.
// Sub-indices are compared left to right; on a common prefix the shorter key
// sorts first.
// Complexity: O(min(len)).
func (x Index) Compare(y Index) int {
	n := len(x.subs)
	if len(y.subs) < n {
		n = len(y.subs)
	}
	for i := 0; i < n; i++ {
		switch {
		case x.subs[i] < y.subs[i]:
			return -1
		case x.subs[i] > y.subs[i]:
			return 1
		}
	}
	switch {
	case len(x.subs) < len(y.subs):
		return -1
	case len(x.subs) > len(y.subs):
		return 1
	default:
		return 0
	}
}

// Less reports whether x sorts strictly before y.
func (x Index) Less(y Index) bool { return x.Compare(y) < 0 }

// HasPrefix reports whether p is a leading prefix of x or equal to x.
// The empty key is a prefix of every key.
func (x Index) HasPrefix(p Index) bool {
	if len(p.subs) > len(x.subs) {
		return false
	}
	for i, v := range p.subs {
		if x.subs[i] != v {
			return false
		}
	}

	return true
}

// IsBlockPrefixOf reports whether x is a strict leading prefix of y.
func (x Index) IsBlockPrefixOf(y Index) bool {
	return len(x.subs) < len(y.subs) && y.HasPrefix(x)
}

// CommonPrefix returns the longest key that is a prefix of both x and y.
func CommonPrefix(x, y Index) Index {
	n := 0
	for n < len(x.subs) && n < len(y.subs) && x.subs[n] == y.subs[n] {
		n++
	}

	return New(x.subs[:n]...)
}

// String renders x as "{a, b, c}".
func (x Index) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range x.subs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte('}')

	return sb.String()
}
