// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"iter"
	"sync"

	"github.com/katalvlaran/tbdiag/hopping"
	"github.com/katalvlaran/tbdiag/index"
	"github.com/katalvlaran/tbdiag/serialize"
)

// Block describes one contiguous range of basis positions.
type Block struct {
	// First is the first basis position of the block.
	First int
	// Size is the number of basis positions in the block.
	Size int
	// Prefix is the longest common prefix of the block's keys.
	Prefix index.Index
}

// Last returns the last basis position of the block (inclusive).
func (b Block) Last() int { return b.First + b.Size - 1 }

// Entry is a hopping amplitude with both endpoints resolved to basis positions.
type Entry struct {
	Amplitude hopping.Amplitude
	To        int
	From      int
}

// Store is the sparse Hamiltonian: a list of hopping amplitudes plus, once
// finalized, the basis and block tables derived from it.
type Store struct {
	mu   sync.RWMutex
	opts Options

	amplitudes []hopping.Amplitude
	finalized  bool

	// Derived by Finalize; read-only afterwards.
	keys      []index.Index // distinct keys in key order
	keyPos    []int         // keys[i] -> basis position
	basis     []index.Index // basis position -> key
	posBlock  []int         // basis position -> block number
	blocks    []Block
	endpoints [][2]int // per amplitude: (to, from) positions
	touchOff  []int    // CSR row offsets into touchIDs, len = N+1
	touchIDs  []int    // amplitude ids touching each position
}

// New returns an empty, mutable Store.
func New(opts ...Option) *Store {
	return &Store{opts: gatherOptions(opts...)}
}

// Add appends a hopping amplitude. Identical (to, from) pairs are kept and
// add up when the Hamiltonian is assembled.
//
// Errors: ErrFinalized, ErrConstruction.
func (s *Store) Add(a hopping.Amplitude) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finalized {
		return modelErrorf(opAdd, ErrFinalized)
	}
	if err := s.validate(a); err != nil {
		return modelErrorf(opAdd, err)
	}
	s.amplitudes = append(s.amplitudes, a)

	return nil
}

// AddPair adds both halves of a.Plus(hopping.HC). Nothing is added when either half is invalid.
func (s *Store) AddPair(p hopping.Pair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finalized {
		return modelErrorf(opAdd, ErrFinalized)
	}
	for _, a := range [...]hopping.Amplitude{p.Amplitude, p.Conjugate} {
		if err := s.validate(a); err != nil {
			return modelErrorf(opAdd, err)
		}
	}
	s.amplitudes = append(s.amplitudes, p.Amplitude, p.Conjugate)

	return nil
}

// validate checks endpoint shape against the configured policy.
func (s *Store) validate(a hopping.Amplitude) error {
	to, from := a.To(), a.From()
	if to.IsEmpty() || from.IsEmpty() {
		return fmt.Errorf("empty endpoint in %s: %w", a, ErrConstruction)
	}
	if n := s.opts.keyLength; n > 0 && (to.Len() != n || from.Len() != n) {
		return fmt.Errorf("endpoints %s, %s must have %d sub-indices: %w", to, from, n, ErrConstruction)
	}

	return nil
}

// Finalize fixes the basis and the block partition. Calling it again is a no-op.
// Complexity: O(E log N) for E amplitudes and N distinct keys.
func (s *Store) Finalize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finalized {
		return nil
	}

	// Stage 1: distinct endpoint keys in key order.
	keys := make([]index.Index, 0, 2*len(s.amplitudes))
	for _, a := range s.amplitudes {
		keys = append(keys, a.To(), a.From())
	}
	index.Sort(keys)
	keys = index.Dedup(keys)
	n := len(keys)

	// Stage 2: union-find over the declared couplings.
	slot := make([][2]int, len(s.amplitudes)) // per amplitude: (to, from) key slots
	ds := newDisjointSet(n)
	for id, a := range s.amplitudes {
		t, okT := index.Search(keys, a.To())
		f, okF := index.Search(keys, a.From())
		if !okT || !okF {
			// Unreachable: every endpoint was inserted in stage 1.
			return modelErrorf(opFinalize, fmt.Errorf("%s: %w", a, ErrNotFound))
		}
		slot[id] = [2]int{t, f}
		ds.union(t, f)
	}

	// Stage 3: group slots by root. Walking slots in key order keeps each
	// group sorted and orders groups by their smallest key.
	groupOf := make(map[int]int, n)
	var groups [][]int
	for i := 0; i < n; i++ {
		r := ds.find(i)
		g, ok := groupOf[r]
		if !ok {
			g = len(groups)
			groupOf[r] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], i)
	}

	// Stage 4: hand out contiguous positions block by block.
	keyPos := make([]int, n)
	basis := make([]index.Index, n)
	posBlock := make([]int, n)
	blocks := make([]Block, len(groups))
	pos := 0
	for b, members := range groups {
		first := pos
		for _, k := range members {
			keyPos[k] = pos
			basis[pos] = keys[k]
			posBlock[pos] = b
			pos++
		}
		blocks[b] = Block{
			First:  first,
			Size:   len(members),
			Prefix: index.CommonPrefix(basis[first], basis[pos-1]),
		}
	}

	// Stage 5: resolved endpoints and the position -> amplitude adjacency (CSR).
	endpoints := make([][2]int, len(s.amplitudes))
	counts := make([]int, n+1)
	for id, sl := range slot {
		t, f := keyPos[sl[0]], keyPos[sl[1]]
		endpoints[id] = [2]int{t, f}
		counts[t+1]++
		if f != t {
			counts[f+1]++
		}
	}
	for i := 1; i <= n; i++ {
		counts[i] += counts[i-1]
	}
	touchIDs := make([]int, counts[n])
	fill := make([]int, n)
	copy(fill, counts[:n])
	for id, ep := range endpoints {
		touchIDs[fill[ep[0]]] = id
		fill[ep[0]]++
		if ep[1] != ep[0] {
			touchIDs[fill[ep[1]]] = id
			fill[ep[1]]++
		}
	}

	s.keys, s.keyPos, s.basis, s.posBlock, s.blocks = keys, keyPos, basis, posBlock, blocks
	s.endpoints, s.touchOff, s.touchIDs = endpoints, counts, touchIDs
	s.finalized = true

	return nil
}

// Finalized reports whether Finalize has run.
func (s *Store) Finalized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.finalized
}

// Len returns the number of stored amplitudes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.amplitudes)
}

// Options returns the Store configuration.
func (s *Store) Options() Options { return s.opts }

// Entries yields every stored amplitude in insertion order.
// The sequence iterates over a snapshot taken when iteration starts.
func (s *Store) Entries() iter.Seq[hopping.Amplitude] {
	return func(yield func(hopping.Amplitude) bool) {
		s.mu.RLock()
		snap := s.amplitudes[:len(s.amplitudes):len(s.amplitudes)]
		s.mu.RUnlock()
		for _, a := range snap {
			if !yield(a) {
				return
			}
		}
	}
}

// Records returns the coupling list as ([to, from], value) records.
// Callback amplitudes are evaluated.
func (s *Store) Records() []serialize.Record {
	out := make([]serialize.Record, 0, s.Len())
	for a := range s.Entries() {
		out = append(out, serialize.Record{
			Kind:    serialize.KindHopping,
			Indices: []index.Index{a.To(), a.From()},
			Value:   a.Value(),
		})
	}

	return out
}
