// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/tbdiag/index"
)

// BasisSize returns the number of basis states (0 before Finalize).
func (s *Store) BasisSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.basis)
}

// NumBlocks returns the number of discovered blocks (0 before Finalize).
func (s *Store) NumBlocks() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.blocks)
}

// Blocks returns a copy of the block table, ordered by First.
func (s *Store) Blocks() []Block {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Block, len(s.blocks))
	copy(out, s.blocks)

	return out
}

// Block returns block number b.
func (s *Store) Block(b int) (Block, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.finalized {
		return Block{}, modelErrorf(opBlock, ErrNotFinalized)
	}
	if b < 0 || b >= len(s.blocks) {
		return Block{}, modelErrorf(opBlock, fmt.Errorf("block %d not in [0,%d): %w", b, len(s.blocks), ErrOutOfRange))
	}

	return s.blocks[b], nil
}

// BasisPosition returns the basis position of key.
// Errors: ErrNotFinalized, ErrNotFound.
// Complexity: O(log N) key comparisons.
func (s *Store) BasisPosition(key index.Index) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.finalized {
		return 0, modelErrorf(opBasisPos, ErrNotFinalized)
	}
	i, ok := index.Search(s.keys, key)
	if !ok {
		return 0, modelErrorf(opBasisPos, fmt.Errorf("%s: %w", key, ErrNotFound))
	}

	return s.keyPos[i], nil
}

// BasisIndex returns the key at basis position pos.
func (s *Store) BasisIndex(pos int) (index.Index, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkPos(pos); err != nil {
		return index.Index{}, modelErrorf(opBasisIndex, err)
	}

	return s.basis[pos], nil
}

// BlockOf returns the block number owning basis position pos.
func (s *Store) BlockOf(pos int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkPos(pos); err != nil {
		return 0, modelErrorf(opBlockOf, err)
	}

	return s.posBlock[pos], nil
}

// BlockOfKey returns the block selected by blockKey: the block holding the
// smallest basis key that starts with blockKey (or equals it).
// Errors: ErrNotFinalized, ErrNotFound.
func (s *Store) BlockOfKey(blockKey index.Index) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, err := s.blockOfKeyLocked(blockKey)
	if err != nil {
		return 0, modelErrorf(opBlockOfKey, err)
	}

	return b, nil
}

// FirstPositionInBlock returns the first basis position of the block selected by blockKey.
func (s *Store) FirstPositionInBlock(blockKey index.Index) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, err := s.blockOfKeyLocked(blockKey)
	if err != nil {
		return 0, modelErrorf(opFirstInBlk, err)
	}

	return s.blocks[b].First, nil
}

// blockOfKeyLocked resolves a block key; caller holds s.mu.
// Keys starting with blockKey are contiguous in key order and the first of
// them is the lower bound of blockKey itself.
func (s *Store) blockOfKeyLocked(blockKey index.Index) (int, error) {
	if !s.finalized {
		return 0, ErrNotFinalized
	}
	i, _ := index.Search(s.keys, blockKey)
	if i >= len(s.keys) || !s.keys[i].HasPrefix(blockKey) {
		return 0, fmt.Errorf("no basis index starts with %s: %w", blockKey, ErrNotFound)
	}

	return s.posBlock[s.keyPos[i]], nil
}

// EntriesTouching yields the amplitudes whose destination or origin is basis
// position pos, each once. The sequence is empty for an unknown position or
// an unfinalized Store, and can be iterated any number of times.
func (s *Store) EntriesTouching(pos int) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		s.mu.RLock()
		if s.checkPos(pos) != nil {
			s.mu.RUnlock()
			return
		}
		ids := s.touchIDs[s.touchOff[pos]:s.touchOff[pos+1]]
		amps, eps := s.amplitudes, s.endpoints
		s.mu.RUnlock()

		for _, id := range ids {
			e := Entry{Amplitude: amps[id], To: eps[id][0], From: eps[id][1]}
			if !yield(e) {
				return
			}
		}
	}
}

// checkPos validates a basis position; caller holds s.mu.
func (s *Store) checkPos(pos int) error {
	if !s.finalized {
		return ErrNotFinalized
	}
	if pos < 0 || pos >= len(s.basis) {
		return fmt.Errorf("position %d not in [0,%d): %w", pos, len(s.basis), ErrOutOfRange)
	}

	return nil
}
