// Package model implements Store, the sparse index-addressed Hamiltonian of a
// tight-binding model, together with its basis and block structure.
//
// Lifecycle
//
//  1. Add / AddPair hopping.Amplitude entries (duplicates are allowed and add up).
//  2. Finalize: fix the basis and discover the blocks.
//  3. Read: BasisPosition, BlockOf, FirstPositionInBlock, EntriesTouching, ...
//
// Finalize
//
//   - Every distinct key used as an endpoint becomes a basis state.
//   - A union-find pass over the declared entries merges every pair of keys
//     joined by an entry; each resulting component is one block. No entry can
//     couple two different blocks.
//   - Blocks are ordered by their smallest key and keys inside a block by key
//     order; positions 0..N-1 are handed out in that order so every block owns
//     a contiguous range. When the block structure follows key prefixes (the
//     usual {block, site, spin} layout) this is plain key order.
//
// After Finalize the Store is read-only and safe for concurrent readers.
//
// Errors:
//
//	ErrConstruction  - malformed entry (empty key, wrong key length).
//	ErrFinalized     - Add after Finalize.
//	ErrNotFinalized  - lookup before Finalize.
//	ErrNotFound      - key never declared.
//	ErrOutOfRange    - basis position or block number out of range.
package model
