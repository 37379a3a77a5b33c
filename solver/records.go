// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/katalvlaran/tbdiag/index"
	"github.com/katalvlaran/tbdiag/serialize"
)

// Records exports the spectrum: one ([state], E) record per state followed by
// ([state, key], ψ_state(key)) for every key of the state's block.
// Coefficients outside a block are zero and are not emitted.
func (bd *BlockDiagonalizer) Records() ([]serialize.Record, error) {
	if err := bd.requireSolved(opRecords); err != nil {
		return nil, err
	}
	n := len(bd.eigenValues)
	keys := make([]index.Index, n)
	for pos := range keys {
		k, err := bd.model.BasisIndex(pos)
		if err != nil {
			return nil, solverErrorf(opRecords, err)
		}
		keys[pos] = k
	}

	out := make([]serialize.Record, 0, n+len(bd.eigenVectors))
	for state, e := range bd.eigenValues {
		out = append(out, serialize.Record{
			Kind:    serialize.KindEigenValue,
			Indices: []index.Index{index.New(state)},
			Value:   complex(e, 0),
		})
	}
	for state := 0; state < n; state++ {
		b := bd.stateToBlock[state]
		first, size := bd.blockFirst[b], bd.blockSizes[b]
		for pos := first; pos < first+size; pos++ {
			out = append(out, serialize.Record{
				Kind:    serialize.KindEigenVector,
				Indices: []index.Index{index.New(state), keys[pos]},
				Value:   bd.amplitudeAt(b, state-first, pos),
			})
		}
	}

	return out, nil
}
