package solver_test

import (
	"errors"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/tbdiag/index"
	"github.com/katalvlaran/tbdiag/model"
	"github.com/katalvlaran/tbdiag/serialize"
	"github.com/katalvlaran/tbdiag/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEigenValue_OnePastEnd(t *testing.T) {
	bd := newSolver(t, ringStore(t, 2, 3))
	require.NoError(t, bd.Run())
	n := bd.BasisSize()
	require.Equal(t, 6, n)

	_, err := bd.EigenValue(n)
	var be *solver.BoundsError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, solver.BoundsError{Op: "EigenValue", Index: n, Lo: 0, Hi: n}, *be)
	assert.ErrorIs(t, err, solver.ErrOutOfBounds)

	_, err = bd.EigenValue(-1)
	assert.ErrorIs(t, err, solver.ErrOutOfBounds)
	_, err = bd.Amplitude(n, index.New(0, 0))
	assert.ErrorIs(t, err, solver.ErrOutOfBounds)
}

// TestAmplitude_ZeroOutsideBlock checks every (state, key) pair across blocks.
func TestAmplitude_ZeroOutsideBlock(t *testing.T) {
	const nBlocks, n = 4, 3
	bd := newSolver(t, ringStore(t, nBlocks, n))
	require.NoError(t, bd.Run())

	for state := 0; state < bd.BasisSize(); state++ {
		first, err := bd.FirstStateInBlock(index.New(state/n, 0))
		require.NoError(t, err)
		last, err := bd.LastStateInBlock(index.New(state/n, n-1))
		require.NoError(t, err)
		require.True(t, state >= first && state <= last)

		norm := 0.0
		for b := 0; b < nBlocks; b++ {
			for i := 0; i < n; i++ {
				a, err := bd.Amplitude(state, index.New(b, i))
				require.NoError(t, err)
				if b != state/n {
					assert.Equal(t, complex128(0), a, "state %d key {%d, %d}", state, b, i)
				}
				norm += real(a * cmplx.Conj(a))
			}
		}
		assert.InDelta(t, 1, norm, tol)
	}
}

// TestAmplitude_ReconstructsHamiltonian: Σ_k E_k ψ_k ψ_kᴴ gives back the
// assembled block, which is Hermitian.
func TestAmplitude_ReconstructsHamiltonian(t *testing.T) {
	const nBlocks, n = 3, 5
	bd := newSolver(t, ringStore(t, nBlocks, n))
	require.NoError(t, bd.Run())

	for b := 0; b < nBlocks; b++ {
		block := index.New(b)
		h := make([][]complex128, n)
		for i := range h {
			h[i] = make([]complex128, n)
		}
		for k := 0; k < n; k++ {
			e, err := bd.BlockEigenValue(block, k)
			require.NoError(t, err)
			psi := make([]complex128, n)
			for i := range psi {
				psi[i], err = bd.BlockAmplitude(block, k, index.New(i))
				require.NoError(t, err)
			}
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					h[i][j] += complex(e, 0) * psi[i] * cmplx.Conj(psi[j])
				}
			}
		}

		hop := complex(-1, 0.25*float64(b+1))
		for i := 0; i < n; i++ {
			assert.InDelta(t, 0.3*float64(b)+0.1*float64(i), real(h[i][i]), tol)
			assert.InDelta(t, 0, imag(h[i][i]), tol)
			j := (i + 1) % n
			assert.InDelta(t, 0, cmplx.Abs(h[j][i]-hop), tol)
			assert.InDelta(t, 0, cmplx.Abs(h[i][j]-cmplx.Conj(hop)), tol)
		}
	}
}

func TestBlockQueries(t *testing.T) {
	bd := newSolver(t, ringStore(t, 2, 4))
	require.NoError(t, bd.Run())

	for b := 0; b < 2; b++ {
		block := index.New(b)
		first, err := bd.FirstStateInBlock(index.New(b, 2))
		require.NoError(t, err)
		assert.Equal(t, 4*b, first)
		last, err := bd.LastStateInBlock(index.New(b, 0))
		require.NoError(t, err)
		assert.Equal(t, 4*b+3, last)

		prev := -1e300
		for k := 0; k < 4; k++ {
			got, err := bd.BlockEigenValue(block, k)
			require.NoError(t, err)
			want, err := bd.EigenValue(first + k)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.GreaterOrEqual(t, got, prev)
			prev = got

			ba, err := bd.BlockAmplitude(block, k, index.New(1))
			require.NoError(t, err)
			ga, err := bd.Amplitude(first+k, index.New(b, 1))
			require.NoError(t, err)
			assert.Equal(t, ga, ba)
		}

		_, err = bd.BlockEigenValue(block, 4)
		var be *solver.BoundsError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, 4, be.Hi)
	}

	_, err := bd.BlockEigenValue(index.New(7), 0)
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = bd.Amplitude(0, index.New(9, 9))
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = bd.BlockAmplitude(index.New(0), 0, index.New(9))
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestRecords(t *testing.T) {
	bd := newSolver(t, twoSiteStore(t))
	_, err := bd.Records()
	assert.ErrorIs(t, err, solver.ErrNotSolved)

	require.NoError(t, bd.Run())
	recs, err := bd.Records()
	require.NoError(t, err)
	require.Len(t, recs, 2+4)

	assert.Equal(t, serialize.KindEigenValue, recs[0].Kind)
	assert.True(t, recs[0].Indices[0].Equal(index.New(0)))
	assert.InDelta(t, -1, real(recs[0].Value), tol)
	assert.InDelta(t, 1, real(recs[1].Value), tol)

	for _, r := range recs[2:] {
		assert.Equal(t, serialize.KindEigenVector, r.Kind)
		require.Len(t, r.Indices, 2)
		a, err := bd.Amplitude(r.Indices[0].At(0), r.Indices[1])
		require.NoError(t, err)
		assert.Equal(t, a, r.Value)
	}
}
