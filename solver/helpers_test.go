package solver_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/katalvlaran/tbdiag/hopping"
	"github.com/katalvlaran/tbdiag/index"
	"github.com/katalvlaran/tbdiag/model"
	"github.com/katalvlaran/tbdiag/solver"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// quietLogger discards solver logs.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newSolver finalizes s and returns an initialized solver.
func newSolver(t *testing.T, s *model.Store, opts ...solver.Option) *solver.BlockDiagonalizer {
	t.Helper()
	require.NoError(t, s.Finalize())
	bd, err := solver.New(s, append([]solver.Option{solver.WithLogger(quietLogger())}, opts...)...)
	require.NoError(t, err)
	require.NoError(t, bd.Init())

	return bd
}

// twoSiteStore: {0} and {1} coupled by a unit hopping plus its conjugate.
func twoSiteStore(t *testing.T) *model.Store {
	t.Helper()
	s := model.New()
	require.NoError(t, s.Add(hopping.New(1, index.New(0), index.New(1))))
	require.NoError(t, s.Add(hopping.New(1, index.New(1), index.New(0))))

	return s
}

// ringStore builds nBlocks independent rings keyed {block, site} with complex
// (flux-threaded) hopping + HC and block-dependent on-site energies.
func ringStore(t *testing.T, nBlocks, n int) *model.Store {
	t.Helper()
	s := model.New(model.WithKeyLength(2))
	for b := 0; b < nBlocks; b++ {
		for i := 0; i < n; i++ {
			require.NoError(t, s.Add(hopping.New(complex(0.3*float64(b)+0.1*float64(i), 0), index.New(b, i), index.New(b, i))))
			j := (i + 1) % n
			if j == i {
				continue
			}
			amp := complex(-1, 0.25*float64(b+1))
			require.NoError(t, s.AddPair(hopping.New(amp, index.New(b, j), index.New(b, i)).Plus(hopping.HC)))
		}
	}

	return s
}
