package property_test

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/tbdiag/hopping"
	"github.com/katalvlaran/tbdiag/index"
	"github.com/katalvlaran/tbdiag/model"
	"github.com/katalvlaran/tbdiag/property"
	"github.com/katalvlaran/tbdiag/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// twoSite returns an initialized solver for {0} <-> {1} with unit hopping.
func twoSite(t *testing.T) *solver.BlockDiagonalizer {
	t.Helper()
	s := model.New()
	require.NoError(t, s.AddPair(hopping.New(1, index.New(1), index.New(0)).Plus(hopping.HC)))
	require.NoError(t, s.Finalize())
	bd, err := solver.New(s, solver.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)
	require.NoError(t, bd.Init())

	return bd
}

func TestNewExtractor_Nil(t *testing.T) {
	_, err := property.NewExtractor(nil)
	assert.ErrorIs(t, err, property.ErrNilSpectrum)
}

func TestExtractor_BeforeRun(t *testing.T) {
	pe, err := property.NewExtractor(twoSite(t))
	require.NoError(t, err)

	_, err = pe.EigenValues()
	assert.ErrorIs(t, err, solver.ErrNotSolved)
	_, err = pe.ExpectationValue(index.New(0), index.New(0), 0)
	assert.ErrorIs(t, err, solver.ErrNotSolved)
	_, err = pe.ParticleCount(0)
	assert.ErrorIs(t, err, solver.ErrNotSolved)
}

func TestExtractor_EigenValues(t *testing.T) {
	bd := twoSite(t)
	require.NoError(t, bd.Run())
	pe, err := property.NewExtractor(bd)
	require.NoError(t, err)

	ev, err := pe.EigenValues()
	require.NoError(t, err)
	assert.Equal(t, 2, ev.Size())
	assert.InDelta(t, -1, ev.At(0), tol)
	assert.InDelta(t, 1, ev.At(1), tol)
	assert.Equal(t, 1, ev.CountBelow(0))

	e, err := pe.EigenValue(1)
	require.NoError(t, err)
	assert.Equal(t, ev.At(1), e)
	be, err := pe.BlockEigenValue(index.New(0), 0)
	require.NoError(t, err)
	assert.Equal(t, ev.At(0), be)

	a, err := pe.Amplitude(0, index.New(1))
	require.NoError(t, err)
	ba, err := pe.BlockAmplitude(index.New(), 0, index.New(1))
	require.NoError(t, err)
	assert.Equal(t, a, ba)
}

func TestExtractor_ExpectationValue(t *testing.T) {
	bd := twoSite(t)
	require.NoError(t, bd.Run())

	tests := []struct {
		name       string
		opts       []property.Option
		fermi      float64
		to, from   index.Index
		want       complex128
		wantFilled float64
	}{
		{"ground state density", nil, 0, index.New(0), index.New(0), 0.5, 1},
		{"ground state bond", nil, 0, index.New(0), index.New(1), -0.5, 1},
		{"empty band", nil, -5, index.New(0), index.New(1), 0, 0},
		{"full band density", nil, 5, index.New(1), index.New(1), 1, 2},
		{"full band bond", nil, 5, index.New(1), index.New(0), 0, 2},
		{
			"thermal bond", []property.Option{property.WithTemperature(1)}, 0,
			index.New(0), index.New(1),
			complex(-0.5*(fermi(-1, 1)-fermi(1, 1)), 0), 1,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pe, err := property.NewExtractor(bd, tc.opts...)
			require.NoError(t, err)
			got, err := pe.ExpectationValue(tc.to, tc.from, tc.fermi)
			require.NoError(t, err)
			assert.InDelta(t, real(tc.want), real(got), tol)
			assert.InDelta(t, imag(tc.want), imag(got), tol)

			n, err := pe.ParticleCount(tc.fermi)
			require.NoError(t, err)
			assert.InDelta(t, tc.wantFilled, n, tol)
		})
	}
}

// TestExtractor_ExpectationHermitian: ⟨c†_a c_b⟩ = conj(⟨c†_b c_a⟩) for complex hopping.
func TestExtractor_ExpectationHermitian(t *testing.T) {
	s := model.New()
	for i := 0; i < 4; i++ {
		require.NoError(t, s.AddPair(hopping.New(complex(-1, 0.4), index.New((i+1)%4), index.New(i)).Plus(hopping.HC)))
	}
	require.NoError(t, s.Finalize())
	bd, err := solver.New(s, solver.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)
	require.NoError(t, bd.Init())
	require.NoError(t, bd.Run())

	pe, err := property.NewExtractor(bd)
	require.NoError(t, err)
	ab, err := pe.ExpectationValue(index.New(0), index.New(1), 0)
	require.NoError(t, err)
	ba, err := pe.ExpectationValue(index.New(1), index.New(0), 0)
	require.NoError(t, err)
	assert.InDelta(t, real(ab), real(ba), tol)
	assert.InDelta(t, imag(ab), -imag(ba), tol)

	_, err = pe.ExpectationValue(index.New(9), index.New(0), 0)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestWithTemperature_Panics(t *testing.T) {
	assert.Panics(t, func() { property.WithTemperature(-1) })
	assert.Panics(t, func() { property.WithTemperature(math.NaN()) })
	assert.Panics(t, func() { property.WithTemperature(math.Inf(1)) })
	assert.Equal(t, property.DefaultTemperature, property.DefaultOptions().Temperature())
}

func TestEigenValues_Container(t *testing.T) {
	src := []float64{-2, 0, 3}
	ev := property.NewEigenValues(src)
	src[0] = 99
	assert.Equal(t, []float64{-2, 0, 3}, ev.Data())

	var got []float64
	for i, v := range ev.All() {
		assert.Equal(t, ev.At(i), v)
		got = append(got, v)
	}
	assert.Equal(t, ev.Data(), got)
	assert.Equal(t, 2, ev.CountBelow(0.5))
}

func fermi(e, kT float64) float64 { return 1 / (math.Exp(e/kT) + 1) }
