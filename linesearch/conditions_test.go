package linesearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HaoZeke/xtsci-optimize/linesearch"
	"github.com/HaoZeke/xtsci-optimize/objective"
)

// quadratic is f(x) = x·x.
func quadratic() *objective.Func {
	return objective.NewFunc(
		func(x []float64) float64 {
			var s float64
			for _, v := range x {
				s += v * v
			}
			return s
		},
		func(dst, x []float64) []float64 {
			if dst == nil {
				dst = make([]float64, len(x))
			}
			for i, v := range x {
				dst[i] = 2 * v
			}
			return dst
		},
		nil,
	)
}

// Armijo condition acceptance/rejection across a range of step sizes.
func TestArmijoCondition(t *testing.T) {
	f := quadratic()
	s := objective.State{X: []float64{1, 1}, D: []float64{-1, -1}}
	cond := linesearch.NewArmijo(0.1)

	for _, tc := range []struct {
		alpha float64
		want  bool
	}{
		{0.1, true},
		{1.0, true},
		{2.0, false},
	} {
		ok, err := cond.Accept(tc.alpha, f, s)
		require.NoError(t, err)
		assert.Equal(t, tc.want, ok, "alpha=%v", tc.alpha)
	}
}

// Curvature condition acceptance/rejection across a range of step sizes.
func TestCurvatureCondition(t *testing.T) {
	f := quadratic()
	s := objective.State{X: []float64{1, 1}, D: []float64{-1, -1}}
	cond := linesearch.NewCurvature(0.9)

	for _, tc := range []struct {
		alpha float64
		want  bool
	}{
		{0.5, true},
		{1.0, true},
		{0.01, false},
	} {
		ok, err := cond.Accept(tc.alpha, f, s)
		require.NoError(t, err)
		assert.Equal(t, tc.want, ok, "alpha=%v", tc.alpha)
	}
}

func TestStrongWolfeIsConjunction(t *testing.T) {
	f := quadratic()
	s := objective.State{X: []float64{1, 1}, D: []float64{-1, -1}}
	sw := linesearch.NewStrongWolfe(0.1, 0.9)

	ok, err := sw.Accept(2.0, f, s)
	require.NoError(t, err)
	assert.False(t, ok, "Armijo fails at alpha=2, so StrongWolfe must reject regardless of curvature")
}

// Goldstein constructor parameter validation.
func TestGoldsteinInvalidParameter(t *testing.T) {
	_, err := linesearch.NewGoldsteinSymmetric(0)
	require.ErrorIs(t, err, objective.ErrInvalidParameter)

	_, err = linesearch.NewGoldsteinSymmetric(0.5)
	require.ErrorIs(t, err, objective.ErrInvalidParameter)

	_, err = linesearch.NewGoldsteinSymmetric(0.25)
	require.NoError(t, err)
}
