package linesearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HaoZeke/xtsci-optimize/linesearch"
	"github.com/HaoZeke/xtsci-optimize/objective"
)

func TestBacktrackingAcceptsSufficientDecrease(t *testing.T) {
	f := quadratic()
	s := objective.State{X: []float64{1, 1}, D: []float64{-1, -1}}
	strat := linesearch.NewBacktracking(linesearch.NewArmijo(0.1), nil)
	ctrl := objective.DefaultControl()

	alpha, err := strat.Search(f, s, objective.AlphaState{Init: 2.0}, ctrl)
	require.NoError(t, err)
	assert.Greater(t, alpha, 0.0)

	f0 := f.Value(s.X)
	x := make([]float64, len(s.X))
	for i := range x {
		x[i] = s.X[i] + alpha*s.D[i]
	}
	assert.Less(t, f.Value(x), f0)
}

func TestBisectionSearchIsIdempotent(t *testing.T) {
	f := quadratic()
	s := objective.State{X: []float64{1, 1}, D: []float64{-1, -1}}
	strat := linesearch.NewBisectionSearch(linesearch.NewArmijo(0.1), 0, 2)
	ctrl := objective.DefaultControl()

	a1, err := strat.Search(f, s, objective.AlphaState{}, ctrl)
	require.NoError(t, err)
	a2, err := strat.Search(f, s, objective.AlphaState{}, ctrl)
	require.NoError(t, err)
	assert.Equal(t, a1, a2, "repeated Search calls must be idempotent")
}

func TestZoomLineSearchAcceptsWolfePoint(t *testing.T) {
	f := quadratic()
	s := objective.State{X: []float64{1, 1}, D: []float64{-1, -1}}
	strat := linesearch.NewZoomLineSearch(linesearch.Bisection{}, 1e-4, 0.9)
	ctrl := objective.DefaultControl()

	alpha, err := strat.Search(f, s, objective.AlphaState{Init: 1.0, Low: 0, Hi: 10}, ctrl)
	require.NoError(t, err)
	assert.Greater(t, alpha, 0.0)

	f0 := f.Value(s.X)
	x := make([]float64, len(s.X))
	for i := range x {
		x[i] = s.X[i] + alpha*s.D[i]
	}
	assert.Less(t, f.Value(x), f0)
}

func TestMooreThuenteAcceptsDescentStep(t *testing.T) {
	f := quadratic()
	s := objective.State{X: []float64{1, 1}, D: []float64{-1, -1}}
	strat := linesearch.NewMooreThuenteLineSearch(linesearch.Bisection{}, 1e-4, 0.9)
	ctrl := objective.DefaultControl()

	alpha, err := strat.Search(f, s, objective.AlphaState{Init: 1.0, Low: 0, Hi: 10}, ctrl)
	require.NoError(t, err)

	f0 := f.Value(s.X)
	x := make([]float64, len(s.X))
	for i := range x {
		x[i] = s.X[i] + alpha*s.D[i]
	}
	assert.LessOrEqual(t, f.Value(x), f0)
}
