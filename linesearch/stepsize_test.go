package linesearch_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HaoZeke/xtsci-optimize/linesearch"
	"github.com/HaoZeke/xtsci-optimize/objective"
)

func TestBisectionStepMidpoint(t *testing.T) {
	f := quadratic()
	s := objective.State{X: []float64{1, 1}, D: []float64{-1, -1}}
	var step linesearch.Bisection
	alpha, err := step.Next(objective.AlphaState{Init: 0.5, Low: 0, Hi: 1}, f, s)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, alpha, 1e-12)
}

func TestGeometricReductionUnbracketed(t *testing.T) {
	f := quadratic()
	s := objective.State{X: []float64{1, 1}, D: []float64{-1, -1}}
	step := linesearch.NewGeometricReduction(0.5)
	alpha, err := step.Next(objective.AlphaState{Init: 1.0}, f, s)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, alpha, 1e-12)
}

func TestGoldenSectionWithinBracket(t *testing.T) {
	f := quadratic()
	s := objective.State{X: []float64{1, 1}, D: []float64{-1, -1}}
	var step linesearch.GoldenSection
	alpha, err := step.Next(objective.AlphaState{Init: 0.2, Low: 0, Hi: 1}, f, s)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, alpha, 0.0)
	assert.LessOrEqual(t, alpha, 1.0)
}

func TestQuadraticInterpolationFallsBackOnDegenerateDenominator(t *testing.T) {
	// Three collinear (equal-value) points make the interpolation
	// denominator vanish, so the step must fall back to the midpoint.
	f := objective.NewFunc(func(x []float64) float64 { return 5 }, nil, nil)
	s := objective.State{X: []float64{0}, D: []float64{1}}
	var step linesearch.QuadraticInterpolation
	alpha, err := step.Next(objective.AlphaState{Init: 0.5, Low: 0, Hi: 1}, f, s)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, alpha, 1e-12)
}

func TestStepSizeNeverReturnsNaNOrInf(t *testing.T) {
	f := quadratic()
	s := objective.State{X: []float64{1, 1}, D: []float64{-1, -1}}
	strategies := []linesearch.StepSize{
		linesearch.Bisection{},
		linesearch.NewGeometricReduction(0.5),
		linesearch.GoldenSection{},
		linesearch.QuadraticInterpolation{},
		linesearch.CubicInterpolation{},
		linesearch.CubicHermite{},
		linesearch.Secant{},
	}
	as := objective.AlphaState{Init: 0.3, Low: 0, Hi: 1}
	for _, strat := range strategies {
		alpha, err := strat.Next(as, f, s)
		require.NoError(t, err)
		assert.False(t, math.IsNaN(alpha), "%T returned NaN", strat)
		assert.False(t, math.IsInf(alpha, 0), "%T returned Inf", strat)
	}
}

func TestDerivativeStepsRequireGradient(t *testing.T) {
	f := objective.NewFunc(func(x []float64) float64 { return x[0] * x[0] }, nil, nil)
	s := objective.State{X: []float64{1}, D: []float64{-1}}
	as := objective.AlphaState{Init: 0.3, Low: 0, Hi: 1}
	for _, strat := range []linesearch.StepSize{
		linesearch.CubicInterpolation{},
		linesearch.CubicHermite{},
		linesearch.Secant{},
	} {
		_, err := strat.Next(as, f, s)
		require.ErrorIs(t, err, objective.ErrMissingGradient)
	}
}
