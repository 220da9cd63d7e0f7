package linesearch

import (
	"math"

	"github.com/HaoZeke/xtsci-optimize/objective"
)

// MooreThuenteLineSearch is an interval-update search: at each iteration it
// classifies the trial α by the Armijo and curvature tests and shrinks
// whichever side of [lo, hi] the classification rules out.
type MooreThuenteLineSearch struct {
	Step StepSize
	C1   float64
	C2   float64
}

// NewMooreThuenteLineSearch builds a MooreThuenteLineSearch, defaulting
// Step to Bisection{} and c1/c2 to 1e-4/0.9 when zero/nil.
func NewMooreThuenteLineSearch(step StepSize, c1, c2 float64) MooreThuenteLineSearch {
	if step == nil {
		step = Bisection{}
	}
	if c1 == 0 {
		c1 = defaultC1
	}
	if c2 == 0 {
		c2 = defaultC2
	}
	return MooreThuenteLineSearch{Step: step, C1: c1, C2: c2}
}

// Search implements Strategy.
func (m MooreThuenteLineSearch) Search(f *objective.Func, s objective.State, init objective.AlphaState, ctrl objective.Control) (float64, error) {
	lo, hi := init.Low, init.Hi
	alpha := init.Init

	tol := ctrl.Xtol
	if tol == 0 {
		tol = 1e-10
	}
	maxIter := ctrl.MaxIterations
	if maxIter == 0 {
		maxIter = 100
	}

	dphi0, err := phiPrime(f, s, 0)
	if err != nil {
		return 0, err
	}
	armijo := NewArmijo(m.C1)

	for iter := 0; iter < maxIter && hi-lo >= tol; iter++ {
		ok, aerr := armijo.Accept(alpha, f, s)
		if aerr != nil {
			return 0, aerr
		}
		dphiA, derr := phiPrime(f, s, alpha)
		if derr != nil {
			return 0, derr
		}
		switch {
		case !ok || dphiA > 0:
			hi = alpha
		case math.Abs(dphiA) <= -m.C2*dphi0:
			lo = alpha
		default:
			return alpha, nil
		}
		next, serr := m.Step.Next(objective.AlphaState{Init: alpha, Low: lo, Hi: hi}, f, s)
		if serr != nil {
			return 0, serr
		}
		alpha = next
	}
	return alpha, nil
}
