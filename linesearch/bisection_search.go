package linesearch

import "github.com/HaoZeke/xtsci-optimize/objective"

// BisectionSearch is the pure-bisection search strategy: it repeatedly
// halves [alphaMin, alphaMax], moving the lower bound up when Condition
// accepts the midpoint and the upper bound down otherwise.
//
// AlphaMin/AlphaMax are immutable constructor parameters; Search always
// starts from a fresh local (lo, hi) pair, so repeated calls are
// idempotent.
type BisectionSearch struct {
	Condition Condition
	AlphaMin  float64
	AlphaMax  float64
}

// NewBisectionSearch builds a BisectionSearch over [alphaMin, alphaMax].
func NewBisectionSearch(cond Condition, alphaMin, alphaMax float64) BisectionSearch {
	return BisectionSearch{Condition: cond, AlphaMin: alphaMin, AlphaMax: alphaMax}
}

// Search implements Strategy. The init bracket's Init field is ignored;
// AlphaMin/AlphaMax drive this strategy instead.
func (b BisectionSearch) Search(f *objective.Func, s objective.State, init objective.AlphaState, ctrl objective.Control) (float64, error) {
	lo, hi := b.AlphaMin, b.AlphaMax
	tol := ctrl.Xtol
	if tol == 0 {
		tol = 1e-10
	}
	maxIter := ctrl.MaxIterations
	if maxIter == 0 {
		maxIter = 200
	}

	alpha := 0.5 * (lo + hi)
	for iter := 0; hi-lo > tol && iter < maxIter; iter++ {
		alpha = 0.5 * (lo + hi)
		ok, err := b.Condition.Accept(alpha, f, s)
		if err != nil {
			return 0, err
		}
		if ok {
			lo = alpha
		} else {
			hi = alpha
		}
		if alpha == b.AlphaMin || alpha == b.AlphaMax {
			break
		}
	}
	return alpha, nil
}
