package linesearch

import (
	"math"

	"github.com/HaoZeke/xtsci-optimize/objective"
)

// ZoomLineSearch is the canonical Nocedal-Wright Algorithm 3.5 two-phase
// search: phase 1 brackets an interval containing a Wolfe point, phase 2
// (zoom) refines it.
type ZoomLineSearch struct {
	Step StepSize
	C1   float64
	C2   float64
}

// NewZoomLineSearch builds a ZoomLineSearch, defaulting Step to Bisection{}
// when nil and c1/c2 to 1e-4/0.9 when zero.
func NewZoomLineSearch(step StepSize, c1, c2 float64) ZoomLineSearch {
	if step == nil {
		step = Bisection{}
	}
	if c1 == 0 {
		c1 = defaultC1
	}
	if c2 == 0 {
		c2 = defaultC2
	}
	return ZoomLineSearch{Step: step, C1: c1, C2: c2}
}

// Search implements Strategy.
func (z ZoomLineSearch) Search(f *objective.Func, s objective.State, init objective.AlphaState, ctrl objective.Control) (float64, error) {
	alphaMax := init.Hi
	if alphaMax <= 0 {
		alphaMax = 1e10
	}
	phi0 := f.Value(s.X)
	dphi0, err := phiPrime(f, s, 0)
	if err != nil {
		return 0, err
	}

	a1, aprev := init.Init, 0.0
	var ares float64
	found := false
	for idx := 0; idx < 100; idx++ {
		phiA1 := phi(f, s, a1)
		// (Armijo fails at a1 and idx > 0) or phi(a1) > phi(0) + c1*a1*phi'(0):
		// both arms reduce to the same Armijo-violation test.
		if phiA1 > phi0+z.C1*a1*dphi0 {
			ares, err = z.zoom(f, s, aprev, a1, ctrl, phi0, dphi0)
			found = true
			break
		}
		strongCurv := NewStrongCurvature(z.C2)
		ok, cerr := strongCurv.Accept(a1, f, s)
		if cerr != nil {
			return 0, cerr
		}
		if ok {
			ares, found = a1, true
			break
		}
		dphiA1, derr := phiPrime(f, s, a1)
		if derr != nil {
			return 0, derr
		}
		if dphiA1 >= 0 {
			ares, err = z.zoom(f, s, a1, aprev, ctrl, phi0, dphi0)
			found = true
			break
		}
		aprev, a1 = a1, math.Min(2*a1, alphaMax)
	}
	if err != nil {
		return 0, err
	}
	if !found || math.IsNaN(ares) || math.IsInf(ares, 0) {
		mid := 0.5 * (init.Low + init.Hi)
		ctrl.Logger.Warnf("zoom: bracket phase failed to converge, falling back to bracket midpoint %.6g", mid)
		return mid, nil
	}
	return ares, nil
}

// zoom is phase 2: refine the bracket (lo, hi) to an accepted step.
func (z ZoomLineSearch) zoom(f *objective.Func, s objective.State, lo, hi float64, ctrl objective.Control, phi0, dphi0 float64) (float64, error) {
	xtol := ctrl.Xtol
	if xtol == 0 {
		xtol = 1e-10
	}
	ftol := ctrl.Ftol
	if ftol == 0 {
		ftol = 1e-10
	}
	maxIter := ctrl.MaxIterations
	if maxIter == 0 {
		maxIter = 100
	}

	strongCurv := NewStrongCurvature(z.C2)
	aj := 0.5 * (lo + hi)
	phiPrev := math.Inf(1)
	for iter := 0; iter < maxIter; iter++ {
		next, err := z.Step.Next(objective.AlphaState{Init: aj, Low: lo, Hi: hi}, f, s)
		if err != nil {
			return 0, err
		}
		aj = next
		phiAj := phi(f, s, aj)

		if iter > 0 && (math.Abs(phiAj-phiPrev) < ftol || math.Abs(hi-lo) < xtol) {
			return aj, nil
		}

		armijoFails := phiAj > phi0+z.C1*aj*dphi0
		if armijoFails || phiAj >= phi(f, s, lo) {
			hi = aj
		} else {
			ok, cerr := strongCurv.Accept(aj, f, s)
			if cerr != nil {
				return 0, cerr
			}
			if ok {
				return aj, nil
			}
			dphiAj, derr := phiPrime(f, s, aj)
			if derr != nil {
				return 0, derr
			}
			if dphiAj*(hi-lo) >= 0 {
				hi = lo
			}
			lo = aj
		}
		phiPrev = phiAj
	}
	return z.Step.Next(objective.AlphaState{Init: aj, Low: lo, Hi: hi}, f, s)
}
