// Package linesearch implements the line-search engine: acceptance
// conditions (Armijo, Wolfe, Goldstein, ...), step-size sub-strategies
// (bisection, interpolation, ...), and the search strategies (Backtracking,
// Bisection, Zoom, Moore-Thuente) that compose them into an accepted step
// length α.
//
// Every piece is a small, value-constructible struct implementing one of
// three interfaces (Condition, StepSize, Strategy) rather than an abstract
// base class; the composition tree is assembled once, by reference, before
// Optimize runs.
package linesearch

import (
	"fmt"
	"math"

	"github.com/HaoZeke/xtsci-optimize/objective"
)

const (
	defaultC1 = 1e-4
	defaultC2 = 0.9
)

// phi evaluates φ(α) = f(x + α d).
func phi(f *objective.Func, s objective.State, alpha float64) float64 {
	x := trial(s, alpha)
	return f.Value(x)
}

// phiPrime evaluates φ'(α) = ∇f(x + α d) · d.
func phiPrime(f *objective.Func, s objective.State, alpha float64) (float64, error) {
	x := trial(s, alpha)
	return f.DirectionalDerivative(x, s.D)
}

func trial(s objective.State, alpha float64) []float64 {
	x := make([]float64, len(s.X))
	for i := range x {
		x[i] = s.X[i] + alpha*s.D[i]
	}
	return x
}

// Condition is a predicate accept(α, F, state) deciding whether a
// candidate step length should be accepted.
type Condition interface {
	Accept(alpha float64, f *objective.Func, s objective.State) (bool, error)
}

// Armijo is the sufficient-decrease condition: φ(α) ≤ φ(0) + c1·α·φ'(0).
type Armijo struct {
	C1 float64
}

// NewArmijo builds an Armijo condition, defaulting C1 to 1e-4 when zero.
func NewArmijo(c1 float64) Armijo {
	if c1 == 0 {
		c1 = defaultC1
	}
	return Armijo{C1: c1}
}

// Accept implements Condition.
func (a Armijo) Accept(alpha float64, f *objective.Func, s objective.State) (bool, error) {
	phi0 := f.Value(s.X)
	dphi0, err := phiPrime(f, s, 0)
	if err != nil {
		return false, err
	}
	return phi(f, s, alpha) <= phi0+a.C1*alpha*dphi0, nil
}

// Curvature is the weak curvature condition: φ'(α) ≥ c2·φ'(0).
type Curvature struct {
	C2 float64
}

// NewCurvature builds a Curvature condition, defaulting C2 to 0.9 when zero.
func NewCurvature(c2 float64) Curvature {
	if c2 == 0 {
		c2 = defaultC2
	}
	return Curvature{C2: c2}
}

// Accept implements Condition.
func (c Curvature) Accept(alpha float64, f *objective.Func, s objective.State) (bool, error) {
	dphiA, err := phiPrime(f, s, alpha)
	if err != nil {
		return false, err
	}
	dphi0, err := phiPrime(f, s, 0)
	if err != nil {
		return false, err
	}
	return dphiA >= c.C2*dphi0, nil
}

// StrongCurvature is the strong curvature condition: |φ'(α)| ≤ c2|φ'(0)|.
type StrongCurvature struct {
	C2 float64
}

// NewStrongCurvature builds a StrongCurvature condition, defaulting C2 to
// 0.9 when zero.
func NewStrongCurvature(c2 float64) StrongCurvature {
	if c2 == 0 {
		c2 = defaultC2
	}
	return StrongCurvature{C2: c2}
}

// Accept implements Condition.
func (c StrongCurvature) Accept(alpha float64, f *objective.Func, s objective.State) (bool, error) {
	dphiA, err := phiPrime(f, s, alpha)
	if err != nil {
		return false, err
	}
	dphi0, err := phiPrime(f, s, 0)
	if err != nil {
		return false, err
	}
	return math.Abs(dphiA) <= c.C2*math.Abs(dphi0), nil
}

// WeakWolfe is Armijo(c1) ∧ Curvature(c2).
type WeakWolfe struct {
	Armijo    Armijo
	Curvature Curvature
}

// NewWeakWolfe builds a WeakWolfe condition with the given constants.
func NewWeakWolfe(c1, c2 float64) WeakWolfe {
	return WeakWolfe{Armijo: NewArmijo(c1), Curvature: NewCurvature(c2)}
}

// Accept implements Condition.
func (w WeakWolfe) Accept(alpha float64, f *objective.Func, s objective.State) (bool, error) {
	ok, err := w.Armijo.Accept(alpha, f, s)
	if err != nil || !ok {
		return false, err
	}
	return w.Curvature.Accept(alpha, f, s)
}

// StrongWolfe is Armijo(c1) ∧ StrongCurvature(c2), always AND — a variant
// combining the two with OR contradicts the published definition and is
// not reproduced here.
type StrongWolfe struct {
	Armijo          Armijo
	StrongCurvature StrongCurvature
}

// NewStrongWolfe builds a StrongWolfe condition with the given constants.
func NewStrongWolfe(c1, c2 float64) StrongWolfe {
	return StrongWolfe{Armijo: NewArmijo(c1), StrongCurvature: NewStrongCurvature(c2)}
}

// Accept implements Condition.
func (w StrongWolfe) Accept(alpha float64, f *objective.Func, s objective.State) (bool, error) {
	ok, err := w.Armijo.Accept(alpha, f, s)
	if err != nil || !ok {
		return false, err
	}
	return w.StrongCurvature.Accept(alpha, f, s)
}

// GoldsteinUpperBound is φ(α) ≤ φ(0) + (1-c1)·α·φ'(0), requiring
// 0 < c1 < 0.5.
type GoldsteinUpperBound struct {
	C1 float64
}

// NewGoldsteinUpperBound validates 0 < c1 < 0.5 and returns
// ErrInvalidParameter otherwise.
func NewGoldsteinUpperBound(c1 float64) (GoldsteinUpperBound, error) {
	if !(c1 > 0 && c1 < 0.5) {
		return GoldsteinUpperBound{}, fmt.Errorf("GoldsteinUpperBound(c1=%v): %w", c1, objective.ErrInvalidParameter)
	}
	return GoldsteinUpperBound{C1: c1}, nil
}

// Accept implements Condition.
func (g GoldsteinUpperBound) Accept(alpha float64, f *objective.Func, s objective.State) (bool, error) {
	phi0 := f.Value(s.X)
	dphi0, err := phiPrime(f, s, 0)
	if err != nil {
		return false, err
	}
	return phi(f, s, alpha) <= phi0+(1-g.C1)*alpha*dphi0, nil
}

// Goldstein is Armijo(c1a) ∧ GoldsteinUpperBound(c1b).
type Goldstein struct {
	Lower Armijo
	Upper GoldsteinUpperBound
}

// NewGoldstein validates c1a, c1b via NewGoldsteinUpperBound (0 < c1b <
// 0.5) and returns ErrInvalidParameter otherwise.
func NewGoldstein(c1a, c1b float64) (Goldstein, error) {
	upper, err := NewGoldsteinUpperBound(c1b)
	if err != nil {
		return Goldstein{}, err
	}
	return Goldstein{Lower: NewArmijo(c1a), Upper: upper}, nil
}

// NewGoldsteinSymmetric builds a Goldstein condition with c1a = c1b = c1,
// the single-parameter convenience form: c1 = 0 or
// c1 = 0.5 fails with ErrInvalidParameter.
func NewGoldsteinSymmetric(c1 float64) (Goldstein, error) {
	return NewGoldstein(c1, c1)
}

// Accept implements Condition.
func (g Goldstein) Accept(alpha float64, f *objective.Func, s objective.State) (bool, error) {
	ok, err := g.Lower.Accept(alpha, f, s)
	if err != nil || !ok {
		return false, err
	}
	return g.Upper.Accept(alpha, f, s)
}
