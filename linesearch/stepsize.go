package linesearch

import (
	"fmt"
	"math"

	"github.com/HaoZeke/xtsci-optimize/objective"
)

// StepSize produces the next trial α given a bracket and (F, state). Every
// analytic sub-strategy validates its result against [low, hi] and against
// NaN/∞; any violation falls back to the bisection midpoint, except
// GeometricReduction, which is unbracketed.
type StepSize interface {
	Next(as objective.AlphaState, f *objective.Func, s objective.State) (float64, error)
}

func midpoint(as objective.AlphaState) float64 {
	return 0.5 * (as.Low + as.Hi)
}

func inBracket(alpha float64, as objective.AlphaState) bool {
	return !math.IsNaN(alpha) && !math.IsInf(alpha, 0) && alpha >= as.Low && alpha <= as.Hi
}

// Bisection always returns the bracket midpoint.
type Bisection struct{}

// Next implements StepSize.
func (Bisection) Next(as objective.AlphaState, f *objective.Func, s objective.State) (float64, error) {
	return midpoint(as), nil
}

// GeometricReduction returns β·init, β ∈ (0, 1). It is unbracketed: it does
// not fall back to bisection since it has no bracket-validity requirement.
type GeometricReduction struct {
	Beta float64
}

// NewGeometricReduction defaults Beta to 0.5 when zero.
func NewGeometricReduction(beta float64) GeometricReduction {
	if beta == 0 {
		beta = 0.5
	}
	return GeometricReduction{Beta: beta}
}

// Next implements StepSize.
func (g GeometricReduction) Next(as objective.AlphaState, f *objective.Func, s objective.State) (float64, error) {
	return g.Beta * as.Init, nil
}

// goldenRatio is φ = (1+√5)/2.
const goldenRatio = 1.6180339887498949

// GoldenSection places the next trial a golden-section step away from
// whichever bracket endpoint init is closer to (low on a tie).
type GoldenSection struct{}

// Next implements StepSize.
func (GoldenSection) Next(as objective.AlphaState, f *objective.Func, s objective.State) (float64, error) {
	step := (as.Hi - as.Low) / goldenRatio
	var alpha float64
	if math.Abs(as.Init-as.Low) <= math.Abs(as.Hi-as.Init) {
		alpha = as.Low + step
	} else {
		alpha = as.Hi - step
	}
	if !inBracket(alpha, as) {
		return midpoint(as), nil
	}
	return alpha, nil
}

// GoldenSectionContracting repeatedly contracts the bracket by the golden
// ratio until it narrower than tol, returning the final midpoint.
type GoldenSectionContracting struct {
	Tol        float64
	Iterations int
}

// NewGoldenSectionContracting defaults Tol to 1e-8 and Iterations to 100
// when zero.
func NewGoldenSectionContracting(tol float64, iterations int) GoldenSectionContracting {
	if tol == 0 {
		tol = 1e-8
	}
	if iterations == 0 {
		iterations = 100
	}
	return GoldenSectionContracting{Tol: tol, Iterations: iterations}
}

// Next implements StepSize.
func (g GoldenSectionContracting) Next(as objective.AlphaState, f *objective.Func, s objective.State) (float64, error) {
	lo, hi := as.Low, as.Hi
	for i := 0; i < g.Iterations && hi-lo >= g.Tol; i++ {
		step := (hi - lo) / goldenRatio
		c, d := hi-step, lo+step
		if phi(f, s, c) < phi(f, s, d) {
			hi = d
		} else {
			lo = c
		}
	}
	return 0.5 * (lo + hi), nil
}

// QuadraticInterpolation fits a parabola through (low, φ(low)), (init,
// φ(init)), (hi, φ(hi)) and returns its vertex.
type QuadraticInterpolation struct{}

// Next implements StepSize.
func (QuadraticInterpolation) Next(as objective.AlphaState, f *objective.Func, s objective.State) (float64, error) {
	a, b, c := as.Low, as.Init, as.Hi
	fa, fb, fc := phi(f, s, a), phi(f, s, b), phi(f, s, c)

	num := (b-a)*(b-a)*(fb-fc) - (b-c)*(b-c)*(fb-fa)
	den := (b-a)*(fb-fc) - (b-c)*(fb-fa)
	if math.Abs(den) < 1e-10 {
		return midpoint(as), nil
	}
	alpha := b - 0.5*num/den
	if !inBracket(alpha, as) {
		return midpoint(as), nil
	}
	return alpha, nil
}

// CubicInterpolation fits a cubic through (low, φ(low), φ'(low)) and (hi,
// φ(hi), φ'(hi)).
type CubicInterpolation struct{}

// Next implements StepSize.
func (CubicInterpolation) Next(as objective.AlphaState, f *objective.Func, s objective.State) (float64, error) {
	if !f.HasGradient() {
		return 0, missingGradient("CubicInterpolation")
	}
	lo, hi := as.Low, as.Hi
	flo, fhi := phi(f, s, lo), phi(f, s, hi)
	dflo, err := phiPrime(f, s, lo)
	if err != nil {
		return 0, err
	}
	dfhi, err := phiPrime(f, s, hi)
	if err != nil {
		return 0, err
	}

	z := 3*(flo-fhi)/(hi-lo) + dflo + dfhi
	w := math.Sqrt(math.Max(0, z*z-dflo*dfhi))
	denom := dfhi - dflo + 2*w
	if math.Abs(denom) < 1e-10 {
		return midpoint(as), nil
	}
	m := (dfhi + w - z) / denom
	alpha := hi - m*(hi-lo)
	if !inBracket(alpha, as) {
		return midpoint(as), nil
	}
	return alpha, nil
}

// CubicHermite fits a two-point Hermite cubic and returns a root of its
// derivative quadratic that lies in [low, hi] with positive second
// derivative.
type CubicHermite struct{}

// Next implements StepSize.
func (CubicHermite) Next(as objective.AlphaState, f *objective.Func, s objective.State) (float64, error) {
	if !f.HasGradient() {
		return 0, missingGradient("CubicHermite")
	}
	lo, hi := as.Low, as.Hi
	flo, fhi := phi(f, s, lo), phi(f, s, hi)
	dflo, err := phiPrime(f, s, lo)
	if err != nil {
		return 0, err
	}
	dfhi, err := phiPrime(f, s, hi)
	if err != nil {
		return 0, err
	}

	h := hi - lo
	// Hermite cubic p(t) on t ∈ [0,1], t = (α-lo)/h:
	//   p(t) = flo + dflo*h*t + c2*t^2 + c3*t^3
	// with c2, c3 fit to match fhi, dfhi at t=1.
	c2 := 3*(fhi-flo) - h*(2*dflo+dfhi)
	c3 := -2*(fhi-flo) + h*(dflo+dfhi)

	// p'(t) = dflo*h + 2*c2*t + 3*c3*t^2 = 0
	a, b, c := 3*c3, 2*c2, dflo*h
	var best float64
	found := false
	for _, t := range quadraticRoots(a, b, c) {
		if t < 0 || t > 1 {
			continue
		}
		// second derivative p''(t) = 2*c2 + 6*c3*t must be positive for a
		// minimum.
		if 2*c2+6*c3*t <= 0 {
			continue
		}
		alpha := lo + t*h
		if !found || alpha < best {
			best, found = alpha, true
		}
	}
	if !found || !inBracket(best, as) {
		return midpoint(as), nil
	}
	return best, nil
}

func quadraticRoots(a, b, c float64) []float64 {
	if math.Abs(a) < 1e-14 {
		if math.Abs(b) < 1e-14 {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

// Secant performs the classic secant method on φ'.
type Secant struct{}

// Next implements StepSize.
func (Secant) Next(as objective.AlphaState, f *objective.Func, s objective.State) (float64, error) {
	if !f.HasGradient() {
		return 0, missingGradient("Secant")
	}
	lo, hi := as.Low, as.Hi
	dflo, err := phiPrime(f, s, lo)
	if err != nil {
		return 0, err
	}
	dfhi, err := phiPrime(f, s, hi)
	if err != nil {
		return 0, err
	}
	denom := dfhi - dflo
	if math.Abs(denom) < 1e-10 {
		return midpoint(as), nil
	}
	alpha := hi - dfhi*(hi-lo)/denom
	if !inBracket(alpha, as) {
		return midpoint(as), nil
	}
	return alpha, nil
}

func missingGradient(where string) error {
	return fmt.Errorf("%s: %w", where, objective.ErrMissingGradient)
}
