package optimize

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/HaoZeke/xtsci-optimize/linesearch"
	"github.com/HaoZeke/xtsci-optimize/objective"
)

// SR1 is the symmetric-rank-one quasi-Newton driver: it
// maintains a Hessian approximation B (not its inverse, unlike BFGS) and
// solves B d = -g for the direction each iteration, skipping the rank-one
// update whenever the denominator is numerically small (the standard SR1
// safeguard, since the update is not guaranteed positive-definite).
type SR1 struct {
	Search linesearch.Strategy
	// SkipTol guards the SR1 denominator: the update is skipped to avoid
	// blow-up when |(y-Bs)ᵀs| < SkipTol·‖y-Bs‖‖s‖.
	SkipTol float64
}

// NewSR1 defaults Search to Backtracking+StrongWolfe and SkipTol to 1e-8.
func NewSR1(search linesearch.Strategy, skipTol float64) SR1 {
	if search == nil {
		cond := linesearch.NewStrongWolfe(1e-4, 0.9)
		search = linesearch.NewBacktracking(cond, linesearch.NewGeometricReduction(0.5))
	}
	if skipTol <= 0 {
		skipTol = 1e-8
	}
	return SR1{Search: search, SkipTol: skipTol}
}

// Optimize runs SR1 from init.X until ‖g‖∞ < ctrl.Gtol or
// ctrl.MaxIterations is reached.
func (sr SR1) Optimize(f *objective.Func, x0 []float64, ctrl objective.Control) (objective.Result, error) {
	n := len(x0)
	b := objective.IdentityMatrix(n)
	var xPrev []float64

	init := objective.State{X: append([]float64(nil), x0...), D: make([]float64, n)}
	loop := driverLoop{
		tag:    "SR1",
		search: sr.Search,
		nextDir: func(iter int, s *objective.State, g, gprev []float64) error {
			if iter > 0 {
				sVals := make([]float64, n)
				yVals := make([]float64, n)
				for i := 0; i < n; i++ {
					sVals[i] = s.X[i] - xPrev[i]
					yVals[i] = g[i] - gprev[i]
				}
				sv := mat.NewVecDense(n, sVals)
				yv := mat.NewVecDense(n, yVals)
				updateSR1(b, sv, yv, sr.SkipTol)
			}
			xPrev = append([]float64(nil), s.X...)

			d, err := solveDirection(b, g)
			if err != nil {
				for i := range g {
					s.D[i] = -g[i]
				}
				return nil
			}
			copy(s.D, d)
			return nil
		},
		alphaOf: func(iter int) objective.AlphaState {
			return objective.AlphaState{Init: 1, Low: 0, Hi: 1e10}
		},
	}
	res, err := loop.run(f, init, ctrl)
	res.Hess = b
	return res, err
}

// updateSR1 applies B ← B + ((y-Bs)(y-Bs)ᵀ)/((y-Bs)ᵀs), skipping when the
// denominator is small relative to ‖y-Bs‖‖s‖ (Nocedal & Wright §6.2's
// safeguard against the SR1 update being unbounded).
func updateSR1(b *objective.Matrix, s, y *mat.VecDense, skipTol float64) {
	n, _ := b.Dims()
	var bs mat.VecDense
	bs.MulVec(b, s)

	diff := mat.NewVecDense(n, nil)
	diff.SubVec(y, &bs)

	denom := mat.Dot(diff, s)
	if math.Abs(denom) < skipTol*diff.Norm(2)*s.Norm(2) {
		return
	}

	var outer mat.Dense
	outer.Outer(1/denom, diff, diff)
	b.Add(b, &outer)
}

// solveDirection solves B d = -g with mat.VecDense.SolveVec (an LU solve,
// so B need not be positive-definite) and returns the solver's error, if
// any, to the caller.
func solveDirection(b *objective.Matrix, g []float64) ([]float64, error) {
	n := len(g)
	neg := make([]float64, n)
	for i := range g {
		neg[i] = -g[i]
	}
	rhs := mat.NewVecDense(n, neg)

	var d mat.VecDense
	if err := d.SolveVec(b, rhs); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = d.AtVec(i)
	}
	return out, nil
}

// StepFrom takes n steps of SR1 from x0 and returns the final point.
func (sr SR1) StepFrom(f *objective.Func, x0 []float64, n int) []float64 {
	if n <= 0 {
		return append([]float64(nil), x0...)
	}
	ctrl := objective.NewControl(objective.WithMaxIterations(n), objective.WithGtol(0))
	res, _ := sr.Optimize(f, x0, ctrl)
	if res.X == nil {
		return append([]float64(nil), x0...)
	}
	return res.X
}
