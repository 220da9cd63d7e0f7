package optimize

import (
	"gonum.org/v1/gonum/mat"

	"github.com/HaoZeke/xtsci-optimize/linesearch"
	"github.com/HaoZeke/xtsci-optimize/objective"
)

// BFGS is the quasi-Newton driver: direction d = -H·g with H the running
// inverse-Hessian approximation, updated each iteration by the BFGS
// rank-two formula, with the outer loop following the same shape as the
// other drivers.
type BFGS struct {
	Search linesearch.Strategy
}

// NewBFGS defaults Search to a StrongWolfe+Zoom strategy, the line search
// BFGS's curvature condition (s^T y > 0) needs to keep H positive-definite.
func NewBFGS(search linesearch.Strategy) BFGS {
	if search == nil {
		search = linesearch.NewZoomLineSearch(nil, 1e-4, 0.9)
	}
	return BFGS{Search: search}
}

// Optimize runs BFGS from init.X until ‖g‖∞ < ctrl.Gtol or
// ctrl.MaxIterations is reached.
func (b BFGS) Optimize(f *objective.Func, x0 []float64, ctrl objective.Control) (objective.Result, error) {
	n := len(x0)
	h := objective.IdentityMatrix(n)

	init := objective.State{X: append([]float64(nil), x0...), D: make([]float64, n)}
	var xPrev []float64

	loop := driverLoop{
		tag:    "BFGS",
		search: b.Search,
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
				sy := mat.Dot(sv, yv)
				if sy > 1e-12 {
					updateBFGSInverse(h, sv, yv, sy)
				}
			}
			xPrev = append([]float64(nil), s.X...)

			gv := mat.NewVecDense(n, g)
			var dv mat.VecDense
			dv.MulVec(h, gv)
			for i := 0; i < n; i++ {
				s.D[i] = -dv.AtVec(i)
			}
			return nil
		},
		alphaOf: func(iter int) objective.AlphaState {
			return objective.AlphaState{Init: 1, Low: 1e-6, Hi: 1}
		},
	}
	res, err := loop.run(f, init, ctrl)
	res.HessInv = h
	return res, err
}

// StepFrom takes n steps of BFGS from x0 and returns the final point.
func (b BFGS) StepFrom(f *objective.Func, x0 []float64, n int) []float64 {
	if n <= 0 {
		return append([]float64(nil), x0...)
	}
	ctrl := objective.NewControl(objective.WithMaxIterations(n), objective.WithGtol(0))
	res, _ := b.Optimize(f, x0, ctrl)
	if res.X == nil {
		return append([]float64(nil), x0...)
	}
	return res.X
}

// updateBFGSInverse applies the rank-two inverse-Hessian update
// H ← (I - ρ s yᵀ) H (I - ρ y sᵀ) + ρ s sᵀ, ρ = 1/(yᵀs).
func updateBFGSInverse(h *objective.Matrix, s, y *mat.VecDense, sy float64) {
	n, _ := h.Dims()
	rho := 1 / sy

	var hy mat.VecDense
	hy.MulVec(h, y)

	var syOuter mat.Dense
	syOuter.Outer(1, s, &hy)
	var ysOuter mat.Dense
	ysOuter.Outer(1, &hy, s)

	yHy := mat.Dot(y, &hy)

	var ssOuter mat.Dense
	ssOuter.Outer(1, s, s)

	next := objective.NewMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := h.At(i, j) - rho*(syOuter.At(i, j)+ysOuter.At(i, j)) +
				rho*rho*yHy*ssOuter.At(i, j) + rho*ssOuter.At(i, j)
			next.Set(i, j, v)
		}
	}
	h.Copy(next)
}
