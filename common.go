package optimize

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/HaoZeke/xtsci-optimize/linesearch"
	"github.com/HaoZeke/xtsci-optimize/objective"
)

// clipStep scales alpha down so that ‖alpha·d‖ ≤ maxmove, scaling down
// proportionally when the move would exceed the configured cap.
// maxmove ≤ 0 disables the cap.
func clipStep(alpha float64, d []float64, maxmove float64) float64 {
	if maxmove <= 0 {
		return alpha
	}
	move := math.Abs(alpha) * floats.Norm(d, 2)
	if move <= maxmove {
		return alpha
	}
	return alpha * maxmove / move
}

// applyStep sets x ← x + alpha*d.
func applyStep(x []float64, alpha float64, d []float64) {
	floats.AddScaled(x, alpha, d)
}

// converged implements the outer-convergence predicate: ‖g‖∞ < gtol is the
// primary test and applies from the first iteration; ‖d‖∞ < gtol is a
// secondary test, guarded to iter ≥ 2 since d = -g at iter 0 would just
// double-count the gradient test.
func converged(iter int, g, d []float64, gtol float64) bool {
	if floats.Norm(g, math.Inf(1)) < gtol {
		return true
	}
	if iter < 2 {
		return false
	}
	return floats.Norm(d, math.Inf(1)) < gtol
}

// driverLoop is the shared outer-iteration skeleton: pick a direction (via
// nextDir, which mutates state.D in place), line-search for α, clip to
// maxmove, update x, recompute gradient, test gtol.
type driverLoop struct {
	tag     string
	search  linesearch.Strategy
	nextDir func(iter int, s *objective.State, g, gprev []float64) error
	alphaOf func(iter int) objective.AlphaState
}

func (dl driverLoop) run(f *objective.Func, init objective.State, ctrl objective.Control) (objective.Result, error) {
	var result objective.Result
	s := init.Clone()
	g := f.Gradient(nil, s.X)
	gprev := make([]float64, len(g))

	if ctrl.Verbose && ctrl.Logger != nil {
		ctrl.Logger.LogHeader()
	}

	for iter := 0; ; iter++ {
		if ctrl.Cancelled() {
			result.Status = objective.StatusMaxIterations
			result.Message = "cancelled"
			break
		}
		if err := dl.nextDir(iter, &s, g, gprev); err != nil {
			result.Status = objective.StatusFailed
			result.Message = err.Error()
			result.Finalize(f)
			return result, err
		}

		alphaBracket := dl.alphaOf(iter)
		alpha, err := dl.search.Search(f, s, alphaBracket, ctrl)
		if err != nil {
			result.Status = objective.StatusFailed
			result.Message = err.Error()
			result.Finalize(f)
			return result, err
		}
		if alpha == 0 || math.IsNaN(alpha) || math.IsInf(alpha, 0) {
			result.Status = objective.StatusLineSearchFailed
			result.Message = "line search returned a non-positive or non-finite step"
			result.X = s.X
			result.Fun = f.Value(s.X)
			result.Finalize(f)
			return result, objective.ErrLineSearchFailed
		}
		alpha = clipStep(alpha, s.D, ctrl.MaxMove)
		applyStep(s.X, alpha, s.D)

		copy(gprev, g)
		g = f.Gradient(g, s.X)

		energy := f.Value(s.X)
		if ctrl.Verbose && ctrl.Logger != nil {
			ctrl.Logger.LogIteration(dl.tag, iter, energy, floats.Norm(g, math.Inf(1)))
		}

		if converged(iter, g, s.D, ctrl.Gtol) {
			result.Status = objective.StatusConverged
			result.Message = "converged"
			result.Success = true
			result.X = s.X
			result.Fun = energy
			result.Jac = append([]float64(nil), g...)
			result.Nit = iter + 1
			result.Finalize(f)
			return result, nil
		}
		if iter+1 >= ctrl.MaxIterations {
			result.Status = objective.StatusMaxIterations
			result.Message = "maximum iterations reached"
			result.X = s.X
			result.Fun = energy
			result.Jac = append([]float64(nil), g...)
			result.Nit = iter + 1
			result.Finalize(f)
			return result, nil
		}
	}
	result.Finalize(f)
	return result, nil
}
