package optimize

import (
	"math"

	"github.com/HaoZeke/xtsci-optimize/objective"
)

// Adam is the stochastic-gradient-style driver: it needs no
// line search, instead taking a fixed (bias-corrected, per-coordinate
// adaptive) step each iteration from running first/second moment estimates
// of the gradient, per Kingma & Ba 2014.
type Adam struct {
	LearningRate float64
	Beta1        float64
	Beta2        float64
	Epsilon      float64
}

// NewAdam returns the Kingma & Ba defaults: lr=0.001, β1=0.9, β2=0.999,
// ε=1e-8.
func NewAdam() Adam {
	return Adam{LearningRate: 0.001, Beta1: 0.9, Beta2: 0.999, Epsilon: 1e-8}
}

// Optimize runs Adam from x0 until ‖g‖∞ < ctrl.Gtol or ctrl.MaxIterations
// is reached. Unlike the other drivers, Adam never calls a line search: its
// per-coordinate step is entirely determined by the moment estimates, so it
// bypasses driverLoop's line-search-driven outer step.
func (a Adam) Optimize(f *objective.Func, x0 []float64, ctrl objective.Control) (objective.Result, error) {
	n := len(x0)
	x := append([]float64(nil), x0...)
	m := make([]float64, n)
	v := make([]float64, n)

	var result objective.Result
	g := f.Gradient(nil, x)

	if ctrl.Verbose && ctrl.Logger != nil {
		ctrl.Logger.LogHeader()
	}

	for iter := 0; ; iter++ {
		if ctrl.Cancelled() {
			result.Status = objective.StatusMaxIterations
			result.Message = "cancelled"
			break
		}
		t := float64(iter + 1)
		for i := 0; i < n; i++ {
			m[i] = a.Beta1*m[i] + (1-a.Beta1)*g[i]
			v[i] = a.Beta2*v[i] + (1-a.Beta2)*g[i]*g[i]
			mHat := m[i] / (1 - math.Pow(a.Beta1, t))
			vHat := v[i] / (1 - math.Pow(a.Beta2, t))
			step := a.LearningRate * mHat / (math.Sqrt(vHat) + a.Epsilon)
			if ctrl.MaxMove > 0 && math.Abs(step) > ctrl.MaxMove {
				step = math.Copysign(ctrl.MaxMove, step)
			}
			x[i] -= step
		}
		g = f.Gradient(g, x)
		energy := f.Value(x)

		if ctrl.Verbose && ctrl.Logger != nil {
			ctrl.Logger.LogIteration("Adam", iter, energy, maxAbs(g))
		}

		if iter >= 1 && maxAbs(g) < ctrl.Gtol {
			result.Status = objective.StatusConverged
			result.Success = true
			result.Message = "converged"
			result.X = x
			result.Fun = energy
			result.Jac = append([]float64(nil), g...)
			result.Nit = iter + 1
			result.Finalize(f)
			return result, nil
		}
		if iter+1 >= ctrl.MaxIterations {
			result.Status = objective.StatusMaxIterations
			result.Message = "maximum iterations reached"
			result.X = x
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

func maxAbs(g []float64) float64 {
	var m float64
	for _, gi := range g {
		if math.Abs(gi) > m {
			m = math.Abs(gi)
		}
	}
	return m
}

// StepFrom takes n Adam steps from x0 and returns the final point.
func (a Adam) StepFrom(f *objective.Func, x0 []float64, n int) []float64 {
	if n <= 0 {
		return append([]float64(nil), x0...)
	}
	ctrl := objective.NewControl(objective.WithMaxIterations(n), objective.WithGtol(0))
	res, _ := a.Optimize(f, x0, ctrl)
	if res.X == nil {
		return append([]float64(nil), x0...)
	}
	return res.X
}
