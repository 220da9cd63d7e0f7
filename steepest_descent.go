package optimize

import (
	"github.com/HaoZeke/xtsci-optimize/linesearch"
	"github.com/HaoZeke/xtsci-optimize/objective"
)

// SteepestDescent is the simplest minimizer driver: the search direction
// is always the negative gradient (steepest descent has no state carried
// between iterations).
type SteepestDescent struct {
	Search linesearch.Strategy
}

// NewSteepestDescent defaults Search to a Backtracking/Armijo strategy when
// nil, the cheapest strategy that still guarantees descent.
func NewSteepestDescent(search linesearch.Strategy) SteepestDescent {
	if search == nil {
		search = linesearch.NewBacktracking(linesearch.NewArmijo(0), nil)
	}
	return SteepestDescent{Search: search}
}

// Optimize runs steepest descent from init.X until ‖g‖∞ < ctrl.Gtol or
// ctrl.MaxIterations is reached.
func (sd SteepestDescent) Optimize(f *objective.Func, x0 []float64, ctrl objective.Control) (objective.Result, error) {
	init := objective.State{X: append([]float64(nil), x0...), D: make([]float64, len(x0))}
	loop := driverLoop{
		tag:    "SD",
		search: sd.Search,
		nextDir: func(iter int, s *objective.State, g, gprev []float64) error {
			for i := range g {
				s.D[i] = -g[i]
			}
			return nil
		},
		alphaOf: func(iter int) objective.AlphaState {
			return objective.AlphaState{Init: 1, Low: 0, Hi: 1e10}
		},
	}
	return loop.run(f, init, ctrl)
}

// StepFrom takes n steps of steepest descent from x0 and returns the final
// point, without computing a full Result — a step-from variant used for
// interactive/exploratory stepping.
func (sd SteepestDescent) StepFrom(f *objective.Func, x0 []float64, n int) []float64 {
	if n <= 0 {
		return append([]float64(nil), x0...)
	}
	ctrl := objective.NewControl(objective.WithMaxIterations(n), objective.WithGtol(0))
	res, _ := sd.Optimize(f, x0, ctrl)
	if res.X == nil {
		return append([]float64(nil), x0...)
	}
	return res.X
}
