package optimize

import (
	"github.com/HaoZeke/xtsci-optimize/linesearch"
	xnlcg "github.com/HaoZeke/xtsci-optimize/nlcg"
	"github.com/HaoZeke/xtsci-optimize/objective"
)

// NLCG is the nonlinear conjugate gradient driver: direction
// d = -g + β·dprev, with β from a pluggable Coefficient and periodic resets
// from a pluggable Restart strategy.
type NLCG struct {
	Search      linesearch.Strategy
	Coefficient xnlcg.Coefficient
	Restart     xnlcg.Restart
}

// NewNLCG defaults Search to StrongWolfe+Backtracking+GeometricReduction,
// Coefficient to FletcherReeves, and Restart to NeverRestart.
func NewNLCG(search linesearch.Strategy, coef xnlcg.Coefficient, restart xnlcg.Restart) NLCG {
	if search == nil {
		cond := linesearch.NewStrongWolfe(1e-4, 0.1)
		search = linesearch.NewBacktracking(cond, linesearch.NewGeometricReduction(0.5))
	}
	if coef == nil {
		coef = xnlcg.FletcherReeves{}
	}
	if restart == nil {
		restart = xnlcg.NeverRestart{}
	}
	return NLCG{Search: search, Coefficient: coef, Restart: restart}
}

// Optimize runs NLCG from init.X until ‖g‖∞ < ctrl.Gtol or
// ctrl.MaxIterations is reached.
func (c NLCG) Optimize(f *objective.Func, x0 []float64, ctrl objective.Control) (objective.Result, error) {
	init := objective.State{X: append([]float64(nil), x0...), D: make([]float64, len(x0))}
	loop := driverLoop{
		tag:    "NLCG",
		search: c.Search,
		nextDir: func(iter int, s *objective.State, g, gprev []float64) error {
			if iter == 0 {
				for i := range g {
					s.D[i] = -g[i]
				}
				return nil
			}
			ctx := xnlcg.Context{G: g, Gprev: gprev, Dprev: append([]float64(nil), s.D...)}
			if c.Restart.ShouldRestart(ctx) {
				for i := range g {
					s.D[i] = -g[i]
				}
				return nil
			}
			beta, err := c.Coefficient.Beta(ctx)
			if err != nil {
				return err
			}
			for i := range g {
				s.D[i] = -g[i] + beta*s.D[i]
			}
			return nil
		},
		alphaOf: func(iter int) objective.AlphaState {
			return objective.AlphaState{Init: 1, Low: 1e-6, Hi: 10}
		},
	}
	return loop.run(f, init, ctrl)
}

// StepFrom takes n steps of NLCG from x0 and returns the final point.
func (c NLCG) StepFrom(f *objective.Func, x0 []float64, n int) []float64 {
	if n <= 0 {
		return append([]float64(nil), x0...)
	}
	ctrl := objective.NewControl(objective.WithMaxIterations(n), objective.WithGtol(0))
	res, _ := c.Optimize(f, x0, ctrl)
	if res.X == nil {
		return append([]float64(nil), x0...)
	}
	return res.X
}
