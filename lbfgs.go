package optimize

import (
	"gonum.org/v1/gonum/floats"

	"github.com/HaoZeke/xtsci-optimize/linesearch"
	"github.com/HaoZeke/xtsci-optimize/objective"
)

// lbfgsMemory implements the two-loop recursion with a ring buffer of the
// last m (s, y, rho) triples.
type lbfgsMemory struct {
	n, m int
	s, y [][]float64
	rho  []float64
	k    int
	size int
}

func newLBFGSMemory(n, m int) *lbfgsMemory {
	return &lbfgsMemory{n: n, m: m, s: make([][]float64, m), y: make([][]float64, m), rho: make([]float64, m)}
}

func (l *lbfgsMemory) update(s, y []float64) {
	sy := floats.Dot(s, y)
	if sy <= 0 {
		return
	}
	idx := l.k % l.m
	l.s[idx] = append([]float64(nil), s...)
	l.y[idx] = append([]float64(nil), y...)
	l.rho[idx] = 1.0 / sy
	l.k++
	if l.size < l.m {
		l.size++
	}
}

func (l *lbfgsMemory) direction(g []float64) []float64 {
	q := append([]float64(nil), g...)
	if l.size == 0 {
		for i := range q {
			q[i] = -q[i]
		}
		return q
	}

	alpha := make([]float64, l.size)
	for i := l.size - 1; i >= 0; i-- {
		idx := ((l.k-1-(l.size-1-i))%l.m + l.m) % l.m
		alpha[i] = l.rho[idx] * floats.Dot(l.s[idx], q)
		floats.AddScaled(q, -alpha[i], l.y[idx])
	}

	latestIdx := ((l.k-1)%l.m + l.m) % l.m
	yy := floats.Dot(l.y[latestIdx], l.y[latestIdx])
	if yy > 0 {
		gamma := floats.Dot(l.s[latestIdx], l.y[latestIdx]) / yy
		floats.Scale(gamma, q)
	}

	for i := 0; i < l.size; i++ {
		idx := ((l.k-l.size+i)%l.m + l.m) % l.m
		beta := l.rho[idx] * floats.Dot(l.y[idx], q)
		floats.AddScaled(q, alpha[i]-beta, l.s[idx])
	}

	for i := range q {
		q[i] = -q[i]
	}
	return q
}

// LBFGS is the limited-memory quasi-Newton driver: the
// two-loop recursion over the last Memory (s, y) pairs replaces BFGS's
// dense n×n inverse-Hessian approximation.
type LBFGS struct {
	Search linesearch.Strategy
	Memory int
}

// NewLBFGS defaults Search to StrongWolfe+Zoom and Memory to 10.
func NewLBFGS(search linesearch.Strategy, memory int) LBFGS {
	if search == nil {
		search = linesearch.NewZoomLineSearch(nil, 1e-4, 0.9)
	}
	if memory <= 0 {
		memory = 10
	}
	return LBFGS{Search: search, Memory: memory}
}

// Optimize runs L-BFGS from init.X until ‖g‖∞ < ctrl.Gtol or
// ctrl.MaxIterations is reached.
func (l LBFGS) Optimize(f *objective.Func, x0 []float64, ctrl objective.Control) (objective.Result, error) {
	n := len(x0)
	mem := newLBFGSMemory(n, l.Memory)
	var xPrev []float64

	init := objective.State{X: append([]float64(nil), x0...), D: make([]float64, n)}
	loop := driverLoop{
		tag:    "LBFGS",
		search: l.Search,
		nextDir: func(iter int, s *objective.State, g, gprev []float64) error {
			if iter > 0 {
				sVals := make([]float64, n)
				yVals := make([]float64, n)
				for i := 0; i < n; i++ {
					sVals[i] = s.X[i] - xPrev[i]
					yVals[i] = g[i] - gprev[i]
				}
				mem.update(sVals, yVals)
			}
			xPrev = append([]float64(nil), s.X...)
			copy(s.D, mem.direction(g))
			return nil
		},
		alphaOf: func(iter int) objective.AlphaState {
			return objective.AlphaState{Init: 1, Low: 1e-6, Hi: 100}
		},
	}
	return loop.run(f, init, ctrl)
}

// StepFrom takes n steps of L-BFGS from x0 and returns the final point.
func (l LBFGS) StepFrom(f *objective.Func, x0 []float64, n int) []float64 {
	if n <= 0 {
		return append([]float64(nil), x0...)
	}
	ctrl := objective.NewControl(objective.WithMaxIterations(n), objective.WithGtol(0))
	res, _ := l.Optimize(f, x0, ctrl)
	if res.X == nil {
		return append([]float64(nil), x0...)
	}
	return res.X
}
