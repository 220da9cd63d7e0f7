package objective

import (
	"fmt"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ValueFunc computes the scalar objective at x.
type ValueFunc func(x []float64) float64

// GradFunc computes the gradient of the objective at x into dst (or
// allocates and returns it if dst is nil).
type GradFunc func(dst, x []float64) []float64

// HessFunc computes the (dense, row-major) Hessian of the objective at x.
type HessFunc func(x []float64) *Matrix

// counters tallies the evaluations Func performs. It is the "minimal
// interior-mutable cell": the rest of Func stays pure value
// data, and every public call increments exactly the counters it uses.
type counters struct {
	value, grad, hess int
	uniqueXFG         map[string]struct{}
}

func newCounters() *counters {
	return &counters{uniqueXFG: make(map[string]struct{})}
}

// Func is an objective function F: a required value, an optional gradient,
// an optional Hessian, and a derived directional derivative, with
// evaluation counters.
type Func struct {
	value ValueFunc
	grad  GradFunc
	hess  HessFunc
	n     *counters
}

// NewFunc builds a Func from a value function and optional gradient/Hessian
// functions (either may be nil).
func NewFunc(value ValueFunc, grad GradFunc, hess HessFunc) *Func {
	return &Func{value: value, grad: grad, hess: hess, n: newCounters()}
}

// FuncFromValue builds a Func whose Gradient and Hessian are supplied by
// central finite differences via gonum.org/v1/gonum/diff/fd, supplementing
// the optional-gradient capability with a concrete default for
// callers that only have a scalar objective.
func FuncFromValue(value ValueFunc) *Func {
	f := &Func{value: value, n: newCounters()}
	f.grad = func(dst, x []float64) []float64 {
		if dst == nil {
			dst = make([]float64, len(x))
		}
		fd.Gradient(dst, value, x, &fd.Settings{Formula: fd.Central})
		return dst
	}
	f.hess = func(x []float64) *Matrix {
		n := len(x)
		sym := mat.NewSymDense(n, nil)
		fd.Hessian(sym, value, x, nil)
		h := NewMatrix(n, n)
		h.Copy(sym)
		return h
	}
	return f
}

// HasGradient reports whether Gradient can be called.
func (f *Func) HasGradient() bool { return f.grad != nil }

// HasHessian reports whether Hessian can be called.
func (f *Func) HasHessian() bool { return f.hess != nil }

// Value evaluates the objective at x, incrementing the value counter.
func (f *Func) Value(x []float64) float64 {
	v := f.value(x)
	f.n.value++
	f.n.markUnique(x, v)
	return v
}

// Gradient evaluates the gradient at x into dst, incrementing the gradient
// counter. Panics if HasGradient is false; callers that need a recoverable
// error should check HasGradient first (directional derivative does this).
func (f *Func) Gradient(dst, x []float64) []float64 {
	g := f.grad(dst, x)
	f.n.grad++
	return g
}

// Hessian evaluates the Hessian at x, incrementing the Hessian counter.
func (f *Func) Hessian(x []float64) *Matrix {
	h := f.hess(x)
	f.n.hess++
	return h
}

// DirectionalDerivative returns ∇f(x)·d. Returns ErrMissingGradient if the
// objective exposes no gradient.
func (f *Func) DirectionalDerivative(x, d []float64) (float64, error) {
	if !f.HasGradient() {
		return 0, fmt.Errorf("DirectionalDerivative: %w", ErrMissingGradient)
	}
	g := f.Gradient(nil, x)
	return floats.Dot(g, d), nil
}

// Counts returns the current (value, gradient, Hessian, unique) evaluation
// counts.
func (f *Func) Counts() (nfev, njev, nhev, nufg int) {
	return f.n.value, f.n.grad, f.n.hess, len(f.n.uniqueXFG)
}

func (c *counters) markUnique(x []float64, v float64) {
	key := fmt.Sprintf("%v|%v", x, v)
	c.uniqueXFG[key] = struct{}{}
}
