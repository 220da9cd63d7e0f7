// Package trial provides the standard two-dimensional test objectives of
// the optimization literature, used by the driver tests and by
// cmd/optimize-demo.
package trial

import (
	"math"

	"github.com/HaoZeke/xtsci-optimize/objective"
)

// Quadratic returns x·x, with gradient 2x and Hessian 2I. Every driver has
// a closed-form minimizer here, which makes it useful for exercising
// directional-derivative and line-search-idempotence behavior in isolation.
func Quadratic() *objective.Func {
	value := func(x []float64) float64 {
		var s float64
		for _, xi := range x {
			s += xi * xi
		}
		return s
	}
	grad := func(dst, x []float64) []float64 {
		if dst == nil {
			dst = make([]float64, len(x))
		}
		for i, xi := range x {
			dst[i] = 2 * xi
		}
		return dst
	}
	hess := func(x []float64) *objective.Matrix {
		n := len(x)
		h := objective.NewMatrix(n, n)
		for i := 0; i < n; i++ {
			h.Set(i, i, 2)
		}
		return h
	}
	return objective.NewFunc(value, grad, hess)
}

// Rosenbrock returns the banana-valley function f(x,y) = (1-x)² +
// 100(y-x²)², global minimum f(1,1) = 0.
func Rosenbrock() *objective.Func {
	value := func(p []float64) float64 {
		x, y := p[0], p[1]
		return (1-x)*(1-x) + 100*(y-x*x)*(y-x*x)
	}
	grad := func(dst, p []float64) []float64 {
		if dst == nil {
			dst = make([]float64, 2)
		}
		x, y := p[0], p[1]
		dst[0] = -2*(1-x) - 400*x*(y-x*x)
		dst[1] = 200 * (y - x*x)
		return dst
	}
	hess := func(p []float64) *objective.Matrix {
		x, y := p[0], p[1]
		h := objective.NewMatrix(2, 2)
		h.Set(0, 0, 2-400*y+1200*x*x)
		h.Set(0, 1, -400*x)
		h.Set(1, 0, -400*x)
		h.Set(1, 1, 200)
		return h
	}
	return objective.NewFunc(value, grad, hess)
}

// Himmelblau returns f(x,y) = (x²+y-11)² + (x+y²-7)², with four global
// minima.
func Himmelblau() *objective.Func {
	value := func(p []float64) float64 {
		x, y := p[0], p[1]
		a := x*x + y - 11
		b := x + y*y - 7
		return a*a + b*b
	}
	grad := func(dst, p []float64) []float64 {
		if dst == nil {
			dst = make([]float64, 2)
		}
		x, y := p[0], p[1]
		dst[0] = 4*x*(x*x+y-11) + 2*(x+y*y-7)
		dst[1] = 2*(x*x+y-11) + 4*y*(x+y*y-7)
		return dst
	}
	hess := func(p []float64) *objective.Matrix {
		x, y := p[0], p[1]
		h := objective.NewMatrix(2, 2)
		h.Set(0, 0, 4*(3*x*x+y-11)+2)
		h.Set(0, 1, 4*x+4*y)
		h.Set(1, 0, 4*x+4*y)
		h.Set(1, 1, 4*(x+3*y*y-7)+2)
		return h
	}
	return objective.NewFunc(value, grad, hess)
}

// A/a/b/c/x0/y0 coefficients of the four Gaussian terms in the potential.
var (
	mbA  = [4]float64{-200, -100, -170, 15}
	mbAA = [4]float64{-1, -1, -6.5, 0.7}
	mbB  = [4]float64{0, 0, 11, 0.6}
	mbC  = [4]float64{-10, -10, -6.5, 0.7}
	mbX0 = [4]float64{1, 0, -0.5, -1}
	mbY0 = [4]float64{0, 0.5, 1.5, 1}
)

// MullerBrown returns the Muller-Brown potential energy surface, a sum of
// four anisotropic Gaussians with three minima and two saddle points.
// Domain x∈[-1.5,1.2], y∈[-0.2,2.0].
func MullerBrown() *objective.Func {
	value := func(p []float64) float64 {
		x, y := p[0], p[1]
		var v float64
		for i := 0; i < 4; i++ {
			dx, dy := x-mbX0[i], y-mbY0[i]
			v += mbA[i] * math.Exp(mbAA[i]*dx*dx+mbB[i]*dx*dy+mbC[i]*dy*dy)
		}
		return v
	}
	grad := func(dst, p []float64) []float64 {
		if dst == nil {
			dst = make([]float64, 2)
		}
		x, y := p[0], p[1]
		var dfdx, dfdy float64
		for i := 0; i < 4; i++ {
			dx, dy := x-mbX0[i], y-mbY0[i]
			e := math.Exp(mbAA[i]*dx*dx + mbB[i]*dx*dy + mbC[i]*dy*dy)
			dfdx += mbA[i] * e * (2*mbAA[i]*dx + mbB[i]*dy)
			dfdy += mbA[i] * e * (mbB[i]*dx + 2*mbC[i]*dy)
		}
		dst[0], dst[1] = dfdx, dfdy
		return dst
	}
	hess := func(p []float64) *objective.Matrix {
		x, y := p[0], p[1]
		var d2x, d2y, d2xy float64
		for i := 0; i < 4; i++ {
			dx, dy := x-mbX0[i], y-mbY0[i]
			e := math.Exp(mbAA[i]*dx*dx + mbB[i]*dx*dy + mbC[i]*dy*dy)
			ex := 2*mbAA[i]*dx + mbB[i]*dy
			ey := mbB[i]*dx + 2*mbC[i]*dy
			d2x += mbA[i] * e * (ex*ex + 2*mbAA[i])
			d2y += mbA[i] * e * (ey*ey + 2*mbC[i])
			d2xy += mbA[i] * e * (ex*ey + mbB[i])
		}
		h := objective.NewMatrix(2, 2)
		h.Set(0, 0, d2x)
		h.Set(0, 1, d2xy)
		h.Set(1, 0, d2xy)
		h.Set(1, 1, d2y)
		return h
	}
	return objective.NewFunc(value, grad, hess)
}

// Eggholder returns the Eggholder function, a strongly multimodal surface
// on [-512,512]², global minimum f(512, 404.2319) ≈ -959.6407. Gradient is
// undefined where either |x/2+y+47| or |x-y-47| vanishes.
func Eggholder() *objective.Func {
	value := func(p []float64) float64 {
		x, y := p[0], p[1]
		return -(y+47)*math.Sin(math.Sqrt(math.Abs(x/2+(y+47)))) -
			x*math.Sin(math.Sqrt(math.Abs(x-(y+47))))
	}
	grad := func(dst, p []float64) []float64 {
		if dst == nil {
			dst = make([]float64, 2)
		}
		x, y := p[0], p[1]
		u, v := x/2+y+47, x-y-47
		s1 := math.Sqrt(math.Abs(u))
		s2 := math.Sqrt(math.Abs(v))
		su, sv := math.Copysign(1, u), math.Copysign(1, v)
		dst[0] = -(y+47)*math.Cos(s1)*su/(4*s1) - math.Sin(s2) - x*math.Cos(s2)*sv/(2*s2)
		dst[1] = -math.Sin(s1) - (y+47)*math.Cos(s1)*su/(2*s1) + x*math.Cos(s2)*sv/(2*s2)
		return dst
	}
	return objective.NewFunc(value, grad, nil)
}
