// Package nlcg implements the nonlinear conjugate-gradient β coefficient
// formulas and restart tests used by the NLCG minimizer driver.
package nlcg

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/HaoZeke/xtsci-optimize/objective"
)

// Context is the (g, gprev, dprev) triple every β formula consumes: the new
// gradient, the previous gradient, and the previous search direction.
type Context struct {
	G     []float64
	Gprev []float64
	Dprev []float64
}

// Y returns g - gprev.
func (c Context) Y() []float64 {
	y := make([]float64, len(c.G))
	for i := range y {
		y[i] = c.G[i] - c.Gprev[i]
	}
	return y
}

// Coefficient computes the NLCG β for d ← -g + β·dprev.
type Coefficient interface {
	Beta(ctx Context) (float64, error)
}

func checkNonDegenerate(ctx Context) error {
	if floats.Dot(ctx.Gprev, ctx.Gprev) == 0 {
		return fmt.Errorf("nlcg: %w", objective.ErrDegenerateDirection)
	}
	return nil
}

// FletcherReeves computes β = g·g / gprev·gprev.
type FletcherReeves struct{}

// Beta implements Coefficient.
func (FletcherReeves) Beta(ctx Context) (float64, error) {
	if err := checkNonDegenerate(ctx); err != nil {
		return 0, err
	}
	return floats.Dot(ctx.G, ctx.G) / floats.Dot(ctx.Gprev, ctx.Gprev), nil
}

// PolakRibiere computes β = g·y / gprev·gprev.
type PolakRibiere struct{}

// Beta implements Coefficient.
func (PolakRibiere) Beta(ctx Context) (float64, error) {
	if err := checkNonDegenerate(ctx); err != nil {
		return 0, err
	}
	return floats.Dot(ctx.G, ctx.Y()) / floats.Dot(ctx.Gprev, ctx.Gprev), nil
}

// HestenesStiefel computes β = g·y / y·dprev.
type HestenesStiefel struct{}

// Beta implements Coefficient.
func (HestenesStiefel) Beta(ctx Context) (float64, error) {
	if err := checkNonDegenerate(ctx); err != nil {
		return 0, err
	}
	y := ctx.Y()
	return floats.Dot(ctx.G, y) / floats.Dot(y, ctx.Dprev), nil
}

// LiuStorey computes β = -g·y / dprev·gprev.
type LiuStorey struct{}

// Beta implements Coefficient.
func (LiuStorey) Beta(ctx Context) (float64, error) {
	if err := checkNonDegenerate(ctx); err != nil {
		return 0, err
	}
	return -floats.Dot(ctx.G, ctx.Y()) / floats.Dot(ctx.Dprev, ctx.Gprev), nil
}

// ConjugateDescent computes β = g·g / y·dprev (also known as DaiYuan).
type ConjugateDescent struct{}

// Beta implements Coefficient.
func (ConjugateDescent) Beta(ctx Context) (float64, error) {
	if err := checkNonDegenerate(ctx); err != nil {
		return 0, err
	}
	return floats.Dot(ctx.G, ctx.G) / floats.Dot(ctx.Y(), ctx.Dprev), nil
}

// DaiYuan is an alias of ConjugateDescent (the two coincide).
type DaiYuan = ConjugateDescent

// HagerZhang computes β = (y - 2*dprev*theta)·g / (y·dprev), where
// theta = ‖y‖²/(y·dprev).
type HagerZhang struct{}

// Beta implements Coefficient.
func (HagerZhang) Beta(ctx Context) (float64, error) {
	if err := checkNonDegenerate(ctx); err != nil {
		return 0, err
	}
	y := ctx.Y()
	yDotD := floats.Dot(y, ctx.Dprev)
	theta := floats.Dot(y, y) / yDotD

	scaled := make([]float64, len(y))
	for i := range scaled {
		scaled[i] = y[i] - 2*ctx.Dprev[i]*theta
	}
	return floats.Dot(scaled, ctx.G) / yDotD, nil
}

// FRPRHybrid clamps the PolakRibiere coefficient into [-betaFR, betaFR].
type FRPRHybrid struct{}

// Beta implements Coefficient.
func (FRPRHybrid) Beta(ctx Context) (float64, error) {
	betaFR, err := (FletcherReeves{}).Beta(ctx)
	if err != nil {
		return 0, err
	}
	betaPR, err := (PolakRibiere{}).Beta(ctx)
	if err != nil {
		return 0, err
	}
	switch {
	case betaPR < -betaFR:
		return -betaFR, nil
	case betaPR > betaFR:
		return betaFR, nil
	default:
		return betaPR, nil
	}
}

// BinaryOp combines two β values into one, e.g. math.Max or math.Min.
type BinaryOp func(a, b float64) float64

// Hybridized composes two Coefficient strategies with a BinaryOp, defaulting
// to math.Max when Op is nil.
type Hybridized struct {
	S1, S2 Coefficient
	Op     BinaryOp
}

// NewHybridized builds a Hybridized coefficient strategy, defaulting Op to
// max(a,b) when nil.
func NewHybridized(s1, s2 Coefficient, op BinaryOp) Hybridized {
	if op == nil {
		op = func(a, b float64) float64 {
			if a > b {
				return a
			}
			return b
		}
	}
	return Hybridized{S1: s1, S2: s2, Op: op}
}

// Beta implements Coefficient.
func (h Hybridized) Beta(ctx Context) (float64, error) {
	b1, err := h.S1.Beta(ctx)
	if err != nil {
		return 0, err
	}
	b2, err := h.S2.Beta(ctx)
	if err != nil {
		return 0, err
	}
	return h.Op(b1, b2), nil
}
