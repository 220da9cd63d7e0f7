package nlcg

import "gonum.org/v1/gonum/floats"

// Restart decides whether conjugacy has deteriorated enough that β should
// be reset to 0 (steepest-descent restart).
type Restart interface {
	ShouldRestart(ctx Context) bool
}

// NeverRestart never restarts.
type NeverRestart struct{}

// ShouldRestart implements Restart.
func (NeverRestart) ShouldRestart(ctx Context) bool { return false }

// NJWSRestart restarts when |g·gprev| / gprev·gprev ≥ Nu (the
// Nocedal-Wright-Shanno test), default Nu = 0.1.
type NJWSRestart struct {
	Nu float64
}

// NewNJWSRestart defaults Nu to 0.1 when zero.
func NewNJWSRestart(nu float64) NJWSRestart {
	if nu == 0 {
		nu = 0.1
	}
	return NJWSRestart{Nu: nu}
}

// ShouldRestart implements Restart.
func (r NJWSRestart) ShouldRestart(ctx Context) bool {
	denom := floats.Dot(ctx.Gprev, ctx.Gprev)
	if denom == 0 {
		return true
	}
	ratio := absf(floats.Dot(ctx.G, ctx.Gprev)) / denom
	return ratio >= r.Nu
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
