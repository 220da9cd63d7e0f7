package nlcg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HaoZeke/xtsci-optimize/nlcg"
	"github.com/HaoZeke/xtsci-optimize/objective"
)

func ctx() nlcg.Context {
	return nlcg.Context{
		G:     []float64{1, 0},
		Gprev: []float64{2, 0},
		Dprev: []float64{-2, 0},
	}
}

func TestFletcherReeves(t *testing.T) {
	beta, err := (nlcg.FletcherReeves{}).Beta(ctx())
	require.NoError(t, err)
	assert.InDelta(t, 1.0/4.0, beta, 1e-12)
}

func TestPolakRibiere(t *testing.T) {
	// y = g - gprev = (-1, 0); g.y = -1; gprev.gprev = 4
	beta, err := (nlcg.PolakRibiere{}).Beta(ctx())
	require.NoError(t, err)
	assert.InDelta(t, -1.0/4.0, beta, 1e-12)
}

func TestHestenesStiefel(t *testing.T) {
	// y = (-1, 0); g.y = -1; y.dprev = 2
	beta, err := (nlcg.HestenesStiefel{}).Beta(ctx())
	require.NoError(t, err)
	assert.InDelta(t, -0.5, beta, 1e-12)
}

func TestDegenerateDirection(t *testing.T) {
	degenerate := nlcg.Context{G: []float64{1}, Gprev: []float64{0}, Dprev: []float64{1}}
	for _, coef := range []nlcg.Coefficient{
		nlcg.FletcherReeves{}, nlcg.PolakRibiere{}, nlcg.HestenesStiefel{},
		nlcg.LiuStorey{}, nlcg.ConjugateDescent{}, nlcg.HagerZhang{},
	} {
		_, err := coef.Beta(degenerate)
		require.ErrorIs(t, err, objective.ErrDegenerateDirection)
	}
}

func TestFRPRHybridClamps(t *testing.T) {
	betaFR, err := (nlcg.FletcherReeves{}).Beta(ctx())
	require.NoError(t, err)
	beta, err := (nlcg.FRPRHybrid{}).Beta(ctx())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, beta, -betaFR)
	assert.LessOrEqual(t, beta, betaFR)
}

func TestHybridizedDefaultsToMax(t *testing.T) {
	h := nlcg.NewHybridized(nlcg.FletcherReeves{}, nlcg.PolakRibiere{}, nil)
	beta, err := h.Beta(ctx())
	require.NoError(t, err)
	betaFR, _ := (nlcg.FletcherReeves{}).Beta(ctx())
	assert.InDelta(t, betaFR, beta, 1e-12, "max(FR, PR) should be FR here since PR < 0 < FR")
}

func TestNeverRestart(t *testing.T) {
	assert.False(t, (nlcg.NeverRestart{}).ShouldRestart(ctx()))
}

func TestNJWSRestart(t *testing.T) {
	// |g.gprev| / gprev.gprev = |2| / 4 = 0.5 >= 0.1 default threshold.
	r := nlcg.NewNJWSRestart(0)
	assert.True(t, r.ShouldRestart(ctx()))

	r2 := nlcg.NewNJWSRestart(0.9)
	assert.False(t, r2.ShouldRestart(ctx()))
}
