package optimize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	optimize "github.com/HaoZeke/xtsci-optimize"
	"github.com/HaoZeke/xtsci-optimize/linesearch"
	xnlcg "github.com/HaoZeke/xtsci-optimize/nlcg"
	"github.com/HaoZeke/xtsci-optimize/objective"
	"github.com/HaoZeke/xtsci-optimize/trial"
)

// Seed scenario 3: Rosenbrock value/gradient/Hessian at a non-stationary
// point, checked against the closed forms in trial.Rosenbrock's grounding
// source.
func TestRosenbrockValueGradientHessian(t *testing.T) {
	f := trial.Rosenbrock()
	x := []float64{-1.2, 1.0}

	assert.InDelta(t, 24.2, f.Value(x), 1e-9)

	g := f.Gradient(nil, x)
	assert.InDelta(t, -215.6, g[0], 1e-9)
	assert.InDelta(t, -88.0, g[1], 1e-9)

	h := f.Hessian(x)
	assert.InDelta(t, 1330.0, h.At(0, 0), 1e-9)
	assert.InDelta(t, 480.0, h.At(0, 1), 1e-9)
	assert.InDelta(t, 480.0, h.At(1, 0), 1e-9)
	assert.InDelta(t, 200.0, h.At(1, 1), 1e-9)
}

// Seed scenario 4: CG on Rosenbrock from (-1.3, 1.8), StrongWolfe(1e-4, 0.9)
// with Backtracking + GeometricReduction, tol = 1e-6.
func TestNLCGOnRosenbrock(t *testing.T) {
	f := trial.Rosenbrock()
	cond := linesearch.NewStrongWolfe(1e-4, 0.9)
	search := linesearch.NewBacktracking(cond, linesearch.NewGeometricReduction(0.5))
	driver := optimize.NewNLCG(search, xnlcg.FletcherReeves{}, xnlcg.NeverRestart{})

	ctrl := optimize.NewControl(optimize.WithMaxIterations(500), optimize.WithGtol(1e-6))
	res, err := driver.Optimize(f, []float64{-1.3, 1.8}, ctrl)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, res.X[0], 1e-3)
	assert.InDelta(t, 1.0, res.X[1], 1e-3)
	assert.Less(t, res.Nit, 500)
}

// Seed scenario 5: L-BFGS on Rosenbrock from (-1.3, 1.8), Armijo(0.1) +
// Backtracking with Golden sub-step, tol = 1e-6.
func TestLBFGSOnRosenbrock(t *testing.T) {
	f := trial.Rosenbrock()
	cond := linesearch.NewArmijo(0.1)
	search := linesearch.NewBacktracking(cond, linesearch.GoldenSection{})
	driver := optimize.NewLBFGS(search, 10)

	ctrl := optimize.NewControl(optimize.WithMaxIterations(200), optimize.WithGtol(1e-6))
	res, err := driver.Optimize(f, []float64{-1.3, 1.8}, ctrl)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, res.X[0], 1e-4)
	assert.InDelta(t, 1.0, res.X[1], 1e-4)
	assert.Less(t, res.Nit, 200)
}

func TestSteepestDescentOnQuadratic(t *testing.T) {
	f := trial.Quadratic()
	driver := optimize.NewSteepestDescent(nil)
	ctrl := optimize.NewControl(optimize.WithMaxIterations(100), optimize.WithGtol(1e-8))

	res, err := driver.Optimize(f, []float64{3, -4}, ctrl)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.InDelta(t, 0.0, res.X[0], 1e-4)
	assert.InDelta(t, 0.0, res.X[1], 1e-4)
}

func TestBFGSOnRosenbrock(t *testing.T) {
	f := trial.Rosenbrock()
	driver := optimize.NewBFGS(nil)
	ctrl := optimize.NewControl(optimize.WithMaxIterations(200), optimize.WithGtol(1e-6))

	res, err := driver.Optimize(f, []float64{-1.2, 1.0}, ctrl)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.X[0], 1e-3)
	assert.InDelta(t, 1.0, res.X[1], 1e-3)
}

func TestSR1OnQuadratic(t *testing.T) {
	f := trial.Quadratic()
	driver := optimize.NewSR1(nil, 0)
	ctrl := optimize.NewControl(optimize.WithMaxIterations(100), optimize.WithGtol(1e-7))

	res, err := driver.Optimize(f, []float64{2, 5}, ctrl)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, res.X[0], 1e-3)
	assert.InDelta(t, 0.0, res.X[1], 1e-3)
}

func TestAdamOnQuadratic(t *testing.T) {
	f := trial.Quadratic()
	driver := optimize.NewAdam()
	ctrl := optimize.NewControl(optimize.WithMaxIterations(20000), optimize.WithGtol(1e-4))

	res, err := driver.Optimize(f, []float64{1, 1}, ctrl)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, res.X[0], 1e-2)
	assert.InDelta(t, 0.0, res.X[1], 1e-2)
}

// neverAccept is a Condition that never accepts any step, forcing
// Backtracking to shrink alpha to 0 and surface ErrLineSearchFailed.
type neverAccept struct{}

func (neverAccept) Accept(alpha float64, f *objective.Func, s objective.State) (bool, error) {
	return false, nil
}

// LineSearchFailed status is reported alongside ErrLineSearchFailed when a
// driver cannot make progress.
func TestLineSearchFailedStatus(t *testing.T) {
	f := trial.Quadratic()
	search := linesearch.NewBacktracking(neverAccept{}, linesearch.NewGeometricReduction(0.5))
	driver := optimize.NewSteepestDescent(search)
	ctrl := optimize.NewControl(optimize.WithMaxIterations(10))

	res, err := driver.Optimize(f, []float64{1, 1}, ctrl)
	require.ErrorIs(t, err, objective.ErrLineSearchFailed)
	assert.Equal(t, optimize.StatusLineSearchFailed, res.Status)
}

// alwaysDegenerate reports ErrDegenerateDirection on every call, standing
// in for a coefficient formula whose denominator has gone to zero.
type alwaysDegenerate struct{}

func (alwaysDegenerate) Beta(ctx xnlcg.Context) (float64, error) {
	return 0, objective.ErrDegenerateDirection
}

// NLCG must surface ErrDegenerateDirection to its caller rather than
// silently falling back to steepest descent.
func TestNLCGPropagatesDegenerateDirection(t *testing.T) {
	f := trial.Quadratic()
	driver := optimize.NewNLCG(nil, alwaysDegenerate{}, xnlcg.NeverRestart{})
	// The first step lands exactly on the quadratic's minimum; Gtol 0 keeps
	// the run going to iteration 1, where the coefficient is consulted.
	ctrl := optimize.NewControl(optimize.WithMaxIterations(10), optimize.WithGtol(0))

	res, err := driver.Optimize(f, []float64{3, -4}, ctrl)
	require.ErrorIs(t, err, objective.ErrDegenerateDirection)
	assert.Equal(t, optimize.StatusFailed, res.Status)
}
