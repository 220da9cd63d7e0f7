// Command optimize-demo runs one of the minimizer drivers against a trial
// objective and prints its convergence trace to stdout.
package main

import (
	"flag"
	"fmt"
	"os"

	optimize "github.com/HaoZeke/xtsci-optimize"
	"github.com/HaoZeke/xtsci-optimize/objective"
	"github.com/HaoZeke/xtsci-optimize/trial"
)

func main() {
	driverName := flag.String("driver", "lbfgs", "sd|nlcg|bfgs|lbfgs|sr1|adam")
	funcName := flag.String("func", "rosenbrock", "quadratic|rosenbrock|himmelblau|mullerbrown|eggholder")
	x0 := flag.Float64("x0", -1.2, "initial x")
	y0 := flag.Float64("y0", 1.0, "initial y")
	maxIter := flag.Int("max-iterations", 200, "outer iteration cap")
	gtol := flag.Float64("gtol", 1e-6, "‖g‖∞ convergence threshold")
	flag.Parse()

	f, err := trialFunc(*funcName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := objective.NewLogger(os.Stdout)
	logger.Immediate = true
	ctrl := optimize.NewControl(
		optimize.WithMaxIterations(*maxIter),
		optimize.WithGtol(*gtol),
		optimize.WithVerbose(true),
		optimize.WithLogger(logger),
	)

	res, err := runDriver(*driverName, f, []float64{*x0, *y0}, ctrl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "optimize-demo:", err)
		os.Exit(1)
	}

	fmt.Printf("\nstatus: %s\nx = %v\nf(x) = %v\niterations = %d, nfev = %d, njev = %d\n",
		res.Status, res.X, res.Fun, res.Nit, res.Nfev, res.Njev)
}

func trialFunc(name string) (*objective.Func, error) {
	switch name {
	case "quadratic":
		return trial.Quadratic(), nil
	case "rosenbrock":
		return trial.Rosenbrock(), nil
	case "himmelblau":
		return trial.Himmelblau(), nil
	case "mullerbrown":
		return trial.MullerBrown(), nil
	case "eggholder":
		return trial.Eggholder(), nil
	default:
		return nil, fmt.Errorf("unknown func %q", name)
	}
}

func runDriver(name string, f *objective.Func, x0 []float64, ctrl objective.Control) (objective.Result, error) {
	switch name {
	case "sd":
		return optimize.NewSteepestDescent(nil).Optimize(f, x0, ctrl)
	case "nlcg":
		return optimize.NewNLCG(nil, nil, nil).Optimize(f, x0, ctrl)
	case "bfgs":
		return optimize.NewBFGS(nil).Optimize(f, x0, ctrl)
	case "lbfgs":
		return optimize.NewLBFGS(nil, 10).Optimize(f, x0, ctrl)
	case "sr1":
		return optimize.NewSR1(nil, 0).Optimize(f, x0, ctrl)
	case "adam":
		return optimize.NewAdam().Optimize(f, x0, ctrl)
	default:
		return objective.Result{}, fmt.Errorf("unknown driver %q", name)
	}
}
