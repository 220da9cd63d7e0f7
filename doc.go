// Package optimize provides the minimizer drivers (steepest descent,
// nonlinear conjugate gradient, BFGS, L-BFGS, SR1, Adam) built on the
// line-search engine in xtsci-optimize/linesearch and the NLCG
// coefficient/restart strategies in xtsci-optimize/nlcg.
//
// The foundational types — Func, State, Control, Result, Matrix, and the
// sentinel errors — live in xtsci-optimize/objective and are re-exported
// here so callers only need one import for the common path.
package optimize
