package linesearch

import "github.com/HaoZeke/xtsci-optimize/objective"

// Strategy wraps a Condition and a StepSize to return an accepted step
// length α.
type Strategy interface {
	Search(f *objective.Func, s objective.State, init objective.AlphaState, ctrl objective.Control) (float64, error)
}
