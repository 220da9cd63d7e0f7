package linesearch

import "github.com/HaoZeke/xtsci-optimize/objective"

// Backtracking repeatedly shrinks α via Step until Condition accepts it (or
// α reaches 0).
type Backtracking struct {
	Condition Condition
	Step      StepSize
}

// NewBacktracking builds a Backtracking strategy. Step defaults to
// GeometricReduction(0.5) when nil.
func NewBacktracking(cond Condition, step StepSize) Backtracking {
	if step == nil {
		step = NewGeometricReduction(0.5)
	}
	return Backtracking{Condition: cond, Step: step}
}

// Search implements Strategy.
func (b Backtracking) Search(f *objective.Func, s objective.State, init objective.AlphaState, ctrl objective.Control) (float64, error) {
	alpha := init.Init
	for alpha > 0 {
		ok, err := b.Condition.Accept(alpha, f, s)
		if err != nil {
			return 0, err
		}
		if ok {
			return alpha, nil
		}
		next, err := b.Step.Next(objective.AlphaState{Init: alpha, Low: 0, Hi: alpha}, f, s)
		if err != nil {
			return 0, err
		}
		if next >= alpha {
			// non-decreasing sub-strategy would loop forever; force shrinkage.
			next = 0.5 * alpha
		}
		alpha = next
	}
	return 0, nil
}
