package objective

// State is the search state (x, d): the current point and the current
// search direction. D need not be normalized; minimizers set it fresh each
// outer iteration.
type State struct {
	X []float64
	D []float64
}

// NewState builds a State, copying x and d.
func NewState(x, d []float64) State {
	return State{X: append([]float64(nil), x...), D: append([]float64(nil), d...)}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	return State{X: append([]float64(nil), s.X...), D: append([]float64(nil), s.D...)}
}

// AlphaState is the bracket (init, low, hi) a step-size sub-strategy
// refines, with low ≤ init ≤ hi, all ≥ 0.
type AlphaState struct {
	Init float64
	Low  float64
	Hi   float64
}
