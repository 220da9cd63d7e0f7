package objective

// DiffFunc computes a caller-chosen metric between two points; it defaults
// to elementwise subtraction (a - b).
type DiffFunc func(a, b []float64) []float64

func defaultDiff(a, b []float64) []float64 {
	d := make([]float64, len(a))
	for i := range a {
		d[i] = a[i] - b[i]
	}
	return d
}

// Optimizable composes a Func with transformations such as fixed-atom
// masking or coordinate extraction. Pinned marks coordinates the driver
// must never move, and Diff supplies the metric used when the wrapper
// needs to compare two points (e.g. convergence tests against a reference
// geometry).
type Optimizable struct {
	*Func
	Diff   DiffFunc
	Pinned []int
	state  []float64 // caller-chosen scratch slot, e.g. pre-pinned coordinates
}

// NewOptimizable wraps f. diff may be nil, in which case elementwise
// subtraction is used.
func NewOptimizable(f *Func, diff DiffFunc) *Optimizable {
	if diff == nil {
		diff = defaultDiff
	}
	return &Optimizable{Func: f, Diff: diff}
}

// State returns the wrapper's mutable state slot.
func (o *Optimizable) State() []float64 { return o.state }

// SetState replaces the wrapper's mutable state slot.
func (o *Optimizable) SetState(s []float64) { o.state = s }

// MaskGradient zeroes out the gradient components listed in Pinned, so a
// driver consuming this Optimizable never moves those coordinates.
func (o *Optimizable) MaskGradient(g []float64) {
	for _, idx := range o.Pinned {
		if idx >= 0 && idx < len(g) {
			g[idx] = 0
		}
	}
}
