// Sentinel errors for package objective. Algorithms return these (or
// fmt.Errorf("%w: ctx", Err...) wrapping them); callers match with
// errors.Is. Panics are reserved for programmer errors (mismatched slice
// lengths), never for the recoverable preconditions the driver loop can
// encounter.
package objective

import "errors"

var (
	// ErrMissingGradient is returned by derivative-using conditions, step
	// sizes, and drivers when Func exposes no Gradient.
	ErrMissingGradient = errors.New("optimize: objective has no gradient")

	// ErrInvalidParameter is returned by Goldstein / c-range constructors
	// whose parameters fall outside the required interval.
	ErrInvalidParameter = errors.New("optimize: invalid parameter")

	// ErrDegenerateDirection is returned by NLCG coefficient strategies
	// when gprev·gprev == 0.
	ErrDegenerateDirection = errors.New("optimize: degenerate search direction")

	// ErrLineSearchFailed is returned when a line search accepts α = 0 or
	// produces a non-finite step after the zoom fallback.
	ErrLineSearchFailed = errors.New("optimize: line search failed")
)
