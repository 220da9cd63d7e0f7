package optimize

import "github.com/HaoZeke/xtsci-optimize/objective"

// Re-exported foundational types, so importers of package optimize do not
// also need to import xtsci-optimize/objective for the common path.
type (
	Func        = objective.Func
	State       = objective.State
	AlphaState  = objective.AlphaState
	Control     = objective.Control
	Option      = objective.Option
	Result      = objective.Result
	Status      = objective.Status
	Logger      = objective.Logger
	Matrix      = objective.Matrix
	Optimizable = objective.Optimizable
	ValueFunc   = objective.ValueFunc
	GradFunc    = objective.GradFunc
	HessFunc    = objective.HessFunc
	DiffFunc    = objective.DiffFunc
)

// Re-exported constructors and option builders.
var (
	NewFunc           = objective.NewFunc
	FuncFromValue     = objective.FuncFromValue
	NewState          = objective.NewState
	DefaultControl    = objective.DefaultControl
	NewControl        = objective.NewControl
	LoadControl       = objective.LoadControl
	NewLogger         = objective.NewLogger
	NewMatrix         = objective.NewMatrix
	IdentityMatrix    = objective.IdentityMatrix
	NewOptimizable    = objective.NewOptimizable
	WithMaxIterations = objective.WithMaxIterations
	WithTol           = objective.WithTol
	WithGtol          = objective.WithGtol
	WithXtol          = objective.WithXtol
	WithFtol          = objective.WithFtol
	WithMaxMove       = objective.WithMaxMove
	WithVerbose       = objective.WithVerbose
	WithLogger        = objective.WithLogger
	WithCancel        = objective.WithCancel
)

// Re-exported status constants and sentinel errors.
const (
	StatusConverged        = objective.StatusConverged
	StatusMaxIterations    = objective.StatusMaxIterations
	StatusLineSearchFailed = objective.StatusLineSearchFailed
	StatusFailed           = objective.StatusFailed
)

var (
	ErrMissingGradient     = objective.ErrMissingGradient
	ErrInvalidParameter    = objective.ErrInvalidParameter
	ErrDegenerateDirection = objective.ErrDegenerateDirection
	ErrLineSearchFailed    = objective.ErrLineSearchFailed
)
