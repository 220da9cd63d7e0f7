package objective

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Control is a driver's top-level configuration for a single Optimize run,
// borrowed read-only for the duration of the call. Its fields carry yaml
// struct tags so a run's settings can be loaded from a file via LoadControl.
type Control struct {
	MaxIterations int           `yaml:"max_iterations"`
	Tol           float64       `yaml:"tol"`
	Gtol          float64       `yaml:"gtol"`
	Xtol          float64       `yaml:"xtol"`
	Ftol          float64       `yaml:"ftol"`
	MaxMove       float64       `yaml:"maxmove"`
	Verbose       bool          `yaml:"verbose"`
	Logger        *Logger       `yaml:"-"`
	Cancel        context.Context `yaml:"-"`
}

// DefaultControl returns the Control defaults used across the reference
// scenarios used across the package tests.
func DefaultControl() Control {
	return Control{
		MaxIterations: 200,
		Tol:           1e-6,
		Gtol:          1e-5,
		Xtol:          1e-10,
		Ftol:          1e-10,
		MaxMove:       0, // 0 means unconstrained
	}
}

// Option mutates a Control via the functional-options pattern.
type Option func(*Control)

// WithMaxIterations sets the outer-iteration cap.
func WithMaxIterations(n int) Option { return func(c *Control) { c.MaxIterations = n } }

// WithTol sets the default convergence threshold.
func WithTol(tol float64) Option { return func(c *Control) { c.Tol = tol } }

// WithGtol sets the ‖∇f‖∞ outer-convergence threshold.
func WithGtol(gtol float64) Option { return func(c *Control) { c.Gtol = gtol } }

// WithXtol sets the bracket-width threshold inside refinement.
func WithXtol(xtol float64) Option { return func(c *Control) { c.Xtol = xtol } }

// WithFtol sets the |φ(αj)-φ(αj-1)| threshold inside refinement.
func WithFtol(ftol float64) Option { return func(c *Control) { c.Ftol = ftol } }

// WithMaxMove caps ‖α·d‖ per outer step; 0 disables the cap.
func WithMaxMove(m float64) Option { return func(c *Control) { c.MaxMove = m } }

// WithVerbose toggles per-iteration progress logging.
func WithVerbose(v bool) Option { return func(c *Control) { c.Verbose = v } }

// WithLogger attaches a Logger for verbose output and numerical warnings.
func WithLogger(l *Logger) Option { return func(c *Control) { c.Logger = l } }

// WithCancel attaches a context whose cancellation is polled at the top of
// each outer loop.
func WithCancel(ctx context.Context) Option { return func(c *Control) { c.Cancel = ctx } }

// NewControl builds a Control from DefaultControl with the given Options
// applied.
func NewControl(opts ...Option) Control {
	c := DefaultControl()
	for _, opt := range opts {
		opt(&c)
	}
	if c.Verbose && c.Logger == nil {
		c.Logger = NewLogger(os.Stdout)
		c.Logger.Immediate = true
	}
	return c
}

// LoadControl reads a Control from a YAML file at path, in the shape of
// Control's yaml-tagged fields.
func LoadControl(path string) (Control, error) {
	c := DefaultControl()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrapf(err, "LoadControl: read %s", path)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "LoadControl: parse %s", path)
	}
	return c, nil
}

// Cancelled reports whether c.Cancel has been cancelled.
func (c Control) Cancelled() bool {
	if c.Cancel == nil {
		return false
	}
	select {
	case <-c.Cancel.Done():
		return true
	default:
		return false
	}
}

// logf forwards to c.Logger if present and Verbose is set.
func (c Control) logf(format string, a ...interface{}) {
	if c.Verbose && c.Logger != nil {
		c.Logger.Logf(format, a...)
	}
}

func (c Control) warnf(format string, a ...interface{}) {
	if c.Logger != nil {
		c.Logger.Warnf(format, a...)
	}
}
