package tracer

import "errors"

// ErrInvalidStart is returned when the trace start cell, after any
// override, lies outside the grid.
var ErrInvalidStart = errors.New("tracer: start cell out of bounds")

// Point is a sub-cell-resolution coordinate in grid space: integer cell
// coordinates plus a fractional offset accumulated during descent.
type Point struct {
	X, Y float64
}

// Options configures a single Trace call.
type Options struct {
	// Step is the fractional distance advanced per iteration along the
	// interpolated gradient, in cell units. Smaller values trace a
	// smoother path at the cost of more iterations.
	Step float64

	// MaxLen bounds the number of iterations (and thus path points).
	// Zero means "use half the grid's cell count", matching the
	// grid-sized traversal budgets used elsewhere in this module.
	MaxLen int

	startOverride *[2]int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the baseline tracing configuration.
func DefaultOptions() Options {
	return Options{Step: 0.5}
}

// WithStep overrides the per-iteration gradient-descent step size.
func WithStep(step float64) Option {
	return func(o *Options) { o.Step = step }
}

// WithMaxLen overrides the iteration budget.
func WithMaxLen(n int) Option {
	return func(o *Options) { o.MaxLen = n }
}

// WithStartOverride replaces the start cell passed to Trace, useful for
// resuming a trace mid-path.
func WithStartOverride(x, y int) Option {
	return func(o *Options) { o.startOverride = &[2]int{x, y} }
}
