package navfn

import "errors"

// Sentinel errors for Planner misuse.
var (
	// ErrNotConfigured indicates a method needing a sized grid was called
	// before ConfigureSize.
	ErrNotConfigured = errors.New("navfn: planner not configured; call ConfigureSize first")

	// ErrCellOutOfRange indicates a goal or start coordinate outside the
	// configured grid.
	ErrCellOutOfRange = errors.New("navfn: cell coordinate out of range")
)

// Options configures a Planner's long-lived, cross-plan defaults.
type Options struct {
	// MaxPathLen overrides the tracer iteration budget. Zero means
	// Planner computes the original engine's defaults: grid.Size/2 for
	// PlanDijkstra, grid.Width*4 for PlanAstar.
	MaxPathLen int

	// PathStep overrides the tracer's per-iteration gradient-descent step.
	PathStep float64

	// QueueCapacity overrides each priority buffer's fixed capacity.
	QueueCapacity int
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with every override left at its
// package-default value (tracer.DefaultOptions().Step, pqueue.DefaultCapacity).
func DefaultOptions() Options {
	return Options{}
}

// WithMaxPathLen overrides the tracer iteration budget for every plan run
// by this Planner.
func WithMaxPathLen(n int) Option {
	return func(o *Options) { o.MaxPathLen = n }
}

// WithPathStep overrides the tracer's per-iteration step size.
func WithPathStep(step float64) Option {
	return func(o *Options) { o.PathStep = step }
}

// WithQueueCapacity overrides the priority buffers' fixed capacity.
func WithQueueCapacity(capacity int) Option {
	return func(o *Options) { o.QueueCapacity = capacity }
}
