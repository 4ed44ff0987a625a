package wavefront

import (
	"errors"

	"github.com/wavegrid/navfield/gridbuf"
)

// Sentinel errors for wavefront propagation.
var (
	// ErrInvalidCell indicates a goal or start index outside [0, grid.Size).
	ErrInvalidCell = errors.New("wavefront: cell index out of range")
)

// Mode selects which propagation variant Propagate runs.
type Mode int

const (
	// ModeDijkstra is the breadth-first planar-wave propagation.
	ModeDijkstra Mode = iota
	// ModeAStar is the best-first variant using a Euclidean-to-start
	// heuristic to bias bucket dispatch toward the start cell.
	ModeAStar
)

// Quadratic coefficients approximating the continuous eikonal update,
// fit to match the exact update at d=0 (v≈0.704), d=1 (v≈1.0), and the
// midpoint. Preserved to the stated precision; treated as opaque.
const (
	quadA = -0.2301
	quadB = 0.5307
	quadC = 0.7040
)

// invSqrt2 approximates the Euclidean edge length implied by the planar
// wave, used to scale neighbor-improvement comparisons.
const invSqrt2 = 0.707106781

// Options configures a single Propagate call.
type Options struct {
	// Cycles bounds the number of propagation passes. If <= 0, Propagate
	// substitutes max(grid.Size/20, grid.Width+grid.Height), matching the
	// original engine's default budget.
	Cycles int

	// AtStart, when true and Mode is ModeDijkstra, stops propagation as
	// soon as the start cell's potential is known, rather than running to
	// budget exhaustion or wavefront exhaustion. Ignored under ModeAStar,
	// which always stops as soon as the start cell is reached.
	AtStart bool

	// PriInc is the amount by which the threshold curT is raised each time
	// the current bucket drains with cells still waiting in overflow.
	PriInc float64
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with PriInc = 2*CostNeutral and no cycle
// budget override (Propagate computes one from grid dimensions).
func DefaultOptions() Options {
	return Options{
		Cycles:  0,
		AtStart: false,
		PriInc:  2 * gridbuf.CostNeutral,
	}
}

// WithCycles overrides the iteration budget.
func WithCycles(cycles int) Option {
	return func(o *Options) {
		o.Cycles = cycles
	}
}

// WithAtStart enables early termination once the start cell's potential is
// known (ModeDijkstra only).
func WithAtStart(atStart bool) Option {
	return func(o *Options) {
		o.AtStart = atStart
	}
}

// WithPriInc overrides the threshold increment.
func WithPriInc(inc float64) Option {
	return func(o *Options) {
		if inc > 0 {
			o.PriInc = inc
		}
	}
}

// Stats reports propagation coverage, the direct analogue of the original
// engine's nc/nwv debug-log counters: useful to confirm, e.g., that A*
// visits fewer cells than Dijkstra on the same map.
type Stats struct {
	Cycles        int // number of passes actually executed
	CellsVisited  int // cumulative cells processed across all passes
	MaxBucketSize int // largest single-pass current-bucket size
}
