package navfn

import (
	"context"

	"github.com/wavegrid/navfield/costmap"
	"github.com/wavegrid/navfield/gridbuf"
	"github.com/wavegrid/navfield/pqueue"
	"github.com/wavegrid/navfield/tracer"
	"github.com/wavegrid/navfield/wavefront"
)

// Planner is an explicit, caller-owned navigation-function engine. Its
// zero value is not ready for use; construct one with NewPlanner.
//
// A Planner holds no global or package-level state: cross-call buffer
// reuse is achieved by keeping the same *Planner alive and calling
// ConfigureSize again only when (nx, ny) actually changes, since
// gridbuf.Buffers.Resize is a no-op on unchanged dimensions.
type Planner struct {
	opts Options

	grid  *gridbuf.Buffers
	queue *pqueue.Queue

	goal, start [2]int

	path         []tracer.Point
	lastPathCost float64
}

// NewPlanner constructs a Planner with the given cross-plan defaults.
// ConfigureSize must be called before any other method.
func NewPlanner(opts ...Option) *Planner {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Planner{opts: cfg}
}

// ConfigureSize (re)allocates the planner's grid buffers and priority
// queue for the given dimensions. A no-op if (nx, ny) match the current
// allocation.
func (p *Planner) ConfigureSize(nx, ny int) error {
	if p.grid == nil {
		grid, err := gridbuf.NewBuffers(nx, ny)
		if err != nil {
			return err
		}
		p.grid = grid

		var qopts []pqueue.Option
		if p.opts.QueueCapacity > 0 {
			qopts = append(qopts, pqueue.WithCapacity(p.opts.QueueCapacity))
		}
		p.queue = pqueue.NewQueue(p.grid, qopts...)

		return nil
	}

	return p.grid.Resize(nx, ny)
}

// SetCostGrid translates external (row-major, one byte per cell) into the
// planner's internal cost scale via package costmap.
func (p *Planner) SetCostGrid(external []uint8, opts ...costmap.Option) error {
	if p.grid == nil {
		return ErrNotConfigured
	}

	return costmap.Translate(p.grid, external, opts...)
}

// SetGoal records the goal cell in grid coordinates.
func (p *Planner) SetGoal(x, y int) error {
	if p.grid == nil {
		return ErrNotConfigured
	}
	if !p.grid.InBounds(x, y) {
		return ErrCellOutOfRange
	}
	p.goal = [2]int{x, y}

	return nil
}

// SetStart records the start cell in grid coordinates.
func (p *Planner) SetStart(x, y int) error {
	if p.grid == nil {
		return ErrNotConfigured
	}
	if !p.grid.InBounds(x, y) {
		return ErrCellOutOfRange
	}
	p.start = [2]int{x, y}

	return nil
}

// PlanDijkstra runs a breadth-first wavefront propagation followed by path
// tracing, returning whether a path was found. cycles <= 0 uses the
// original engine's default budget (grid.Size/20, at least Width+Height).
// stopAtStart enables early termination once the start cell's potential is
// known, instead of running to budget exhaustion.
func (p *Planner) PlanDijkstra(cycles int, stopAtStart bool) (bool, error) {
	return p.plan(context.Background(), wavefront.ModeDijkstra, cycles, stopAtStart)
}

// PlanAstar runs the best-first A* wavefront propagation followed by path
// tracing, returning whether a path was found. cycles <= 0 uses the
// default budget; A* always stops as soon as the start cell is reached.
func (p *Planner) PlanAstar(cycles int) (bool, error) {
	return p.plan(context.Background(), wavefront.ModeAStar, cycles, false)
}

func (p *Planner) plan(ctx context.Context, mode wavefront.Mode, cycles int, stopAtStart bool) (bool, error) {
	if p.grid == nil {
		return false, ErrNotConfigured
	}

	goalIdx := p.grid.Index(p.goal[0], p.goal[1])
	startIdx := p.grid.Index(p.start[0], p.start[1])

	var propOpts []wavefront.Option
	if cycles > 0 {
		propOpts = append(propOpts, wavefront.WithCycles(cycles))
	}
	if mode == wavefront.ModeDijkstra {
		propOpts = append(propOpts, wavefront.WithAtStart(stopAtStart))
	}

	_, found, err := wavefront.Propagate(ctx, p.grid, p.queue, mode, goalIdx, startIdx, propOpts...)
	if err != nil {
		return false, err
	}

	p.path = nil
	p.lastPathCost = 0
	if !found {
		return false, nil
	}

	maxLen := p.opts.MaxPathLen
	if maxLen <= 0 {
		if mode == wavefront.ModeAStar {
			maxLen = p.grid.Width * 4
		} else {
			maxLen = p.grid.Size / 2
		}
	}

	var traceOpts []tracer.Option
	traceOpts = append(traceOpts, tracer.WithMaxLen(maxLen))
	if p.opts.PathStep > 0 {
		traceOpts = append(traceOpts, tracer.WithStep(p.opts.PathStep))
	}

	path, err := tracer.Trace(ctx, p.grid, p.goal, p.start, traceOpts...)
	if err != nil {
		return false, err
	}
	if len(path) == 0 {
		return false, nil
	}

	p.path = path
	p.lastPathCost = p.grid.Pot[startIdx]

	return true, nil
}

// Path returns the most recently computed path, or nil if the last plan
// failed or no plan has run yet.
func (p *Planner) Path() []tracer.Point {
	return p.path
}

// LastPathCost returns pot[start] as recorded at the end of the most
// recent successful plan, the direct analogue of
// NavFn::getLastPathCost().
func (p *Planner) LastPathCost() float64 {
	return p.lastPathCost
}
