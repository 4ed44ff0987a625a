package wavefront

import (
	"context"
	"math"

	"github.com/wavegrid/navfield/gridbuf"
	"github.com/wavegrid/navfield/pqueue"
)

// Propagate runs the wavefront from goalIdx toward startIdx over grid,
// using q as scratch priority buffers. It resets grid's potential/pending/
// gradient state and q's buckets before running, so a single (grid, q) pair
// may be reused across successive plans.
//
// Returns Stats describing the run, whether startIdx ended up reached
// (grid.Pot[startIdx] < gridbuf.PotHigh), and a non-nil error only if ctx
// was cancelled mid-run or goalIdx/startIdx is out of range — propagation
// exhausting its budget or the wavefront itself is NOT an error, per the
// zero-length-path failure convention used throughout this planner.
func Propagate(ctx context.Context, grid *gridbuf.Buffers, q *pqueue.Queue, mode Mode, goalIdx, startIdx int, opts ...Option) (Stats, bool, error) {
	if goalIdx < 0 || goalIdx >= grid.Size || startIdx < 0 || startIdx >= grid.Size {
		return Stats{}, false, ErrInvalidCell
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Cycles <= 0 {
		cfg.Cycles = maxInt(grid.Size/20, grid.Width+grid.Height)
	}

	curT := setup(grid, q, mode, goalIdx, startIdx)

	heuristic := astarHeuristic(grid, mode, startIdx)

	var stats Stats
	cycle := 0
	for ; cycle < cfg.Cycles; cycle++ {
		if err := ctx.Err(); err != nil {
			stats.Cycles = cycle
			return stats, grid.Pot[startIdx] < gridbuf.PotHigh, err
		}

		if q.Empty() {
			break
		}

		stats.CellsVisited += q.CurLen()
		if q.CurLen() > stats.MaxBucketSize {
			stats.MaxBucketSize = q.CurLen()
		}

		q.ClearPendingCur()
		for _, n := range q.Cur() {
			updateCell(grid, q, n, curT, heuristic)
		}

		q.SwapCurNext()
		if q.CurLen() == 0 {
			curT += cfg.PriInc
			q.SwapCurOver()
		}

		if shouldStop(mode, cfg, grid, startIdx) {
			cycle++
			break
		}
	}
	stats.Cycles = cycle

	return stats, grid.Pot[startIdx] < gridbuf.PotHigh, nil
}

// setup resets grid and q, seeds the goal cell with potential zero, pushes
// its four neighbors into the current bucket, and returns the initial
// threshold: CostObs for Dijkstra, or CostObs plus the Euclidean
// goal-to-start distance in cost units for A*.
func setup(grid *gridbuf.Buffers, q *pqueue.Queue, mode Mode, goalIdx, startIdx int) float64 {
	grid.Reset()
	q.Reset()

	grid.Pot[goalIdx] = 0
	w := grid.Width
	q.PushCur(goalIdx + 1)
	q.PushCur(goalIdx - 1)
	q.PushCur(goalIdx - w)
	q.PushCur(goalIdx + w)

	curT := float64(gridbuf.CostObs)
	if mode == ModeAStar {
		gx, gy := grid.Coord(goalIdx)
		sx, sy := grid.Coord(startIdx)
		curT += math.Hypot(float64(gx-sx), float64(gy-sy)) * gridbuf.CostNeutral
	}

	return curT
}

// astarHeuristic builds the per-cell Euclidean-to-start dispatch bias used
// by updateCell under ModeAStar; nil under ModeDijkstra.
func astarHeuristic(grid *gridbuf.Buffers, mode Mode, startIdx int) heuristicFunc {
	if mode != ModeAStar {
		return nil
	}
	sx, sy := grid.Coord(startIdx)
	w := grid.Width

	return func(n int) float64 {
		x, y := n%w, n/w
		return math.Hypot(float64(x-sx), float64(y-sy)) * gridbuf.CostNeutral
	}
}

// shouldStop reports the per-mode early-termination check: Dijkstra stops
// only when AtStart was requested; A* always checks unconditionally.
func shouldStop(mode Mode, cfg Options, grid *gridbuf.Buffers, startIdx int) bool {
	if mode == ModeAStar {
		return grid.Pot[startIdx] < gridbuf.PotHigh
	}

	return cfg.AtStart && grid.Pot[startIdx] < gridbuf.PotHigh
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
