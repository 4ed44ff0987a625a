package wavefront

import (
	"github.com/wavegrid/navfield/gridbuf"
	"github.com/wavegrid/navfield/pqueue"
)

// heuristicFunc returns the A* dispatch bias h(n) added to a cell's true
// potential when deciding which bucket to push a successor into. nil under
// ModeDijkstra.
type heuristicFunc func(n int) float64

// updateCell recomputes cell n's potential from its two lowest 4-neighbors
// and dispatches any improved neighbor into the next or overflow bucket.
// It is a no-op if n is itself an obstacle. No bounds checking is done:
// callers must only ever invoke this on interior cells (guaranteed by the
// sealed border, invariant 1 of the grid).
//
// The three phases below — neighbor gather, potential compute, successor
// dispatch — are kept textually separate so ModeAStar differs only in the
// dispatch phase (a non-nil heuristic).
func updateCell(grid *gridbuf.Buffers, q *pqueue.Queue, n int, curT float64, heuristic heuristicFunc) {
	if grid.Cost[n] >= gridbuf.CostObs {
		return
	}

	// 1) neighbor gather
	w := grid.Width
	l, r := grid.Pot[n-1], grid.Pot[n+1]
	u, d := grid.Pot[n-w], grid.Pot[n+w]

	// 2) potential compute: planar-wave quadratic approximation
	tc := l
	if r < l {
		tc = r
	}
	ta := u
	if d < u {
		ta = d
	}
	dc := tc - ta
	if dc < 0 {
		dc = -dc
		ta = tc
	}

	hf := float64(grid.Cost[n])
	var pot float64
	if dc >= hf {
		pot = ta + hf // one-neighbor update; cross-axis neighbor too far to contribute
	} else {
		dd := dc / hf
		v := quadA*dd*dd + quadB*dd + quadC
		pot = ta + hf*v
	}

	if pot >= grid.Pot[n] {
		return
	}
	grid.Pot[n] = pot

	// 3) successor dispatch
	dispatch := pot
	if heuristic != nil {
		dispatch = pot + heuristic(n)
	}
	push := q.PushNext
	if dispatch >= curT {
		push = q.PushOver
	}

	le := invSqrt2 * float64(grid.Cost[n-1])
	re := invSqrt2 * float64(grid.Cost[n+1])
	ue := invSqrt2 * float64(grid.Cost[n-w])
	de := invSqrt2 * float64(grid.Cost[n+w])

	if l > pot+le {
		push(n - 1)
	}
	if r > pot+re {
		push(n + 1)
	}
	if u > pot+ue {
		push(n - w)
	}
	if d > pot+de {
		push(n + w)
	}
}
