// Package navfield implements a 2D grid wavefront navigation-function
// planner: given an occupancy costmap, a goal, and a start, it computes a
// potential field by propagating a discretized eikonal equation outward
// from the goal, then descends that field's gradient to produce an
// ordered, sub-cell-resolution path back to the start.
//
// What:
//
//   - gridbuf holds the flat cost/potential/pending/gradient arrays a
//     plan reads and writes.
//   - costmap translates an external occupancy encoding into the internal
//     cost scale and seals the grid's outer border.
//   - pqueue is the three-buffer rotating bucketed priority queue the
//     propagator dispatches cells through.
//   - wavefront runs the planar-wave update rule, in either a
//     breadth-first (Dijkstra) or best-first (A*) variant.
//   - gradient computes, and caches, the local unit gradient of a
//     converged potential field.
//   - tracer descends that gradient from start to goal, with oscillation
//     detection and an 8-neighbor grid-walking fallback near plateaus.
//   - navfn wires all of the above into a single caller-owned Planner.
//   - debugmap optionally dumps the cost grid as a PGM image for visual
//     inspection.
//
// Why:
//
//   - Splitting each concern into its own package keeps the propagation
//     core, the interpolation math, and the path-tracing state machine
//     independently testable, each with its own focused API surface.
//
// A minimal plan:
//
//	p := navfn.NewPlanner()
//	_ = p.ConfigureSize(nx, ny)
//	_ = p.SetCostGrid(externalCosts)
//	_ = p.SetGoal(gx, gy)
//	_ = p.SetStart(sx, sy)
//	if found, _ := p.PlanAstar(0); found {
//		path := p.Path()
//		cost := p.LastPathCost()
//	}
package navfield
