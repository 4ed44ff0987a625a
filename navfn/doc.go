// Package navfn wires the grid buffers, cost translator, priority buffers,
// wavefront propagator, gradient field, and path tracer into a single
// caller-owned Planner, matching the external interface of the original
// engine: configure a grid, set a cost map, set goal and start, plan, read
// the path back.
//
// What:
//
//   - Planner is an explicit value; there is no cached or static instance.
//     Callers that want buffer reuse across plans simply keep a Planner
//     alive and call ConfigureSize again only when dimensions change —
//     ConfigureSize is itself a no-op when dimensions are unchanged,
//     because it delegates to gridbuf.Buffers.Resize.
//   - PlanDijkstra and PlanAstar each run wavefront.Propagate followed by
//     tracer.Trace, matching the original's "propagate, then trace, return
//     whether a path was produced" sequencing.
//
// Why:
//
//   - Splitting the five packages this facade wires lets each be tested
//     and reasoned about independently; Planner's only job is sequencing
//     and default-budget computation, with no algorithmic logic of its own.
//
// Complexity:
//
//   - PlanDijkstra / PlanAstar: dominated by wavefront.Propagate's O(ns)
//     amortized cost plus tracer.Trace's O(path length).
//
// Errors:
//
//   - ErrNotConfigured: a Planner method that needs a sized grid was
//     called before ConfigureSize.
//   - ErrCellOutOfRange: SetGoal/SetStart received coordinates outside the
//     configured grid.
package navfn
