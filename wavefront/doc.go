// Package wavefront implements the planar-wave update rule and the
// bucketed-priority propagator that together compute a navigation
// potential field over a gridbuf.Buffers grid.
//
// What:
//
//   - updateCell recomputes a single interior cell's potential from its
//     two lowest 4-neighbors using a quadratic approximation of the
//     continuous eikonal update, then dispatches any neighbor whose
//     potential can still improve into the next or overflow priority
//     bucket (package pqueue). Its optional heuristic parameter is what
//     distinguishes the Dijkstra and A* variants: nil for plain
//     breadth-first dispatch, or an admissible Euclidean-to-start bias
//     for A*'s best-first dispatch.
//   - Propagate drives the wavefront: seeds the goal, repeatedly processes
//     the current bucket, rotates bucket roles, and raises the threshold
//     when a bucket drains, until the budget is exhausted, the wavefront
//     runs out of cells, or (depending on mode) the start cell is reached.
//
// Why:
//
//   - A coarse threshold bucket achieves near-Dijkstra expansion order
//     without a binary heap, because edge weights fall in a small,
//     bounded range; A* narrows the search with an admissible Euclidean
//     heuristic to the start cell.
//
// Complexity:
//
//   - Propagate: O(cycles * average-bucket-size) cell updates, each O(1).
//
// Errors:
//
//   - ErrInvalidCell: goal or start index is outside the grid.
//   - context.Canceled / context.DeadlineExceeded: propagation was
//     cancelled via the supplied context before it converged.
package wavefront
