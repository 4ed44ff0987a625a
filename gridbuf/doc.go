// Package gridbuf owns the flat per-cell arrays shared by a navigation-function
// planner: the cost grid, the potential grid, the pending bitmap, and the two
// gradient grids, plus the fixed cost-scale constants they are defined over.
//
// What:
//
//   - Buffers allocates nx*ny-sized cost/potential/pending/gradient arrays once
//     and reuses them across plans when the dimensions do not change.
//   - SealBorder marks the outer ring of cells as lethal obstacles so every
//     interior cell can safely read all four neighbors without bounds checks.
//   - Reset restores the potential field to "unreached" and clears pending
//     flags and gradients ahead of a fresh propagation, without touching cost.
//
// Why:
//
//   - The wavefront engine in package wavefront, and the tracer in package
//     tracer, both index into these same arrays by linear cell index; keeping
//     allocation and invariants in one place avoids duplicating bounds logic.
//
// Complexity:
//
//   - NewBuffers / Resize: O(nx*ny) to allocate and zero.
//   - Reset / SealBorder: O(nx*ny) and O(nx+ny) respectively.
//
// Errors:
//
//   - ErrInvalidDimensions: nx or ny is not strictly positive.
package gridbuf
