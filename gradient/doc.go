// Package gradient computes, and caches, the local unit gradient of a
// potential field at a single cell.
//
// What:
//
//   - Cell returns the gradient magnitude at a cell and stores the unit
//     gradient into grid.GradX/GradY as a side effect; a later call on the
//     same cell returns 1 without recomputing when the stored
//     GradX+GradY is positive, and recomputes otherwise.
//   - At an obstacle-interior cell (potential still PotHigh), the gradient
//     points toward whichever neighbor is already reachable, away from the
//     unreached region; the downward check reads the symmetric neighbor
//     n+Width (not the n+1-style offset that would read the wrong row).
//   - Everywhere else, a two-sided finite difference is used, falling back
//     to a one-sided difference when one side is still unreached.
//
// Why:
//
//   - Package tracer bilinearly interpolates this per-cell gradient between
//     up to four neighboring cells to produce sub-cell descent steps.
//
// Complexity:
//
//   - Cell: O(1).
package gradient
