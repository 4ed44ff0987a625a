// Package tracer performs continuous-space gradient descent over a
// computed potential field (package gridbuf, gradients from package
// gradient) to produce an ordered, sub-cell-resolution path from a start
// cell toward the goal.
//
// What:
//
//   - Trace walks from a start cell toward decreasing potential, advancing
//     a fractional (dx,dy) offset within the current cell by a fixed step
//     size along the locally interpolated gradient.
//   - Oscillation detection catches a two-step period in the emitted path
//     (bouncing between neighboring cells near a plateau).
//   - A grid-walking fallback takes over whenever the local gradient is
//     invalid — any of the current cell's 8 neighbors still unreached, or
//     an oscillation was just detected — by jumping to the lowest-potential
//     neighbor and resetting the sub-cell offset.
//
// Why:
//
//   - Near obstacles or on wide potential plateaus, the interpolated
//     gradient can be zero or ill-defined; falling back to discrete
//     8-neighbor descent preserves progress at the cost of a jagged
//     segment, while resetting the offset avoids interpolating across a
//     discontinuity.
//
// Complexity:
//
//   - Trace: O(MaxLen) steps, each O(1).
//
// Errors:
//
//   - ErrInvalidStart: the (possibly overridden) start cell lies outside
//     the grid.
//
// A nil error with an empty path is not a failure signal by itself in the
// package's error type — it IS the documented "no path found" outcome for
// wavefront-exhausted, budget-exhausted, degenerate-gradient, and
// near-border terminations; callers branch on len(path) == 0, not on err.
package tracer
