// Package costmap translates an externally encoded occupancy cost grid into
// the internal cost scale owned by package gridbuf, and seals obstacles at
// the grid boundary.
//
// What:
//
//   - Translate maps each external byte value v onto the internal scale:
//     values below gridbuf.CostObsROS become CostNeutral + CostFactor*v
//     (clamped below CostObs); the external "unknown" marker becomes a
//     passable-but-expensive cell when unknown cells are allowed; anything
//     else becomes a lethal obstacle.
//   - An optional debug perimeter mode additionally marks a 7-cell border
//     as obstacles, matching the original non-ROS PGM debug convenience.
//
// Why:
//
//   - Decouples the wavefront engine (package wavefront) from whatever
//     encoding an occupancy-map provider happens to use, so the propagation
//     code only ever sees the fixed internal scale.
//
// Complexity:
//
//   - Translate: O(nx*ny).
//
// Errors:
//
//   - ErrDimensionMismatch: the external grid's length does not match
//     dst.Size.
package costmap
