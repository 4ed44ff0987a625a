// Package pqueue implements the wavefront engine's two-level bucketed
// priority queue: three fixed-capacity index buffers whose roles (current /
// next / overflow) rotate by swapping role indices rather than copying data.
//
// What:
//
//   - Queue owns three preallocated []int slots of fixed Capacity and three
//     role indices pointing at which slot is "current", "next", and
//     "overflow" at any moment.
//   - PushCur/PushNext/PushOver all funnel through one admission predicate:
//     a cell index is pushed only if it is in range, not already pending in
//     some buffer, not an obstacle, and the target slot has spare capacity.
//     A capacity overflow silently drops the push — an intentional
//     admission-control policy that bounds memory and still lets the
//     propagator make progress (the cell may be re-admitted later via
//     another neighbor).
//   - SwapCurNext and SwapCurOver rotate roles in O(1): no element is ever
//     copied between slots.
//
// Why:
//
//   - Cells are discovered in roughly increasing potential order; grouping
//     them into coarse threshold buckets gives near-Dijkstra ordering
//     without the O(log n) overhead of a binary heap.
//
// Complexity:
//
//   - Push*: O(1) amortized.
//   - SwapCurNext / SwapCurOver: O(1).
package pqueue
