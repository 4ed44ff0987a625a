package pqueue

import "github.com/wavegrid/navfield/gridbuf"

// role names the three logical buffers; Queue tracks which physical slot
// currently plays each role.
type role int

const (
	roleCur role = iota
	roleNext
	roleOver
	numRoles
)

// Queue is the wavefront engine's three-buffer bucketed priority queue. It
// reads and writes grid.Pending and grid.Cost directly, since admission and
// double-insertion prevention are defined in terms of those arrays.
type Queue struct {
	grid     *gridbuf.Buffers
	capacity int

	slots [numRoles][]int // three owned, fixed-capacity backing arrays
	lens  [numRoles]int   // occupancy of each physical slot

	cur, next, over int // role -> physical slot index
}

// NewQueue allocates a Queue bound to grid, with the given options.
func NewQueue(grid *gridbuf.Buffers, opts ...Option) *Queue {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	q := &Queue{
		grid:     grid,
		capacity: cfg.Capacity,
		cur:      int(roleCur),
		next:     int(roleNext),
		over:     int(roleOver),
	}
	for i := range q.slots {
		q.slots[i] = make([]int, cfg.Capacity)
	}

	return q
}

// Reset clears all three buffers and restores the canonical cur/next/over
// role assignment, ahead of a fresh propagation.
func (q *Queue) Reset() {
	q.lens = [numRoles]int{}
	q.cur, q.next, q.over = int(roleCur), int(roleNext), int(roleOver)
}

// push is the single admission predicate shared by PushCur/PushNext/PushOver:
// a cell index n is admitted to slot iff it is in range, not already
// pending in some buffer, not an obstacle, and the slot has spare capacity.
func (q *Queue) push(slot int, n int) bool {
	if n < 0 || n >= q.grid.Size {
		return false
	}
	if q.grid.Pending[n] {
		return false
	}
	if q.grid.Cost[n] >= gridbuf.CostObs {
		return false
	}
	if q.lens[slot] >= q.capacity {
		return false
	}

	q.slots[slot][q.lens[slot]] = n
	q.lens[slot]++
	q.grid.Pending[n] = true

	return true
}

// PushCur admits cell n into the current bucket.
func (q *Queue) PushCur(n int) bool { return q.push(q.cur, n) }

// PushNext admits cell n into the next bucket (tentative potential < threshold).
func (q *Queue) PushNext(n int) bool { return q.push(q.next, n) }

// PushOver admits cell n into the overflow bucket (tentative potential >= threshold).
func (q *Queue) PushOver(n int) bool { return q.push(q.over, n) }

// Cur returns the current bucket's occupied cell indices.
func (q *Queue) Cur() []int { return q.slots[q.cur][:q.lens[q.cur]] }

// CurLen reports how many cells are queued in the current bucket.
func (q *Queue) CurLen() int { return q.lens[q.cur] }

// NextLen reports how many cells are queued in the next bucket.
func (q *Queue) NextLen() int { return q.lens[q.next] }

// OverLen reports how many cells are queued in the overflow bucket.
func (q *Queue) OverLen() int { return q.lens[q.over] }

// Empty reports whether both the current and next buckets are drained; this
// is the propagator's wavefront-exhausted termination condition.
func (q *Queue) Empty() bool { return q.lens[q.cur] == 0 && q.lens[q.next] == 0 }

// ClearPendingCur clears grid.Pending for every cell currently in the
// current bucket, ahead of processing it; a cell may be re-admitted to a
// different bucket during this same pass once its pending flag is cleared.
func (q *Queue) ClearPendingCur() {
	for _, k := range q.Cur() {
		q.grid.Pending[k] = false
	}
}

// SwapCurNext rotates roles so the next bucket becomes current and the old
// current bucket becomes the (now empty) next bucket. O(1): no cell index
// is copied between slots.
func (q *Queue) SwapCurNext() {
	q.cur, q.next = q.next, q.cur
	q.lens[q.next] = 0
}

// SwapCurOver rotates roles so the overflow bucket becomes current and the
// old current bucket becomes the (now empty) overflow bucket, used when the
// current bucket drains and the threshold is raised.
func (q *Queue) SwapCurOver() {
	q.cur, q.over = q.over, q.cur
	q.lens[q.over] = 0
}
