package pqueue_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wavegrid/navfield/gridbuf"
	"github.com/wavegrid/navfield/pqueue"
)

func newGrid(t *testing.T, nx, ny int) *gridbuf.Buffers {
	t.Helper()
	b, err := gridbuf.NewBuffers(nx, ny)
	require.NoError(t, err)

	return b
}

func TestQueue_PushAdmitsAndMarksPending(t *testing.T) {
	grid := newGrid(t, 5, 5)
	q := pqueue.NewQueue(grid)

	ok := q.PushCur(7)
	require.True(t, ok)
	require.Equal(t, 1, q.CurLen())
	require.True(t, grid.Pending[7])
	require.Equal(t, []int{7}, q.Cur())
}

func TestQueue_PushRejectsOutOfRange(t *testing.T) {
	grid := newGrid(t, 5, 5)
	q := pqueue.NewQueue(grid)

	require.False(t, q.PushCur(-1))
	require.False(t, q.PushCur(grid.Size))
}

func TestQueue_PushRejectsAlreadyPending(t *testing.T) {
	grid := newGrid(t, 5, 5)
	q := pqueue.NewQueue(grid)

	require.True(t, q.PushCur(3))
	require.False(t, q.PushCur(3), "already-pending cell must not be admitted twice")
	require.Equal(t, 1, q.CurLen())
}

func TestQueue_PushRejectsObstacle(t *testing.T) {
	grid := newGrid(t, 5, 5)
	grid.Cost[3] = gridbuf.CostObs
	q := pqueue.NewQueue(grid)

	require.False(t, q.PushCur(3))
}

func TestQueue_PushRejectsAtCapacity(t *testing.T) {
	grid := newGrid(t, 100, 100)
	q := pqueue.NewQueue(grid, pqueue.WithCapacity(2))

	require.True(t, q.PushCur(1))
	require.True(t, q.PushCur(2))
	require.False(t, q.PushCur(3), "third push must be dropped at capacity 2")
	require.Equal(t, 2, q.CurLen())
}

func TestQueue_Empty(t *testing.T) {
	grid := newGrid(t, 5, 5)
	q := pqueue.NewQueue(grid)
	require.True(t, q.Empty())

	q.PushNext(1)
	require.False(t, q.Empty())
}

func TestQueue_ClearPendingCur(t *testing.T) {
	grid := newGrid(t, 5, 5)
	q := pqueue.NewQueue(grid)
	q.PushCur(1)
	q.PushCur(2)

	q.ClearPendingCur()
	require.False(t, grid.Pending[1])
	require.False(t, grid.Pending[2])
	// Bucket contents remain until the caller advances roles.
	require.Equal(t, 2, q.CurLen())
}

func TestQueue_SwapCurNext(t *testing.T) {
	grid := newGrid(t, 5, 5)
	q := pqueue.NewQueue(grid)
	q.PushCur(1)
	q.PushNext(2)
	q.PushNext(3)

	q.SwapCurNext()
	require.Equal(t, 2, q.CurLen(), "current must now hold the old next bucket's 2 cells")
	require.Equal(t, 0, q.NextLen(), "next must be cleared after the swap")
	require.ElementsMatch(t, []int{2, 3}, q.Cur())
}

func TestQueue_SwapCurOver(t *testing.T) {
	grid := newGrid(t, 5, 5)
	q := pqueue.NewQueue(grid)
	q.PushOver(9)

	q.SwapCurOver()
	require.Equal(t, 1, q.CurLen())
	require.Equal(t, 0, q.OverLen())
	require.Equal(t, []int{9}, q.Cur())
}

func TestQueue_Reset(t *testing.T) {
	grid := newGrid(t, 5, 5)
	q := pqueue.NewQueue(grid)
	q.PushCur(1)
	q.PushNext(2)
	q.PushOver(3)

	q.Reset()
	require.True(t, q.Empty())
	require.Equal(t, 0, q.OverLen())
	// After Reset, the buckets are empty again, but grid.Pending is a
	// separate concern owned by gridbuf.Buffers.Reset, not pqueue.Queue.Reset.
	require.True(t, grid.Pending[1], "pqueue.Reset must not reach into grid.Pending")
	require.True(t, q.PushCur(4))
}
