package wavefront_test

import (
	"context"
	"fmt"

	"github.com/wavegrid/navfield/costmap"
	"github.com/wavegrid/navfield/gridbuf"
	"github.com/wavegrid/navfield/pqueue"
	"github.com/wavegrid/navfield/wavefront"
)

// ExamplePropagate runs a Dijkstra-mode wavefront over an open 5x5 grid.
// The goal cell is always seeded to potential zero, and on an open grid the
// wavefront always reaches every other cell.
func ExamplePropagate() {
	grid, _ := gridbuf.NewBuffers(5, 5)
	_ = costmap.Translate(grid, make([]uint8, 25))
	q := pqueue.NewQueue(grid)

	goal := grid.Index(3, 3)
	start := grid.Index(1, 1)

	_, found, err := wavefront.Propagate(context.Background(), grid, q, wavefront.ModeDijkstra, goal, start)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(found, grid.Pot[goal])
	// Output: true 0
}
