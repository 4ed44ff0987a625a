package gradient

import (
	"math"

	"github.com/wavegrid/navfield/gridbuf"
)

// Cell computes the unit gradient of grid.Pot at cell n, storing it into
// grid.GradX[n]/grid.GradY[n], and returns its magnitude before
// normalization. Positive GradX/GradY point toward decreasing potential
// (toward the goal). Returns 0 without writing anything if n lies on the
// top or bottom border, where the gradient is undefined.
//
// No bounds checking beyond the top/bottom border guard: callers must only
// invoke this on cells whose left/right neighbors are addressable, which
// the sealed left/right border columns guarantee.
func Cell(grid *gridbuf.Buffers, n int) float64 {
	if grid.GradX[n]+grid.GradY[n] > 0 {
		return 1 // already computed this propagation
	}

	w := grid.Width
	if n < w || n > grid.Size-w {
		return 0 // top or bottom border: undefined
	}

	cv := grid.Pot[n]
	var dx, dy float64

	if cv >= gridbuf.PotHigh {
		// Obstacle interior: point toward whichever side is reachable.
		if grid.Pot[n-1] < gridbuf.PotHigh {
			dx = -gridbuf.CostObs
		} else if grid.Pot[n+1] < gridbuf.PotHigh {
			dx = gridbuf.CostObs
		}
		if grid.Pot[n-w] < gridbuf.PotHigh {
			dy = -gridbuf.CostObs
		} else if grid.Pot[n+w] < gridbuf.PotHigh {
			dy = gridbuf.CostObs
		}
	} else {
		// Two-sided finite difference, skipping any unreached side.
		if grid.Pot[n-1] < gridbuf.PotHigh {
			dx += grid.Pot[n-1] - cv
		}
		if grid.Pot[n+1] < gridbuf.PotHigh {
			dx += cv - grid.Pot[n+1]
		}
		if grid.Pot[n-w] < gridbuf.PotHigh {
			dy += grid.Pot[n-w] - cv
		}
		if grid.Pot[n+w] < gridbuf.PotHigh {
			dy += cv - grid.Pot[n+w]
		}
	}

	norm := math.Hypot(dx, dy)
	if norm > 0 {
		inv := 1.0 / norm
		grid.GradX[n] = inv * dx
		grid.GradY[n] = inv * dy
	}

	return norm
}
