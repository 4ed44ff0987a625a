package tracer

import (
	"context"
	"math"

	"github.com/wavegrid/navfield/gradient"
	"github.com/wavegrid/navfield/gridbuf"
)

// Trace descends the potential field in grid from start toward goal,
// returning an ordered sequence of sub-cell points. An empty, nil-error
// result means no path was found: the wavefront never reached start, the
// trace ran into a sealed border, the local gradient vanished, or the
// iteration budget was exhausted before reaching the goal's neighborhood.
//
// ctx is checked once per iteration, mirroring wavefront.Propagate: a
// cancelled or expired ctx stops the trace and returns its error, distinct
// from the zero-length-path "no path found" convention used for the other
// failure kinds above.
func Trace(ctx context.Context, grid *gridbuf.Buffers, goal, start [2]int, opts ...Option) ([]Point, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	st := start
	if cfg.startOverride != nil {
		st = *cfg.startOverride
	}
	if !grid.InBounds(st[0], st[1]) {
		return nil, ErrInvalidStart
	}

	maxLen := cfg.MaxLen
	if maxLen <= 0 {
		maxLen = grid.Size / 2
	}

	w := grid.Width
	ns := grid.Size

	stc := grid.Index(st[0], st[1])
	var dx, dy float64

	path := make([]Point, 0, maxLen)

	for i := 0; i < maxLen; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		nearest := stc + roundInt(dx) + w*roundInt(dy)
		if nearest < 0 {
			nearest = 0
		} else if nearest > ns-1 {
			nearest = ns - 1
		}

		if grid.Pot[nearest] < gridbuf.CostNeutral {
			path = append(path, Point{X: float64(goal[0]), Y: float64(goal[1])})
			return path, nil
		}

		if stc < w || stc > ns-w {
			return nil, nil // ran into the sealed top/bottom border
		}

		path = append(path, Point{X: float64(stc%w) + dx, Y: float64(stc/w) + dy})

		oscillating := len(path) > 2 && path[len(path)-1] == path[len(path)-3]

		stcnx := stc + w
		stcpx := stc - w

		stuck := oscillating ||
			grid.Pot[stc] >= gridbuf.PotHigh ||
			grid.Pot[stc+1] >= gridbuf.PotHigh ||
			grid.Pot[stc-1] >= gridbuf.PotHigh ||
			grid.Pot[stcnx] >= gridbuf.PotHigh ||
			grid.Pot[stcnx+1] >= gridbuf.PotHigh ||
			grid.Pot[stcnx-1] >= gridbuf.PotHigh ||
			grid.Pot[stcpx] >= gridbuf.PotHigh ||
			grid.Pot[stcpx+1] >= gridbuf.PotHigh ||
			grid.Pot[stcpx-1] >= gridbuf.PotHigh

		if stuck {
			minc := stc
			minp := grid.Pot[stc]
			for _, c := range [8]int{stcpx - 1, stcpx, stcpx + 1, stc - 1, stc + 1, stcnx - 1, stcnx, stcnx + 1} {
				if grid.Pot[c] < minp {
					minp = grid.Pot[c]
					minc = c
				}
			}
			stc = minc
			dx, dy = 0, 0

			if grid.Pot[stc] >= gridbuf.PotHigh {
				return nil, nil // every neighbor still unreached
			}
			continue
		}

		gx, gy := interpolateGradient(grid, stc, stcnx, dx, dy)
		if gx == 0 && gy == 0 {
			return nil, nil // degenerate gradient
		}

		scale := cfg.Step / math.Hypot(gx, gy)
		dx += gx * scale
		dy += gy * scale

		for dx > 1 {
			stc++
			dx--
		}
		for dx < -1 {
			stc--
			dx++
		}
		for dy > 1 {
			stc += w
			dy--
		}
		for dy < -1 {
			stc -= w
			dy++
		}
	}

	return nil, nil // iteration budget exhausted
}

// interpolateGradient bilinearly interpolates the cached unit gradient
// across the four cells bracketing (stc, stc+1, stcnx, stcnx+1) at the
// sub-cell offset (dx, dy).
func interpolateGradient(grid *gridbuf.Buffers, stc, stcnx int, dx, dy float64) (float64, float64) {
	gradient.Cell(grid, stc)
	gradient.Cell(grid, stc+1)
	gradient.Cell(grid, stcnx)
	gradient.Cell(grid, stcnx+1)

	x1 := (1-dx)*grid.GradX[stc] + dx*grid.GradX[stc+1]
	x2 := (1-dx)*grid.GradX[stcnx] + dx*grid.GradX[stcnx+1]
	x := (1-dy)*x1 + dy*x2

	y1 := (1-dx)*grid.GradY[stc] + dx*grid.GradY[stc+1]
	y2 := (1-dx)*grid.GradY[stcnx] + dx*grid.GradY[stcnx+1]
	y := (1-dy)*y1 + dy*y2

	return x, y
}

// roundInt rounds v to the nearest integer, ties away from zero.
func roundInt(v float64) int {
	return int(math.Round(v))
}
