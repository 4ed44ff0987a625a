// Package costmap translates an external occupancy encoding into the
// internal cost scale defined by package gridbuf.
package costmap

import "github.com/wavegrid/navfield/gridbuf"

// Translate writes the internally scaled cost grid for external into
// dst.Cost, then seals dst's outer border as obstacles. external must have
// exactly dst.Size entries, row-major, matching dst.Index's layout.
//
// Per cell value v:
//   - v < gridbuf.CostObsROS:                cost = clamp(CostNeutral + CostFactor*v, 0, CostObs-1)
//   - v == gridbuf.CostUnknownExt, AllowUnknown: cost = CostObs-1 (passable, very expensive)
//   - otherwise:                               cost = CostObs (lethal obstacle)
//
// With WithDebugPerimeter enabled, an additional 7-cell border is forced to
// CostObs before the outer ring is sealed, matching the original non-ROS
// debug convenience; this is off by default.
func Translate(dst *gridbuf.Buffers, external []uint8, opts ...Option) error {
	if len(external) != dst.Size {
		return ErrDimensionMismatch
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.DebugPerimeter {
		translatePerimeter(dst, external, cfg.AllowUnknown)
	} else {
		for i, v := range external {
			dst.Cost[i] = translateValue(v, cfg.AllowUnknown)
		}
	}

	dst.SealBorder()

	return nil
}

// translateValue maps a single external cost byte onto the internal scale.
func translateValue(v uint8, allowUnknown bool) uint8 {
	if v < gridbuf.CostObsROS {
		scaled := gridbuf.CostNeutral + gridbuf.CostFactor*float64(v)
		if scaled < 0 {
			scaled = 0
		}
		if scaled >= gridbuf.CostObs {
			scaled = gridbuf.CostObs - 1
		}

		return uint8(scaled)
	}
	if v == gridbuf.CostUnknownExt && allowUnknown {
		return gridbuf.CostObs - 1
	}

	return gridbuf.CostObs
}

// translatePerimeter applies the non-ROS debug convenience: cells within 7
// rows/columns of the border are forced to CostObs and skip translation
// entirely; only the interior is translated normally.
func translatePerimeter(dst *gridbuf.Buffers, external []uint8, allowUnknown bool) {
	nx, ny := dst.Width, dst.Height
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			k := dst.Index(x, y)
			if y < 7 || y > ny-8 || x < 7 || x > nx-8 {
				dst.Cost[k] = gridbuf.CostObs
				continue
			}
			dst.Cost[k] = translateValue(external[k], allowUnknown)
		}
	}
}
