package gridbuf

// Buffers holds the flat, row-major arrays a navigation-function planner
// reads and writes: cost, potential, the pending-in-a-priority-buffer
// bitmap, and the two gradient components. A cell (x,y) is addressed by
// the linear index y*Width+x.
//
// Buffers is allocated once per (Width,Height) pair and reused across
// plans; Resize only reallocates when the dimensions actually change.
type Buffers struct {
	Width, Height int
	Size          int // Width * Height

	Cost    []uint8   // traversability per cell, 0..255
	Pot     []float64 // potential field; PotHigh means unreached
	Pending []bool    // true iff the cell is currently queued in a priority buffer
	GradX   []float64 // lazily computed unit gradient, x component
	GradY   []float64 // lazily computed unit gradient, y component
}

// NewBuffers allocates a fresh Buffers for the given dimensions.
// Returns ErrInvalidDimensions if nx or ny is not strictly positive.
func NewBuffers(nx, ny int) (*Buffers, error) {
	b := &Buffers{}
	if err := b.Resize(nx, ny); err != nil {
		return nil, err
	}

	return b, nil
}

// Resize reallocates all arrays for the given dimensions. If the
// dimensions are unchanged from the current allocation, it is a no-op:
// callers get buffer reuse for free by calling Resize on every
// ConfigureSize instead of tracking dimension changes themselves.
func (b *Buffers) Resize(nx, ny int) error {
	if nx <= 0 || ny <= 0 {
		return ErrInvalidDimensions
	}
	if b.Width == nx && b.Height == ny && b.Cost != nil {
		return nil
	}

	ns := nx * ny
	b.Width, b.Height, b.Size = nx, ny, ns
	b.Cost = make([]uint8, ns)
	b.Pot = make([]float64, ns)
	b.Pending = make([]bool, ns)
	b.GradX = make([]float64, ns)
	b.GradY = make([]float64, ns)

	return nil
}

// Index maps a cell coordinate to its linear index. Caller must ensure
// (x,y) is in bounds; no check is performed, matching the hot-path
// "no bounds checking here" contract of the wavefront update rule.
func (b *Buffers) Index(x, y int) int {
	return y*b.Width + x
}

// Coord maps a linear index back to its (x,y) coordinate.
func (b *Buffers) Coord(k int) (x, y int) {
	return k % b.Width, k / b.Width
}

// InBounds reports whether (x,y) lies within [0,Width)x[0,Height).
func (b *Buffers) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// SealBorder forces every cell on the outer ring (row 0, row Height-1,
// column 0, column Width-1) to CostObs, guaranteeing that any interior
// cell's four neighbors are always addressable without bounds checks.
func (b *Buffers) SealBorder() {
	for x := 0; x < b.Width; x++ {
		b.Cost[b.Index(x, 0)] = CostObs
		b.Cost[b.Index(x, b.Height-1)] = CostObs
	}
	for y := 0; y < b.Height; y++ {
		b.Cost[b.Index(0, y)] = CostObs
		b.Cost[b.Index(b.Width-1, y)] = CostObs
	}
}

// Reset prepares the potential, pending, and gradient arrays for a new
// propagation: every potential is set to PotHigh, every pending flag is
// cleared, and both gradient components are zeroed. Cost is left
// untouched — it is owned by the cost translator, not by propagation
// setup.
func (b *Buffers) Reset() {
	for i := range b.Pot {
		b.Pot[i] = PotHigh
		b.Pending[i] = false
		b.GradX[i] = 0
		b.GradY[i] = 0
	}
}

// CountObstacles returns the number of cells whose cost is at or above
// CostObs, the same statistic the original engine collects (as nobs) to
// report propagation coverage.
func (b *Buffers) CountObstacles() int {
	n := 0
	for _, c := range b.Cost {
		if c >= CostObs {
			n++
		}
	}

	return n
}
