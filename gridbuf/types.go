package gridbuf

import "errors"

// Sentinel errors for gridbuf operations.
var (
	// ErrInvalidDimensions indicates a non-positive width or height was requested.
	ErrInvalidDimensions = errors.New("gridbuf: width and height must be positive")
)

// Cost-scale constants, fixed by the wavefront update rule and the cost
// translator. These are not tunable: the quadratic update coefficients in
// package wavefront are fit against this exact scale.
const (
	// CostNeutral is the nominal per-step cost of free space.
	CostNeutral = 50
	// CostObs is the internal lethal-obstacle cost; cells at or above this
	// value never propagate.
	CostObs = 254
	// CostObsROS is the external "inscribed obstacle" threshold used by the
	// cost translator.
	CostObsROS = 253
	// CostUnknownExt is the external "unknown cell" marker.
	CostUnknownExt = 255
	// CostFactor scales an external cost value into the internal range.
	CostFactor = 0.8
)

// PotHigh is the sentinel potential value meaning "not yet reached".
const PotHigh = 1.0e10
