package costmap

import "errors"

// Sentinel errors for costmap translation.
var (
	// ErrDimensionMismatch indicates the external grid's length does not
	// equal the destination buffer's Size.
	ErrDimensionMismatch = errors.New("costmap: external grid length does not match destination size")
)

// Options configures a single Translate call.
type Options struct {
	// AllowUnknown, when true, maps the external "unknown" marker to a
	// passable-but-very-expensive cell instead of a lethal obstacle.
	AllowUnknown bool

	// DebugPerimeter enables the non-ROS debug convenience that marks a
	// 7-cell border as obstacles in addition to the border gridbuf already
	// seals. Off by default; intended for visual debugging of raw PGM
	// costmaps only.
	DebugPerimeter bool
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options matching the ROS-style translation: unknown
// cells are treated as obstacles, and no extra debug perimeter is drawn.
func DefaultOptions() Options {
	return Options{
		AllowUnknown:   false,
		DebugPerimeter: false,
	}
}

// WithAllowUnknown toggles whether the external "unknown" marker is treated
// as passable-but-expensive rather than lethal.
func WithAllowUnknown(allow bool) Option {
	return func(o *Options) {
		o.AllowUnknown = allow
	}
}

// WithDebugPerimeter enables the non-ROS 7-cell debug perimeter. This mode
// is a debug convenience for raw PGM costmaps and may be left off for any
// production map source.
func WithDebugPerimeter(enabled bool) Option {
	return func(o *Options) {
		o.DebugPerimeter = enabled
	}
}
