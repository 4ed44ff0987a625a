package debugmap

import (
	"fmt"
	"io"

	"github.com/wavegrid/navfield/gridbuf"
)

// WritePGM writes grid.Cost to w as a raw 8-bit grayscale PGM image:
// "P5", width, height, and maxval 255 each on their own line, followed by
// grid.Size raw bytes in row-major order.
func WritePGM(w io.Writer, grid *gridbuf.Buffers) error {
	if _, err := fmt.Fprintf(w, "P5\n%d\n%d\n%d\n", grid.Width, grid.Height, 0xff); err != nil {
		return err
	}
	_, err := w.Write(grid.Cost)

	return err
}

// WriteEndpoints writes the goal and start coordinates to w as plain
// text, matching the original's "Goal: x y\nStart: x y\n" sidecar file.
func WriteEndpoints(w io.Writer, goal, start [2]int) error {
	_, err := fmt.Fprintf(w, "Goal: %d %d\nStart: %d %d\n", goal[0], goal[1], start[0], start[1])

	return err
}
