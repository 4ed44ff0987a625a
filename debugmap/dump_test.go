package debugmap_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wavegrid/navfield/debugmap"
	"github.com/wavegrid/navfield/gridbuf"
)

func TestWritePGM_HeaderAndBody(t *testing.T) {
	grid, err := gridbuf.NewBuffers(4, 3)
	require.NoError(t, err)
	for i := range grid.Cost {
		grid.Cost[i] = uint8(i)
	}

	var buf bytes.Buffer
	require.NoError(t, debugmap.WritePGM(&buf, grid))

	want := []byte("P5\n4\n3\n255\n")
	want = append(want, grid.Cost...)
	require.Equal(t, want, buf.Bytes())
}

func TestWriteEndpoints(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, debugmap.WriteEndpoints(&buf, [2]int{8, 8}, [2]int{1, 1}))
	require.Equal(t, "Goal: 8 8\nStart: 1 1\n", buf.String())
}
