package costmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wavegrid/navfield/costmap"
	"github.com/wavegrid/navfield/gridbuf"
)

func newExternal(nx, ny int, fill uint8) []uint8 {
	ext := make([]uint8, nx*ny)
	for i := range ext {
		ext[i] = fill
	}

	return ext
}

func TestTranslate_DimensionMismatch(t *testing.T) {
	b, err := gridbuf.NewBuffers(4, 4)
	require.NoError(t, err)

	err = costmap.Translate(b, make([]uint8, 3))
	require.ErrorIs(t, err, costmap.ErrDimensionMismatch)
}

func TestTranslate_FreeSpaceScales(t *testing.T) {
	b, err := gridbuf.NewBuffers(5, 5)
	require.NoError(t, err)
	ext := newExternal(5, 5, 0)

	require.NoError(t, costmap.Translate(b, ext))

	// Interior cells at external value 0 map to CostNeutral; border is sealed.
	require.Equal(t, uint8(gridbuf.CostNeutral), b.Cost[b.Index(2, 2)])
	require.Equal(t, uint8(gridbuf.CostObs), b.Cost[b.Index(0, 0)])
}

func TestTranslate_LethalPassesThrough(t *testing.T) {
	b, err := gridbuf.NewBuffers(5, 5)
	require.NoError(t, err)
	ext := newExternal(5, 5, gridbuf.CostObs)

	require.NoError(t, costmap.Translate(b, ext))
	require.Equal(t, uint8(gridbuf.CostObs), b.Cost[b.Index(2, 2)])
}

func TestTranslate_UnknownDisallowedBecomesObstacle(t *testing.T) {
	b, err := gridbuf.NewBuffers(5, 5)
	require.NoError(t, err)
	ext := newExternal(5, 5, gridbuf.CostUnknownExt)

	require.NoError(t, costmap.Translate(b, ext))
	require.Equal(t, uint8(gridbuf.CostObs), b.Cost[b.Index(2, 2)])
}

func TestTranslate_UnknownAllowedBecomesExpensiveButPassable(t *testing.T) {
	b, err := gridbuf.NewBuffers(5, 5)
	require.NoError(t, err)
	ext := newExternal(5, 5, gridbuf.CostUnknownExt)

	require.NoError(t, costmap.Translate(b, ext, costmap.WithAllowUnknown(true)))
	require.Equal(t, uint8(gridbuf.CostObs-1), b.Cost[b.Index(2, 2)])
}

func TestTranslate_ClampsAtCostObsMinusOne(t *testing.T) {
	b, err := gridbuf.NewBuffers(5, 5)
	require.NoError(t, err)
	// Largest value still below CostObsROS; CostNeutral + CostFactor*252 = 251.6,
	// which must stay at or below CostObs-1.
	ext := newExternal(5, 5, gridbuf.CostObsROS-1)

	require.NoError(t, costmap.Translate(b, ext))
	require.LessOrEqual(t, b.Cost[b.Index(2, 2)], uint8(gridbuf.CostObs-1))
}

func TestTranslate_DebugPerimeter(t *testing.T) {
	b, err := gridbuf.NewBuffers(20, 20)
	require.NoError(t, err)
	ext := newExternal(20, 20, 0)

	require.NoError(t, costmap.Translate(b, ext, costmap.WithDebugPerimeter(true)))

	// Cell at (3,3) lies within the 7-cell debug perimeter.
	require.Equal(t, uint8(gridbuf.CostObs), b.Cost[b.Index(3, 3)])
	// Cell at (10,10) is interior and should translate normally.
	require.Equal(t, uint8(gridbuf.CostNeutral), b.Cost[b.Index(10, 10)])
}

func TestTranslate_SealsOuterBorder(t *testing.T) {
	b, err := gridbuf.NewBuffers(6, 6)
	require.NoError(t, err)
	ext := newExternal(6, 6, 0)

	require.NoError(t, costmap.Translate(b, ext))

	for x := 0; x < b.Width; x++ {
		require.Equal(t, uint8(gridbuf.CostObs), b.Cost[b.Index(x, 0)])
		require.Equal(t, uint8(gridbuf.CostObs), b.Cost[b.Index(x, b.Height-1)])
	}
}
