package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformBoard(t *testing.T, radius int) *Board {
	t.Helper()
	layout := make([]int, 3*radius*radius+3*radius+1)
	b, err := NewBoard(radius, layout, 1)
	require.NoError(t, err)
	return b
}

func TestAlignment(t *testing.T) {
	b := uniformBoard(t, 2)

	tests := []struct {
		i, j int
		want Axis
	}{
		{0, 18, AxisX},    // (0,-2,-2) - (0,2,2)
		{0, 2, AxisY},     // (0,-2,-2) - (2,-2,0)
		{2, 16, AxisZ},    // (2,-2,0) - (-2,2,0)
		{0, 5, AxisNone},  // (0,-2,-2) - (1,-1,0)
		{9, 9, AxisX},     // a cell shares every axis with itself; X wins
		{-1, 0, AxisNone}, // invalid index
		{0, 19, AxisNone}, // out of range
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, b.Alignment(tc.i, tc.j), "Alignment(%d, %d)", tc.i, tc.j)
	}
}

func TestBetween(t *testing.T) {
	b := uniformBoard(t, 2)

	assert.True(t, b.Between(0, 18, 9), "centre lies on the x=0 line")
	assert.True(t, b.Between(0, 18, 4))
	assert.True(t, b.Between(18, 0, 14), "order of the endpoints does not matter")
	assert.True(t, b.Between(0, 18, 0), "endpoints are included")
	assert.True(t, b.Between(0, 18, 18))
	assert.False(t, b.Between(0, 4, 18), "beyond the segment")
	assert.False(t, b.Between(0, 18, 5), "off the line")
	assert.False(t, b.Between(0, 5, 9), "endpoints not aligned")
}

func TestFormsTriangle(t *testing.T) {
	b := uniformBoard(t, 2)

	assert.True(t, b.FormsTriangle(0, 2, 9))
	assert.True(t, b.FormsTriangle(9, 0, 2), "corner order does not matter")
	assert.True(t, b.FormsTriangle(7, 7, 7), "single-cell triangle")
	assert.False(t, b.FormsTriangle(0, 1, 2), "three cells on one line")
	assert.False(t, b.FormsTriangle(0, 2, 5), "third corner not aligned")
	assert.False(t, b.FormsTriangle(0, 0, 2), "two equal corners")
	assert.False(t, b.FormsTriangle(0, 2, -1))
}

func TestInTriangleSmall(t *testing.T) {
	b := uniformBoard(t, 2)

	inside := map[int]bool{0: true, 1: true, 2: true, 4: true, 5: true, 9: true}
	for q := 0; q < b.Len(); q++ {
		assert.Equal(t, inside[q], b.InTriangle(0, 2, 9, q, false), "cell %d", q)
		assert.Equal(t, inside[q], b.InTriangle(0, 2, 9, q, true), "cell %d (edge only)", q)
	}

	assert.True(t, b.InTriangle(7, 7, 7, 7, false))
	assert.False(t, b.InTriangle(7, 7, 7, 8, false))
	assert.False(t, b.InTriangle(0, 1, 2, 1, false), "not a triangle")
}

func TestInTriangleInterior(t *testing.T) {
	b := uniformBoard(t, 3)

	// (0,-3,-3), (3,-3,0) and (0,0,0) enclose (1,-2,-1).
	interior := 6
	assert.True(t, b.InTriangle(0, 3, 18, interior, false))
	assert.False(t, b.InTriangle(0, 3, 18, interior, true), "interior is not on the rim")

	count := 0
	for q := 0; q < b.Len(); q++ {
		if b.InTriangle(0, 3, 18, q, false) {
			count++
		}
	}
	assert.Equal(t, 10, count, "side-3 triangle covers 10 cells")

	assert.False(t, b.InTriangle(0, 3, 18, 13, false), "(2,-1,1) is outside")
}
