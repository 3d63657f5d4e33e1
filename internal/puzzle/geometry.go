package puzzle

import "github.com/vovakirdan/tui-hexes/internal/hex"

// Axis names the coordinate two cells share.
type Axis uint8

const (
	AxisNone Axis = iota
	AxisX
	AxisY
	AxisZ
)

// String returns the axis letter, or "-" for AxisNone.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "-"
	}
}

// value returns the component of c along the axis.
func (a Axis) value(c hex.Coord) int {
	switch a {
	case AxisX:
		return c.X
	case AxisY:
		return c.Y
	default:
		return c.Z
	}
}

// Alignment returns the axis cells i and j share. X is checked first, then Y, then Z.
// An invalid index yields AxisNone.
func (b *Board) Alignment(i, j int) Axis {
	if !b.Valid(i) || !b.Valid(j) {
		return AxisNone
	}
	ci, cj := b.coord(i), b.coord(j)
	switch {
	case ci.X == cj.X:
		return AxisX
	case ci.Y == cj.Y:
		return AxisY
	case ci.Z == cj.Z:
		return AxisZ
	default:
		return AxisNone
	}
}

// Between reports whether cell k lies on the straight segment from i to j, endpoints included.
func (b *Board) Between(i, j, k int) bool {
	a := b.Alignment(i, j)
	if a == AxisNone || a != b.Alignment(i, k) {
		return false
	}
	ci, cj, ck := b.coord(i), b.coord(j), b.coord(k)
	return within(ck.X, ci.X, cj.X) && within(ck.Y, ci.Y, cj.Y) && within(ck.Z, ci.Z, cj.Z)
}

// FormsTriangle reports whether i, j and k are the corners of a lattice triangle:
// every pair aligned, each on a different axis. Three equal indices form a
// single-cell triangle.
func (b *Board) FormsTriangle(i, j, k int) bool {
	if !b.Valid(i) || !b.Valid(j) || !b.Valid(k) {
		return false
	}
	if i == j && i == k {
		return true
	}
	a1 := b.Alignment(i, j)
	a2 := b.Alignment(i, k)
	a3 := b.Alignment(j, k)
	return a1 != AxisNone && a2 != AxisNone && a3 != AxisNone &&
		a1 != a2 && a1 != a3 && a2 != a3
}

// InTriangle reports whether q is a corner of, on an edge of, or (unless
// edgeOnly) inside the triangle with corners i, j, k.
func (b *Board) InTriangle(i, j, k, q int, edgeOnly bool) bool {
	if !b.FormsTriangle(i, j, k) || !b.Valid(q) {
		return false
	}
	if i == j && i == k {
		return q == i
	}
	if q == i || q == j || q == k {
		return true
	}
	if b.Between(i, j, q) || b.Between(i, k, q) || b.Between(j, k, q) {
		return true
	}
	if edgeOnly {
		return false
	}

	// Each edge fixes one axis; q must sit between that edge and the
	// opposite corner on all three axes.
	ci, cj, ck, cq := b.coord(i), b.coord(j), b.coord(k), b.coord(q)
	edges := [3]struct {
		axis     Axis
		edge     hex.Coord
		opposite hex.Coord
	}{
		{b.Alignment(i, j), ci, ck},
		{b.Alignment(i, k), ci, cj},
		{b.Alignment(j, k), cj, ci},
	}
	for _, e := range edges {
		if !within(e.axis.value(cq), e.axis.value(e.edge), e.axis.value(e.opposite)) {
			return false
		}
	}
	return true
}

// within reports whether v lies in the closed interval spanned by a and b.
func within(v, a, b int) bool {
	if a > b {
		a, b = b, a
	}
	return v >= a && v <= b
}
