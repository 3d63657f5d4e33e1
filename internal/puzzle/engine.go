package puzzle

import (
	"sort"

	"github.com/vovakirdan/tui-hexes/internal/hex"
)

// Move is a recorded move: the indices of the picked cells.
// Shift and Flip use only I1 and I2; I3 is conventionally 0.
type Move struct {
	I1 int
	I2 int
	I3 int
}

// Apply validates and performs one move of the given pack.
// It returns false, leaving the board untouched, when the move is rejected.
// With undo set, Shift and Spin run with I1 and I2 swapped and Blink
// decrements colours; Flip is its own inverse.
func (b *Board) Apply(pack Pack, m Move, undo bool) bool {
	if m.I1 == m.I2 {
		return false
	}
	i1, i2, i3 := m.I1, m.I2, m.I3
	if undo && (pack == PackShift || pack == PackSpin) {
		i1, i2 = i2, i1
	}

	switch pack {
	case PackShift:
		return b.shift(i1, i2)
	case PackFlip:
		return b.flip(i1, i2)
	case PackSpin:
		return b.spin(i1, i2, i3)
	case PackBlink:
		return b.blink(i1, i2, i3, undo)
	default:
		return false
	}
}

// lineKey returns the coordinate that grows along a line of the given axis.
func lineKey(a Axis, c hex.Coord) int {
	if a == AxisX {
		return c.Y
	}
	return c.X
}

// collect returns the indices matching keep, plus i1 and i2, ordered along the axis.
func (b *Board) collect(a Axis, i1, i2 int, keep func(k int) bool) []int {
	var line []int
	for k := range b.cells {
		if k == i1 || k == i2 || keep(k) {
			line = append(line, k)
		}
	}
	sort.Slice(line, func(p, q int) bool {
		return lineKey(a, b.coord(line[p])) < lineKey(a, b.coord(line[q]))
	})
	return line
}

func (b *Board) coordsOf(indices []int) []hex.Coord {
	coords := make([]hex.Coord, len(indices))
	for p, i := range indices {
		coords[p] = b.coord(i)
	}
	return coords
}

// shift rotates the whole line through i1 and i2 by the offset from i1 to i2, wrapping at the rim.
func (b *Board) shift(i1, i2 int) bool {
	a := b.Alignment(i1, i2)
	if a == AxisNone {
		return false
	}
	line := b.collect(a, i1, i2, func(k int) bool { return b.Alignment(k, i1) == a })
	coords := b.coordsOf(line)
	n := len(line)
	offset := lineKey(a, b.coord(i2)) - lineKey(a, b.coord(i1))

	moved := make([]hex.Coord, n)
	for p := range line {
		moved[p] = coords[((p+offset)%n+n)%n]
	}
	b.place(line, moved)
	return true
}

// flip mirrors the segment from i1 to i2.
func (b *Board) flip(i1, i2 int) bool {
	a := b.Alignment(i1, i2)
	if a == AxisNone {
		return false
	}
	segment := b.collect(a, i1, i2, func(k int) bool { return b.Between(i1, i2, k) })
	coords := b.coordsOf(segment)
	n := len(segment)

	moved := make([]hex.Coord, n)
	for p := range segment {
		moved[p] = coords[n-1-p]
	}
	b.place(segment, moved)
	return true
}

// spin rotates the rim of the triangle i1, i2, i3 by one edge length,
// carrying the cell at i1's corner to i2's corner.
func (b *Board) spin(i1, i2, i3 int) bool {
	if !b.FormsTriangle(i1, i2, i3) {
		return false
	}
	corners := [3]hex.Coord{b.coord(i1), b.coord(i2), b.coord(i3)}
	length := corners[0].Distance(corners[1])
	if length == 0 ||
		corners[1].Distance(corners[2]) != length ||
		corners[2].Distance(corners[0]) != length {
		return false
	}

	n := 3 * length
	ring := make([]hex.Coord, n)
	cells := make([]int, n)
	for e := 0; e < 3; e++ {
		start := corners[e]
		step := corners[(e+1)%3].Sub(start).Sign()
		for s := 0; s < length; s++ {
			c := start.Add(step.Scale(s))
			idx, ok := b.IndexAt(c)
			if !ok {
				return false
			}
			ring[e*length+s] = c
			cells[e*length+s] = idx
		}
	}

	moved := make([]hex.Coord, n)
	for p := range cells {
		moved[p] = ring[(p+length)%n]
	}
	b.place(cells, moved)
	return true
}

// blink cycles the colour of every cell in or on the triangle i1, i2, i3.
func (b *Board) blink(i1, i2, i3 int, undo bool) bool {
	if !b.FormsTriangle(i1, i2, i3) {
		return false
	}
	step := 1
	if undo {
		step = b.colours - 1
	}

	var hit []int
	for q := range b.cells {
		if b.InTriangle(i1, i2, i3, q, false) {
			hit = append(hit, q)
		}
	}
	for _, q := range hit {
		b.cells[q].Colour = (b.cells[q].Colour + step) % b.colours
	}
	return true
}
