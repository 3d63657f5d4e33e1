// Package hex provides the tri-axial coordinate model for hexagonal boards.
// This package is UI-agnostic and has no dependencies outside the standard library.
//
// Every cell carries three coordinates. Cells sharing a coordinate value lie on
// one straight line of the board, and two distinct cells share at most one of
// the three. For a board of radius n the layout is:
//
//	       -n, n, 0   ....   0, n, n
//	   ....                          ....
//	-n, 0,-n   ....   0, 0, 0   ....   n, 0, n
//	   ....                          ....
//	        0,-n,-n   ....   n,-n, 0
//
// Every generated coordinate satisfies z = x + y.
package hex

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRadius is returned when a board radius is negative.
var ErrInvalidRadius = errors.New("hex: radius must be non-negative")

// Coord is a position in tri-axial coordinates.
type Coord struct {
	X int
	Y int
	Z int
}

// C is a convenience constructor for Coord.
func C(x, y, z int) Coord {
	return Coord{X: x, Y: y, Z: z}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Add returns the componentwise sum of two coordinates.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y, Z: c.Z + other.Z}
}

// Sub returns the componentwise difference of two coordinates.
func (c Coord) Sub(other Coord) Coord {
	return Coord{X: c.X - other.X, Y: c.Y - other.Y, Z: c.Z - other.Z}
}

// Sign returns the coordinate with every component reduced to -1, 0 or 1.
func (c Coord) Sign() Coord {
	return Coord{X: sign(c.X), Y: sign(c.Y), Z: sign(c.Z)}
}

// Scale multiplies every component by k.
func (c Coord) Scale(k int) Coord {
	return Coord{X: c.X * k, Y: c.Y * k, Z: c.Z * k}
}

// Manhattan returns the sum of absolute componentwise differences.
func (c Coord) Manhattan(other Coord) int {
	return abs(c.X-other.X) + abs(c.Y-other.Y) + abs(c.Z-other.Z)
}

// Distance returns the number of single steps between two coordinates.
func (c Coord) Distance(other Coord) int {
	return c.Manhattan(other) / 2
}

// CellCount returns the number of cells on a board of radius n (3n² + 3n + 1).
func CellCount(n int) int {
	if n < 0 {
		return 0
	}
	return 3*n*n + 3*n + 1
}

// Generate returns the coordinates of a board of radius n in canonical order:
// rows from y = -n to y = n, each row ordered by increasing x.
// The order is stable and defines the initial cell indices.
func Generate(n int) ([]Coord, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRadius, n)
	}

	coords := make([]Coord, 0, CellCount(n))
	for i := -n; i <= n; i++ {
		x := -n
		z := -n
		if i < 0 {
			x -= i
		} else {
			z += i
		}
		length := 2*n + 1 - abs(i)
		for j := 0; j < length; j++ {
			coords = append(coords, C(x+j, i, z+j))
		}
	}
	return coords, nil
}

// Adjacent reports whether two coordinates are exactly one step apart.
func Adjacent(a, b Coord) bool {
	return a.Manhattan(b) == 2
}

// Neighbors returns the six coordinates one step away from c.
// Some of them may lie outside the board.
func Neighbors(c Coord) [6]Coord {
	return [6]Coord{
		c.Add(C(1, 0, 1)),
		c.Add(C(-1, 0, -1)),
		c.Add(C(0, 1, 1)),
		c.Add(C(0, -1, -1)),
		c.Add(C(1, -1, 0)),
		c.Add(C(-1, 1, 0)),
	}
}

// ToPlane projects a coordinate onto the 2D plane for presentation.
// Neighbours along a row are 2 units apart; rows are √3 units apart with y growing upward.
func ToPlane(c Coord) (px, py float64) {
	return float64(c.X + c.Z), -float64(c.Y) * math.Sqrt(3)
}

// Column returns the integer horizontal position used by character-cell renderers.
// It equals the x component of ToPlane.
func Column(c Coord) int {
	return c.X + c.Z
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
