package puzzle

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-hexes/internal/hex"
)

var (
	// ErrLayoutLength is returned when a colour layout does not cover every cell exactly once.
	ErrLayoutLength = errors.New("puzzle: layout length does not match cell count")
	// ErrInvalidColour is returned when a layout holds a negative colour or one outside the colour count.
	ErrInvalidColour = errors.New("puzzle: invalid colour")
)

// Cell is a tile on the board. Its index in the board never changes;
// moves rewrite its coordinate or its colour.
type Cell struct {
	Coord  hex.Coord
	Colour int
}

// Board is the mutable collection of cells of one puzzle.
// The coordinates held by the cells always form the canonical grid of the board's radius.
type Board struct {
	radius  int
	colours int
	cells   []Cell
	at      map[hex.Coord]int
}

// NewBoard places the layout onto a grid of the given radius in canonical order.
// colourCount is raised to max(layout)+1 when smaller.
func NewBoard(radius int, layout []int, colourCount int) (*Board, error) {
	coords, err := hex.Generate(radius)
	if err != nil {
		return nil, err
	}
	if len(layout) != len(coords) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrLayoutLength, len(layout), len(coords))
	}

	colours := colourCount
	for i, c := range layout {
		if c < 0 {
			return nil, fmt.Errorf("%w: cell %d has colour %d", ErrInvalidColour, i, c)
		}
		if c+1 > colours {
			colours = c + 1
		}
	}
	if colours < 1 {
		colours = 1
	}

	b := &Board{
		radius:  radius,
		colours: colours,
		cells:   make([]Cell, len(coords)),
		at:      make(map[hex.Coord]int, len(coords)),
	}
	for i, c := range coords {
		b.cells[i] = Cell{Coord: c, Colour: layout[i]}
		b.at[c] = i
	}
	return b, nil
}

// Radius returns the board radius.
func (b *Board) Radius() int {
	return b.radius
}

// Len returns the number of cells.
func (b *Board) Len() int {
	return len(b.cells)
}

// ColourCount returns the number of colours in play.
func (b *Board) ColourCount() int {
	return b.colours
}

// Valid reports whether i is a cell index.
func (b *Board) Valid(i int) bool {
	return i >= 0 && i < len(b.cells)
}

// Cell returns the cell at index i.
func (b *Board) Cell(i int) (Cell, bool) {
	if !b.Valid(i) {
		return Cell{}, false
	}
	return b.cells[i], true
}

// IndexAt returns the index of the cell currently occupying c.
func (b *Board) IndexAt(c hex.Coord) (int, bool) {
	i, ok := b.at[c]
	return i, ok
}

// Cells returns a copy of every cell in index order.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// Colours returns the colour of every cell in index order.
func (b *Board) Colours() []int {
	out := make([]int, len(b.cells))
	for i, c := range b.cells {
		out[i] = c.Colour
	}
	return out
}

// Recolour maps every cell colour through mapping.
func (b *Board) Recolour(mapping []int) {
	for i := range b.cells {
		b.cells[i].Colour = mapping[b.cells[i].Colour]
	}
}

// place moves cells[indices[k]] onto coords[k]. The coordinates must be a
// permutation of the ones the listed cells already hold.
func (b *Board) place(indices []int, coords []hex.Coord) {
	for k, i := range indices {
		b.cells[i].Coord = coords[k]
		b.at[coords[k]] = i
	}
}

func (b *Board) coord(i int) hex.Coord {
	return b.cells[i].Coord
}
