package puzzle

import "github.com/vovakirdan/tui-hexes/internal/hex"

// Grouping is the result of evaluating a board.
type Grouping struct {
	Solved bool
	// Colours[c] is true when every cell of colour c is connected.
	// For Blink every entry equals Solved.
	Colours []bool
}

// Evaluate recomputes the solved state from scratch.
// Positional packs need every colour to form one connected region;
// Blink needs the whole board in one colour.
func (b *Board) Evaluate(pack Pack) Grouping {
	g := Grouping{Solved: true, Colours: make([]bool, b.colours)}

	if !pack.Positional() {
		first := b.cells[0].Colour
		for _, c := range b.cells {
			if c.Colour != first {
				g.Solved = false
				break
			}
		}
		for c := range g.Colours {
			g.Colours[c] = g.Solved
		}
		return g
	}

	for colour := range g.Colours {
		g.Colours[colour] = b.connected(colour)
		g.Solved = g.Solved && g.Colours[colour]
	}
	return g
}

// connected reports whether the cells of one colour form a single region.
// A colour with no cells counts as connected.
func (b *Board) connected(colour int) bool {
	start, total := -1, 0
	for i, c := range b.cells {
		if c.Colour == colour {
			total++
			if start < 0 {
				start = i
			}
		}
	}
	if total == 0 {
		return true
	}

	reached := floodFill(start, b.neighbours, func(i int) bool {
		return b.cells[i].Colour == colour
	})
	return reached == total
}

// neighbours returns the indices of the cells adjacent to cell i.
func (b *Board) neighbours(i int) []int {
	out := make([]int, 0, 6)
	for _, c := range hex.Neighbors(b.coord(i)) {
		if j, ok := b.IndexAt(c); ok {
			out = append(out, j)
		}
	}
	return out
}

// floodFill walks from start through neighbours accepted by member and
// returns how many cells it reached. It uses an explicit stack.
func floodFill(start int, neighbours func(int) []int, member func(int) bool) int {
	visited := map[int]bool{start: true}
	stack := []int{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nb := range neighbours(cur) {
			if visited[nb] || !member(nb) {
				continue
			}
			visited[nb] = true
			stack = append(stack, nb)
		}
	}
	return len(visited)
}
