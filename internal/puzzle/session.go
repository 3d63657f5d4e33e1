package puzzle

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-hexes/internal/hex"
)

// ErrScrambleRejected is returned when an authored scramble move is not legal on the board.
var ErrScrambleRejected = errors.New("puzzle: scramble move rejected")

// EventKind tells the observer how a move was applied.
type EventKind uint8

const (
	EventMove EventKind = iota
	EventUndo
	EventRedo
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventMove:
		return "move"
	case EventUndo:
		return "undo"
	case EventRedo:
		return "redo"
	default:
		return "unknown"
	}
}

// MoveEvent describes an applied move. Changed lists the cells whose
// coordinate or colour changed.
type MoveEvent struct {
	Kind    EventKind
	Move    Move
	Changed []int
}

// Observer is notified after every applied move, undo and redo.
// It must not call back into the session.
type Observer func(MoveEvent)

// Config describes a puzzle to build.
type Config struct {
	Radius int
	Pack   Pack
	// Layout holds one colour per cell in grid generation order.
	Layout []int
	// Colours raises the colour count above max(Layout)+1 when set.
	Colours int
	// Scramble is replayed in order, as undos, on the solved layout.
	Scramble []Move
	// Par is the target move count; zero means len(Scramble).
	Par int
	// Seed drives the colour relabelling.
	Seed    int64
	Permute bool
	// Observer is optional.
	Observer Observer
}

// Session is a single puzzle in play. It owns the board and routes every
// move through the engine, the evaluator and the history.
// A Session is not safe for concurrent use.
type Session struct {
	pack     Pack
	board    *Board
	preview  []Cell
	history  History
	moves    int
	par      int
	grouping Grouping
	observer Observer
}

// NewSession builds the board, relabels colours and replays the scramble.
func NewSession(cfg Config) (*Session, error) {
	if !cfg.Pack.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPack, cfg.Pack)
	}
	board, err := NewBoard(cfg.Radius, cfg.Layout, cfg.Colours)
	if err != nil {
		return nil, err
	}

	mapping := identity(board.ColourCount())
	if cfg.Permute {
		rng := rand.New(rand.NewSource(cfg.Seed))
		mapping = colourMapping(cfg.Pack, board.ColourCount(), rng)
	}
	board.Recolour(mapping)

	s := &Session{
		pack:     cfg.Pack,
		board:    board,
		preview:  board.Cells(),
		par:      cfg.Par,
		observer: cfg.Observer,
	}
	if s.par <= 0 {
		s.par = len(cfg.Scramble)
	}

	for i, m := range cfg.Scramble {
		if !board.Apply(cfg.Pack, m, true) {
			return nil, fmt.Errorf("%w: #%d %s", ErrScrambleRejected, i+1, m)
		}
	}
	s.grouping = board.Evaluate(cfg.Pack)
	return s, nil
}

// Pack returns the session's pack.
func (s *Session) Pack() Pack { return s.pack }

// Radius returns the board radius.
func (s *Session) Radius() int { return s.board.Radius() }

// CellCount returns the number of cells.
func (s *Session) CellCount() int { return s.board.Len() }

// ColourCount returns the number of colours in play.
func (s *Session) ColourCount() int { return s.board.ColourCount() }

// CellAt returns the current state of cell i.
func (s *Session) CellAt(i int) (Cell, bool) { return s.board.Cell(i) }

// Cells returns a snapshot of every cell.
func (s *Session) Cells() []Cell { return s.board.Cells() }

// IndexAt returns the cell occupying c.
func (s *Session) IndexAt(c hex.Coord) (int, bool) { return s.board.IndexAt(c) }

// Preview returns the solved arrangement the scramble started from.
func (s *Session) Preview() []Cell {
	out := make([]Cell, len(s.preview))
	copy(out, s.preview)
	return out
}

// IsSolved reports whether the win condition of the pack holds.
func (s *Session) IsSolved() bool { return s.grouping.Solved }

// Grouped reports whether cell i belongs to a fully connected colour.
// For Blink it reports whether the whole board is uniform.
func (s *Session) Grouped(i int) bool {
	c, ok := s.board.Cell(i)
	if !ok {
		return false
	}
	return s.grouping.Colours[c.Colour]
}

// MoveCount returns the number of moves currently standing.
func (s *Session) MoveCount() int { return s.moves }

// Par returns the target move count.
func (s *Session) Par() int { return s.par }

// CanUndo reports whether Undo has a move to take back.
func (s *Session) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether Redo has a move to replay.
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// History returns the moves that can be undone, oldest first.
func (s *Session) History() []Move { return s.history.Moves() }

// Alignment returns the axis shared by cells i and j.
func (s *Session) Alignment(i, j int) Axis { return s.board.Alignment(i, j) }

// Between reports whether k lies on the segment from i to j.
func (s *Session) Between(i, j, k int) bool { return s.board.Between(i, j, k) }

// FormsTriangle reports whether i, j, k are the corners of a triangle.
func (s *Session) FormsTriangle(i, j, k int) bool { return s.board.FormsTriangle(i, j, k) }

// InTriangle reports whether q lies in (or with edgeOnly, on the rim of) triangle i, j, k.
func (s *Session) InTriangle(i, j, k, q int, edgeOnly bool) bool {
	return s.board.InTriangle(i, j, k, q, edgeOnly)
}

// TryMove applies a player move. A rejected move changes nothing,
// the redo stack included.
func (s *Session) TryMove(i1, i2, i3 int) bool {
	m := Move{I1: i1, I2: i2, I3: i3}
	if !s.apply(EventMove, m, false) {
		return false
	}
	s.history.Record(m)
	return true
}

// Undo takes back the latest move.
func (s *Session) Undo() bool {
	_, ok := s.history.Undo(func(m Move, undo bool) bool {
		return s.apply(EventUndo, m, undo)
	})
	return ok
}

// Redo replays the latest undone move.
func (s *Session) Redo() bool {
	_, ok := s.history.Redo(func(m Move, undo bool) bool {
		return s.apply(EventRedo, m, undo)
	})
	return ok
}

func (s *Session) apply(kind EventKind, m Move, undo bool) bool {
	var before []Cell
	if s.observer != nil {
		before = s.board.Cells()
	}

	if !s.board.Apply(s.pack, m, undo) {
		return false
	}

	if undo {
		if s.moves > 0 {
			s.moves--
		}
	} else {
		s.moves++
	}
	s.grouping = s.board.Evaluate(s.pack)

	if s.observer != nil {
		var changed []int
		for i, c := range s.board.cells {
			if c != before[i] {
				changed = append(changed, i)
			}
		}
		s.observer(MoveEvent{Kind: kind, Move: m, Changed: changed})
	}
	return true
}
