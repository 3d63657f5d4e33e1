// Package puzzle implements the rule engine of the hexagonal tile puzzle:
// geometry predicates, the four move kinds, the solved-state evaluator,
// undo/redo history and the Session façade driven by the presentation layer.
//
// The package is UI-agnostic, deterministic for a given seed, and holds no
// package-level mutable state.
package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPack is returned when a pack name is not recognized.
var ErrUnknownPack = errors.New("puzzle: unknown pack")

// Pack is a rule set: it fixes the move kind and the win condition of a board.
type Pack uint8

const (
	PackShift Pack = iota
	PackFlip
	PackSpin
	PackBlink
)

// Packs returns every pack in canonical order.
func Packs() []Pack {
	return []Pack{PackShift, PackFlip, PackSpin, PackBlink}
}

// String returns the lower-case pack name.
func (p Pack) String() string {
	switch p {
	case PackShift:
		return "shift"
	case PackFlip:
		return "flip"
	case PackSpin:
		return "spin"
	case PackBlink:
		return "blink"
	default:
		return "unknown"
	}
}

// Title returns the display name of the pack.
func (p Pack) Title() string {
	switch p {
	case PackShift:
		return "Shift Pack"
	case PackFlip:
		return "Flip Pack"
	case PackSpin:
		return "Spin Pack"
	case PackBlink:
		return "Blink Pack"
	default:
		return "Unknown Pack"
	}
}

// Valid reports whether p is one of the four packs.
func (p Pack) Valid() bool {
	return p <= PackBlink
}

// Picks returns how many cells a move of this pack involves.
func (p Pack) Picks() int {
	if p == PackSpin || p == PackBlink {
		return 3
	}
	return 2
}

// Positional reports whether moves of this pack relocate cells.
// Positional packs are solved by connectivity, Blink by uniform colour.
func (p Pack) Positional() bool {
	return p != PackBlink
}

// ParsePack converts a pack name (case-insensitive) to a Pack.
func ParsePack(s string) (Pack, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shift":
		return PackShift, nil
	case "flip":
		return PackFlip, nil
	case "spin":
		return PackSpin, nil
	case "blink":
		return PackBlink, nil
	default:
		return PackShift, fmt.Errorf("%w: %q", ErrUnknownPack, s)
	}
}
