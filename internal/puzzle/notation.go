package puzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidNotation is returned for malformed move or layout strings.
var ErrInvalidNotation = errors.New("puzzle: invalid notation")

// String returns the move as "i1:i2:i3".
func (m Move) String() string {
	return fmt.Sprintf("%d:%d:%d", m.I1, m.I2, m.I3)
}

// ParseMove parses "i1:i2" or "i1:i2:i3". A missing third index is 0.
func ParseMove(s string) (Move, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Move{}, fmt.Errorf("%w: move %q needs 2 or 3 indices", ErrInvalidNotation, s)
	}

	var idx [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Move{}, fmt.Errorf("%w: move %q: %v", ErrInvalidNotation, s, err)
		}
		if v < 0 {
			return Move{}, fmt.Errorf("%w: move %q has a negative index", ErrInvalidNotation, s)
		}
		idx[i] = v
	}
	return Move{I1: idx[0], I2: idx[1], I3: idx[2]}, nil
}

// ParseMoves parses a comma-separated move list. An empty string yields no moves.
func ParseMoves(s string) ([]Move, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	fields := strings.Split(s, ",")
	moves := make([]Move, 0, len(fields))
	for i, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves renders moves in the form accepted by ParseMoves.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, ",")
}

// ParseLayout parses a string of single-digit colour indices, one per cell.
// Whitespace is ignored so authored layouts can be split into rows.
func ParseLayout(s string) ([]int, error) {
	layout := make([]int, 0, len(s))
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			layout = append(layout, int(r-'0'))
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
		default:
			return nil, fmt.Errorf("%w: layout has %q at offset %d", ErrInvalidNotation, r, i)
		}
	}
	if len(layout) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidNotation)
	}
	return layout, nil
}

// FormatLayout renders colours as a digit string.
func FormatLayout(colours []int) string {
	var sb strings.Builder
	sb.Grow(len(colours))
	for _, c := range colours {
		sb.WriteByte(byte('0' + c%10))
	}
	return sb.String()
}
