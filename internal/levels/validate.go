package levels

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-hexes/internal/hex"
	"github.com/vovakirdan/tui-hexes/internal/puzzle"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks every pack setup of a level.
// Checks:
//   - At least one pack is present
//   - Layout covers the board exactly
//   - The scramble replays without a rejected move
//   - The scrambled board is not already solved
func Validate(l Level) error {
	if len(l.Setups) == 0 {
		return ValidationError{
			Code:    "NO_PACKS",
			Message: fmt.Sprintf("level %s has no pack setups", l.ID),
		}
	}

	for _, pack := range l.Packs() {
		setup := l.Setups[pack]

		if want := hex.CellCount(l.Radius); len(setup.Layout) != want {
			return ValidationError{
				Code:    "LAYOUT_LENGTH",
				Message: fmt.Sprintf("%s/%s: layout has %d cells, radius %d needs %d", l.ID, pack, len(setup.Layout), l.Radius, want),
			}
		}

		cfg, err := l.SessionConfig(pack, 0)
		if err != nil {
			return err
		}
		cfg.Permute = false

		s, err := puzzle.NewSession(cfg)
		if errors.Is(err, puzzle.ErrScrambleRejected) {
			return ValidationError{
				Code:    "SCRAMBLE_REJECTED",
				Message: fmt.Sprintf("%s/%s: %v", l.ID, pack, err),
			}
		}
		if err != nil {
			return ValidationError{
				Code:    "INVALID_SETUP",
				Message: fmt.Sprintf("%s/%s: %v", l.ID, pack, err),
			}
		}

		if s.IsSolved() {
			return ValidationError{
				Code:    "ALREADY_SOLVED",
				Message: fmt.Sprintf("%s/%s: scramble leaves the board solved", l.ID, pack),
			}
		}
	}

	return nil
}
