package core

// Events receives gameplay notifications from games.
// The platform wires it to metrics; games never depend on the implementation.
type Events interface {
	// Move is called for every applied move, undo or redo.
	Move(game, kind string)
	// Rejected is called when the player issues an illegal move.
	Rejected(game string)
	// Solved is called once per solved level.
	Solved(game, level string, moves, par int)
}

// NopEvents discards every notification.
type NopEvents struct{}

func (NopEvents) Move(string, string)             {}
func (NopEvents) Rejected(string)                 {}
func (NopEvents) Solved(string, string, int, int) {}
