package puzzle

// ApplyFunc applies a move forward or as an undo and reports success.
type ApplyFunc func(m Move, undo bool) bool

// History holds the undo and redo stacks of a session.
// It records indices only; inversion is the applier's job.
type History struct {
	undo []Move
	redo []Move
}

// Record pushes a successful forward move and clears the redo stack.
func (h *History) Record(m Move) {
	h.undo = append(h.undo, m)
	h.redo = h.redo[:0]
}

// CanUndo reports whether there is a move to undo.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether there is a move to redo.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// Undo pops the latest move and applies it as an undo. On success the
// original record moves to the redo stack. A rejected undo leaves both
// stacks as they were.
func (h *History) Undo(apply ApplyFunc) (Move, bool) {
	if len(h.undo) == 0 {
		return Move{}, false
	}
	m := h.undo[len(h.undo)-1]
	if !apply(m, true) {
		return m, false
	}
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, m)
	return m, true
}

// Redo pops the latest undone move and applies it forward.
func (h *History) Redo(apply ApplyFunc) (Move, bool) {
	if len(h.redo) == 0 {
		return Move{}, false
	}
	m := h.redo[len(h.redo)-1]
	if !apply(m, false) {
		return m, false
	}
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, m)
	return m, true
}

// Moves returns a copy of the undo stack, oldest first.
func (h *History) Moves() []Move {
	out := make([]Move, len(h.undo))
	copy(out, h.undo)
	return out
}

// Reset empties both stacks.
func (h *History) Reset() {
	h.undo = nil
	h.redo = nil
}
