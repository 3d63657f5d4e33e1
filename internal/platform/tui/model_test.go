package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hexes/internal/core"
	"github.com/vovakirdan/tui-hexes/internal/games/hexes"
	"github.com/vovakirdan/tui-hexes/internal/puzzle"
	"github.com/vovakirdan/tui-hexes/internal/registry"
	"github.com/vovakirdan/tui-hexes/internal/storage"
)

func newTestModel(t *testing.T, opts Options) (Model, *storage.Store) {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	game := hexes.New(puzzle.PackShift, registry.Deps{})
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 7, Level: "01-hatch"}
	m := NewModel(game, store, cfg, opts)
	m.Init()
	return m, store
}

// send delivers a key and one tick, as the program loop would.
func send(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	next, _ = next.(Model).Update(TickMsg{})
	return next.(Model)
}

func TestModelSavesSolvedResult(t *testing.T) {
	m, store := newTestModel(t, Options{Player: "ann", ShowHelp: true})

	// Cursor starts on the centre cell (3); cell 0 is up-left of it.
	m = send(t, m, runeKey('q'))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, runeKey('c'))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.gameState.Solved {
		t.Fatal("level should be solved")
	}

	results, err := store.TopResults("shift", "01-hatch", 10)
	if err != nil {
		t.Fatalf("TopResults failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.Moves != 1 || r.Par != 1 || r.Player != "ann" || r.Solution != "0:3:0" {
		t.Errorf("unexpected result %+v", r)
	}

	// Further ticks must not save again
	m = send(t, m, runeKey('g'))
	results, _ = store.TopResults("shift", "01-hatch", 10)
	if len(results) != 1 {
		t.Errorf("result saved %d times", len(results))
	}

	if !strings.Contains(m.View(), "Best: 1") {
		t.Error("footer should show the best result")
	}
}

func TestModelBackToMenu(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(Model).BackToMenu() {
		t.Error("esc should return to the menu")
	}
	if cmd == nil {
		t.Error("standalone model should quit the program")
	}

	m, _ = newTestModel(t, Options{Embedded: true})
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(Model).BackToMenu() {
		t.Error("esc should return to the menu")
	}
	if cmd != nil {
		t.Error("embedded model should keep the program running")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !next.(Model).IsQuitting() {
		t.Error("ctrl+c should quit")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}
