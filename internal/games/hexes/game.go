// Package hexes plays the hexagon puzzle levels, one registered game per pack.
package hexes

import (
	"fmt"

	"github.com/vovakirdan/tui-hexes/internal/config"
	"github.com/vovakirdan/tui-hexes/internal/core"
	"github.com/vovakirdan/tui-hexes/internal/hex"
	"github.com/vovakirdan/tui-hexes/internal/levels"
	"github.com/vovakirdan/tui-hexes/internal/puzzle"
	"github.com/vovakirdan/tui-hexes/internal/registry"
)

const none = -1

// Cursor steps on screen.
var (
	stepLeft      = hex.C(-1, 0, -1)
	stepRight     = hex.C(1, 0, 1)
	stepUpLeft    = hex.C(0, -1, -1)
	stepUpRight   = hex.C(1, -1, 0)
	stepDownLeft  = hex.C(-1, 1, 0)
	stepDownRight = hex.C(0, 1, 1)
)

// Game is one pack of the puzzle: a level, its session and the player's selection.
type Game struct {
	pack puzzle.Pack
	deps registry.Deps

	palette   []core.Color
	cursorCol core.Color
	selectCol core.Color
	lightCol  core.Color
	frameCol  core.Color

	seed    int64
	tick    uint64
	level   levels.Level
	session *puzzle.Session
	err     error

	cursor  hex.Coord
	wantCol int
	zig     bool
	first   int
	second  int
	fading  []int
	preview bool
	solved  bool
	done    bool
	status  string

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

func init() {
	for i, p := range puzzle.Packs() {
		registry.Register(registry.GameInfo{ID: p.String(), Title: p.Title(), Order: i}, func(d registry.Deps) registry.Game {
			return New(p, d)
		})
	}
}

// New creates a game for pack. Missing dependencies are filled with defaults.
func New(pack puzzle.Pack, deps registry.Deps) *Game {
	d, err := deps.WithDefaults()
	theme := d.Config.Theme
	return &Game{
		pack:      pack,
		deps:      d,
		palette:   theme.Colors(),
		cursorCol: config.Color(theme.Cursor),
		selectCol: config.Color(theme.Selection),
		lightCol:  config.Color(theme.Highlight),
		frameCol:  config.Color(theme.Frame),
		err:       err,
		first:     none,
		second:    none,
	}
}

// ID returns the pack name.
func (g *Game) ID() string { return g.pack.String() }

// Title returns the display name.
func (g *Game) Title() string { return g.pack.Title() }

// Session returns the running session, nil when no level could be built.
func (g *Game) Session() *puzzle.Session { return g.session }

// Level returns the level being played.
func (g *Game) Level() levels.Level { return g.level }

// Err returns why no session could be built, if any.
func (g *Game) Err() error { return g.err }

// Solution returns the standing moves in notation form.
func (g *Game) Solution() string {
	if g.session == nil {
		return ""
	}
	return puzzle.FormatMoves(g.session.History())
}

// Resize adapts to a new screen size without restarting the level.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Reset starts the configured level, or the first level of the pack.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.paused = false
	g.done = false
	g.session = nil

	g.seed = cfg.Seed
	if g.deps.Config.Play.Seed != 0 {
		g.seed = g.deps.Config.Play.Seed
	}

	if g.deps.Levels == nil {
		if g.err == nil {
			g.err = levels.ErrNoLevels
		}
		return
	}

	lvl, ok := g.deps.Levels.First(g.pack)
	if cfg.Level != "" {
		l, err := g.deps.Levels.ByID(cfg.Level)
		switch {
		case err != nil:
			g.err = err
			return
		case !l.Has(g.pack):
			g.err = fmt.Errorf("%w: %s has no %s setup", levels.ErrPackMissing, l.ID, g.pack)
			return
		}
		lvl, ok = l, true
	}
	if !ok {
		g.err = fmt.Errorf("%w for %s", levels.ErrNoLevels, g.pack)
		return
	}
	g.load(lvl)
}

// load builds a fresh session for l.
func (g *Game) load(l levels.Level) {
	cfg, err := l.SessionConfig(g.pack, g.seed)
	if err == nil {
		cfg.Permute = g.deps.Config.Play.Permute
		cfg.Observer = g.observe
		g.session, err = puzzle.NewSession(cfg)
	}
	if err != nil {
		g.err = err
		g.session = nil
		return
	}

	g.err = nil
	g.level = l
	g.cursor = hex.C(0, 0, 0)
	g.wantCol = 0
	g.clearSelection()
	g.fading = make([]int, g.session.CellCount())
	g.preview = false
	g.solved = false
	g.status = ""
	g.checkScreenSize()
}

// observe marks changed cells and forwards the move to the event sink.
func (g *Game) observe(ev puzzle.MoveEvent) {
	for _, i := range ev.Changed {
		g.fading[i] = g.deps.Config.Play.TransitionTicks
	}
	g.deps.Events.Move(g.ID(), ev.Kind.String())
}

// checkScreenSize checks if the screen is large enough for the current level.
func (g *Game) checkScreenSize() {
	w, h := boardSize(g.radius())
	g.tooSmall = g.screenW < w+4 || g.screenH < h+hudHeight+footerHeight+2
}

func (g *Game) radius() int {
	if g.session == nil {
		return 0
	}
	return g.session.Radius()
}

// Step handles the actions of one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	for i := range g.fading {
		if g.fading[i] > 0 {
			g.fading[i]--
		}
	}

	if g.tooSmall || g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.load(g.level)
		return core.StepResult{State: g.State()}
	}

	if g.solved {
		if in.Has(core.ActionNext) {
			g.advance()
		}
		return core.StepResult{State: g.State()}
	}

	g.handleCursor(in)

	switch {
	case in.Has(core.ActionPreview):
		g.preview = !g.preview
	case in.Has(core.ActionClear):
		g.clearSelection()
	case in.Has(core.ActionUndo):
		g.clearSelection()
		if !g.session.Undo() {
			g.status = "Nothing to undo"
		}
	case in.Has(core.ActionRedo):
		g.clearSelection()
		if !g.session.Redo() {
			g.status = "Nothing to redo"
		}
	case in.Has(core.ActionSelect):
		g.pick()
	}

	res := core.StepResult{}
	if g.session.IsSolved() {
		g.solved = true
		g.preview = false
		g.clearSelection()
		g.status = ""
		g.deps.Events.Solved(g.ID(), g.level.ID, g.session.MoveCount(), g.session.Par())
		res.Solved = true
	}
	res.State = g.State()
	return res
}

// handleCursor moves the cursor and drops the preview while the board is browsed.
func (g *Game) handleCursor(in core.InputFrame) {
	moved := false
	for _, m := range []struct {
		action core.Action
		step   hex.Coord
	}{
		{core.ActionLeft, stepLeft},
		{core.ActionRight, stepRight},
		{core.ActionUpLeft, stepUpLeft},
		{core.ActionUpRight, stepUpRight},
		{core.ActionDownLeft, stepDownLeft},
		{core.ActionDownRight, stepDownRight},
	} {
		if in.Has(m.action) && g.moveCursor(m.step) {
			g.wantCol = hex.Column(g.cursor)
			moved = true
		}
	}

	if in.Has(core.ActionUp) {
		moved = g.moveVertical(stepUpLeft, stepUpRight) || moved
	}
	if in.Has(core.ActionDown) {
		moved = g.moveVertical(stepDownLeft, stepDownRight) || moved
	}

	if moved {
		g.preview = false
		g.status = ""
	}
}

// moveVertical steps one row, zig-zagging around the remembered column.
func (g *Game) moveVertical(left, right hex.Coord) bool {
	col := hex.Column(g.cursor)
	first, second := left, right
	switch {
	case col < g.wantCol:
		first, second = right, left
	case col == g.wantCol && g.zig:
		first, second = right, left
	}
	if g.moveCursor(first) {
		g.zig = !g.zig
		return true
	}
	return g.moveCursor(second)
}

func (g *Game) moveCursor(step hex.Coord) bool {
	next := g.cursor.Add(step)
	if _, ok := g.session.IndexAt(next); !ok {
		return false
	}
	g.cursor = next
	return true
}

// pick selects the cell under the cursor and issues a move once enough cells are picked.
func (g *Game) pick() {
	hover, ok := g.session.IndexAt(g.cursor)
	if !ok {
		g.clearSelection()
		return
	}
	if g.first == none {
		g.first = hover
		return
	}

	if g.pack.Picks() == 2 {
		if hover != g.first {
			g.move(g.first, hover, 0)
		}
		g.clearSelection()
		return
	}

	switch {
	case hover == g.first:
		g.first, g.second = g.second, none
	case g.session.Alignment(hover, g.first) == puzzle.AxisNone:
		g.clearSelection()
	case g.second == none:
		g.second = hover
	case hover == g.second:
		g.second = none
	default:
		g.move(g.first, g.second, hover)
		g.clearSelection()
	}
}

func (g *Game) move(i1, i2, i3 int) {
	if g.session.TryMove(i1, i2, i3) {
		g.status = ""
		return
	}
	g.status = "That is not a move"
	g.deps.Events.Rejected(g.ID())
}

func (g *Game) clearSelection() {
	g.first = none
	g.second = none
}

// advance continues with the next level of the pack.
func (g *Game) advance() {
	next, ok := g.deps.Levels.Next(g.level.ID, g.pack)
	if !ok {
		g.done = true
		return
	}
	g.load(next)
}

// highlighted reports whether cell i belongs to the move the cursor would complete.
func (g *Game) highlighted(i int) bool {
	hover, ok := g.session.IndexAt(g.cursor)
	if !ok {
		return false
	}
	s := g.session
	switch {
	case g.first == none:
		return s.Alignment(i, hover) != puzzle.AxisNone
	case g.second == none:
		a := s.Alignment(i, hover)
		return a != puzzle.AxisNone && a == s.Alignment(i, g.first)
	case s.FormsTriangle(hover, g.first, g.second):
		return s.InTriangle(hover, g.first, g.second, i, g.pack == puzzle.PackSpin)
	default:
		return s.FormsTriangle(i, g.first, g.second)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Level:  g.level.ID,
		Solved: g.solved,
		Paused: g.paused || g.tooSmall,
		Quit:   g.done,
	}
	if g.session != nil {
		st.Moves = g.session.MoveCount()
		st.Par = g.session.Par()
	}
	return st
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/QEZC: Move | Space: Pick | X: Clear | -/=: Undo/Redo | V: Preview | R: Restart | P: Pause"
}
