package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hexes/internal/core"
	"github.com/vovakirdan/tui-hexes/internal/registry"
	"github.com/vovakirdan/tui-hexes/internal/storage"
)

// solutionReporter is implemented by games that can describe the moves of a solve.
type solutionReporter interface {
	Solution() string
}

// resizer is implemented by games that keep their state across resizes.
type resizer interface {
	Resize(w, h int)
}

// Options tune a game model.
type Options struct {
	// Player is stored with each result (the SSH user, empty locally).
	Player string
	// ShowHelp draws the key help line below the board.
	ShowHelp bool
	// Embedded keeps the program running on back; the parent model switches views.
	Embedded bool
}

// Model is the Bubble Tea model for playing one pack.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	opts        Options
	keyMapper   *KeyMapper
	help        help.Model
	inputFrame  core.InputFrame
	gameState   core.GameState
	best        int
	bestLevel   string
	resultSaved bool
	quitting    bool
	backToMenu  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		store:      store,
		config:     cfg,
		opts:       opts,
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.boardHeight(cfg.ScreenH))
	return m
}

// boardHeight leaves room for the help line.
func (m Model) boardHeight(h int) int {
	if m.opts.ShowHelp && h > 1 {
		return h - 1
	}
	return h
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	game := m.game
	cfg := m.config
	cfg.ScreenH = m.boardHeight(cfg.ScreenH)
	game.Reset(cfg)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		return m.leave()
	}
	return m, nil
}

// leave returns to the menu.
func (m Model) leave() (tea.Model, tea.Cmd) {
	m.backToMenu = true
	if m.opts.Embedded {
		return m, nil
	}
	return m, tea.Quit
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	h := m.boardHeight(msg.Height)
	m.screen.Resize(msg.Width, h)
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, h)
		return m, nil
	}
	cfg := m.config
	cfg.ScreenH = h
	m.game.Reset(cfg)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.Level != m.bestLevel {
		m.bestLevel = m.gameState.Level
		m.best = m.lookupBest()
		m.resultSaved = false
	}

	// Save the result once per solve
	if result.Solved && !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}
	if !m.gameState.Solved {
		m.resultSaved = false
	}

	if m.gameState.Quit {
		return m.leave()
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) lookupBest() int {
	if m.store == nil || m.gameState.Level == "" {
		return 0
	}
	best, err := m.store.BestMoves(m.game.ID(), m.gameState.Level)
	if err != nil {
		return 0
	}
	return best
}

func (m *Model) saveResult() {
	if m.store == nil {
		return
	}
	r := storage.Result{
		Pack:   m.game.ID(),
		Level:  m.gameState.Level,
		Moves:  m.gameState.Moves,
		Par:    m.gameState.Par,
		Player: m.opts.Player,
	}
	if s, ok := m.game.(solutionReporter); ok {
		r.Solution = s.Solution()
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveResult(r)
	if m.best == 0 || r.Moves < m.best {
		m.best = r.Moves
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".hexes", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s_%s.txt", m.game.ID(), m.gameState.Level, timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if !m.opts.ShowHelp {
		return out
	}
	return out + "\n" + m.footer()
}

// footer renders the best result and the key help.
func (m Model) footer() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	best := "Best: -"
	if m.best > 0 {
		best = fmt.Sprintf("Best: %d", m.best)
	}
	return style.Render(best + "  " + m.help.View(m.keyMapper.Keys()))
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
// It returns when the player quits or leaves for the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (Model, error) {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if m, ok := final.(Model); ok {
		return m, nil
	}
	return model, nil
}
