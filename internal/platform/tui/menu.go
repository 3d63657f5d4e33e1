package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hexes/internal/core"
	"github.com/vovakirdan/tui-hexes/internal/levels"
	"github.com/vovakirdan/tui-hexes/internal/puzzle"
	"github.com/vovakirdan/tui-hexes/internal/registry"
	"github.com/vovakirdan/tui-hexes/internal/storage"
)

// MenuItem represents a selectable pack in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// levelItem is one row of the level list.
type levelItem struct {
	ID    string
	Name  string
	Par   int
	Best  int
	Bonus bool
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	starStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// MenuModel is the Bubble Tea model for the pack and level picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	levelItems     []levelItem
	levelCursor    int
	inLevelSelect  bool
	width          int
	height         int
	store          *storage.Store
	catalog        *levels.Catalog
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a level
	selectedLevel  string
	openScoreboard bool // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, catalog *levels.Catalog, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		catalog:   catalog,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelKey(action)
		}
		return m.handlePackKey(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handlePackKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			m.levelItems = m.loadLevels(m.items[m.cursor].GameID)
			m.levelCursor = firstUnsolved(m.levelItems)
			m.inLevelSelect = true
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

func (m MenuModel) handleLevelKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionBack:
		m.inLevelSelect = false

	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}

	case MenuActionDown:
		if m.levelCursor < len(m.levelItems)-1 {
			m.levelCursor++
		}

	case MenuActionSelect:
		if len(m.levelItems) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			m.selectedLevel = m.levelItems[m.levelCursor].ID
			return m, tea.Quit // Exit menu to start game
		}
	}

	return m, nil
}

// loadLevels lists the levels of a pack with the player's progress.
func (m MenuModel) loadLevels(gameID string) []levelItem {
	pack, err := puzzle.ParsePack(gameID)
	if err != nil || m.catalog == nil {
		return nil
	}

	var progress map[string]storage.LevelProgress
	if m.store != nil {
		progress, _ = m.store.Progress(gameID)
	}

	var out []levelItem
	for _, l := range m.catalog.ForPack(pack) {
		item := levelItem{ID: l.ID, Name: l.Name}
		if cfg, err := l.SessionConfig(pack, 0); err == nil {
			item.Par = cfg.Par
			if item.Par == 0 {
				item.Par = len(cfg.Scramble)
			}
		}
		if p, ok := progress[l.ID]; ok {
			item.Best = p.Best
			item.Bonus = p.Bonus
		}
		out = append(out, item)
	}
	return out
}

// firstUnsolved returns the index of the first level without a result.
func firstUnsolved(items []levelItem) int {
	for i, it := range items {
		if it.Best == 0 {
			return i
		}
	}
	return 0
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevels()
	}
	return m.viewPacks()
}

func (m MenuModel) viewPacks() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  H E X E S  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a pack", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = selectedStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line+dimStyle.Render(m.packSummary(item.GameID)), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Results  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// packSummary returns "  solved/total ★bonus" for a pack.
func (m MenuModel) packSummary(gameID string) string {
	pack, err := puzzle.ParsePack(gameID)
	if err != nil || m.catalog == nil {
		return ""
	}
	total := len(m.catalog.ForPack(pack))
	if m.store == nil {
		return fmt.Sprintf("  (%d levels)", total)
	}
	progress, err := m.store.Progress(gameID)
	if err != nil {
		return fmt.Sprintf("  (%d levels)", total)
	}
	bonus := 0
	for _, p := range progress {
		if p.Bonus {
			bonus++
		}
	}
	return fmt.Sprintf("  %d/%d ★%d", len(progress), total, bonus)
}

func (m MenuModel) viewLevels() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(strings.ToUpper(m.items[m.cursor].Title)), m.width))
	b.WriteString("\n\n")

	if len(m.levelItems) == 0 {
		b.WriteString(centerText(dimStyle.Render("No levels for this pack."), m.width))
		b.WriteString("\n")
	}

	for i, it := range m.levelItems {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}

		best := "-"
		if it.Best > 0 {
			best = fmt.Sprintf("%d", it.Best)
		}
		line := fmt.Sprintf("%s%-12s %-16s par %2d  best %2s ", cursor, it.ID, it.Name, it.Par, best)
		if i == m.levelCursor {
			line = selectedStyle.Render(line)
		}
		if it.Bonus {
			line += starStyle.Render("★")
		} else {
			line += " "
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Enter: Play  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// SelectedLevel returns the level picked with Selected.
func (m MenuModel) SelectedLevel() string {
	return m.selectedLevel
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Level           string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, catalog *levels.Catalog, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, catalog, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.GameID = m.Selected().GameID
		result.Level = m.SelectedLevel()
	} else {
		result.Quit = true
	}

	return result, nil
}
