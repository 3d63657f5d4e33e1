package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hexes/internal/registry"
	"github.com/vovakirdan/tui-hexes/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the pack sidebar
	sidebarWidth       = 22  // Width of the pack sidebar
	maxResults         = 100 // Max results to load
	allLevels          = ""  // Level filter showing the whole pack
)

var borderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// ScoreboardKeyMap defines the key bindings for the results screen.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPack key.Binding
	PrevPack key.Binding
	Filter   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPack, k.Filter, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPack, k.PrevPack},
		{k.Filter, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextPack: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next pack"),
		),
		PrevPack: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev pack"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter level"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the results screen.
// It lists the best solves of one pack, optionally narrowed to one level.
type ScoreboardModel struct {
	packs      []registry.GameInfo
	packCursor int
	store      *storage.Store
	results    []storage.Result
	progress   map[string]storage.LevelProgress
	levelIDs   []string // Levels with results, for the filter
	level      string   // Current filter, allLevels for the whole pack
	table      table.Model
	withPlayer bool // Table has the player column
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a new results model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		packs:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.createTable()
	m.selectPack(0)
	return m
}

func (m ScoreboardModel) showSidebar() bool {
	return m.width >= minWidthForSidebar
}

func (m ScoreboardModel) currentPack() string {
	if len(m.packs) == 0 {
		return ""
	}
	return m.packs[m.packCursor].ID
}

// createTable creates a table sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Level", Width: 12},
		{Title: "Moves", Width: 6},
		{Title: "Par", Width: 4},
		{Title: "★", Width: 2},
		{Title: "Date", Width: 12},
	}

	tableWidth := m.width - 4 // Margins
	if m.showSidebar() {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}
	// Show the player column when there is room for it
	m.withPlayer = tableWidth > 60
	if m.withPlayer {
		columns = append(columns, table.Column{Title: "Player", Width: min(tableWidth-60, 16)})
	}

	// Title, blank, header, borders, summary and help
	tableHeight := m.height - 10
	if tableHeight < 5 {
		tableHeight = 5
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// selectPack switches to the pack at index i and clears the level filter.
func (m *ScoreboardModel) selectPack(i int) {
	if len(m.packs) == 0 {
		return
	}
	m.packCursor = i
	m.level = allLevels
	m.progress = nil
	m.levelIDs = nil

	if m.store != nil {
		if p, err := m.store.Progress(m.currentPack()); err == nil {
			m.progress = p
		}
	}
	for id := range m.progress {
		m.levelIDs = append(m.levelIDs, id)
	}
	sort.Strings(m.levelIDs)

	m.loadResults()
}

// cycleLevel steps the filter through allLevels and every level with results.
func (m *ScoreboardModel) cycleLevel() {
	if len(m.levelIDs) == 0 {
		return
	}
	next := 0
	if m.level != allLevels {
		next = sort.SearchStrings(m.levelIDs, m.level) + 1
	}
	if next >= len(m.levelIDs) {
		m.level = allLevels
	} else {
		m.level = m.levelIDs[next]
	}
	m.loadResults()
}

// loadResults loads the results matching the current pack and filter.
func (m *ScoreboardModel) loadResults() {
	m.results = nil
	if m.store != nil {
		if r, err := m.store.TopResults(m.currentPack(), m.level, maxResults); err == nil {
			m.results = r
		}
	}
	m.updateTableRows()
}

// updateTableRows fills the table from the loaded results.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		star := ""
		if r.Bonus() {
			star = "★"
		}
		row := table.Row{
			fmt.Sprintf("%d", i+1),
			r.Level,
			fmt.Sprintf("%d", r.Moves),
			fmt.Sprintf("%d", r.Par),
			star,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
		if m.withPlayer {
			player := r.Player
			if player == "" {
				player = "-"
			}
			row = append(row, player)
		}
		rows[i] = row
	}
	m.table.SetRows(rows)
}

// Init initializes the results model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results screen.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextPack):
			if len(m.packs) > 0 {
				m.selectPack((m.packCursor + 1) % len(m.packs))
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevPack):
			if len(m.packs) > 0 {
				m.selectPack((m.packCursor + len(m.packs) - 1) % len(m.packs))
			}
			return m, nil

		case key.Matches(msg, m.keys.Filter):
			m.cycleLevel()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Scrolling and everything else goes to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results screen.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "RESULTS"
	if len(m.packs) > 0 {
		title = fmt.Sprintf("RESULTS - %s", m.packs[m.packCursor].Title)
	}
	if m.level != allLevels {
		title += " / " + m.level
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	body := borderStyle.Render(m.renderTableContent())
	if m.showSidebar() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", body))
	} else {
		b.WriteString(centerText(m.renderTabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(body, m.width))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.summary()))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar lists the packs for the wide layout.
func (m ScoreboardModel) renderSidebar() string {
	var sidebar strings.Builder
	sidebar.WriteString("Packs\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, p := range m.packs {
		line := "  " + p.Title
		if i == m.packCursor {
			line = selectedStyle.Render("> " + p.Title)
		}
		sidebar.WriteString(line)
		sidebar.WriteString("\n")
	}

	return borderStyle.Width(sidebarWidth).Render(sidebar.String())
}

// renderTabs shows the packs in one line for the narrow layout.
func (m ScoreboardModel) renderTabs() string {
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.packs))
	for i, p := range m.packs {
		if i == m.packCursor {
			tabs[i] = activeTabStyle.Render(p.ID)
		} else {
			tabs[i] = dimStyle.Render(" " + p.ID + " ")
		}
	}

	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 && len(m.packs) > 0 {
		line = fmt.Sprintf("< %s >", m.packs[m.packCursor].ID)
	}
	return line
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.results) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No results recorded yet.\nSolve a level to see it here!")
	}

	return m.table.View()
}

// summary totals the pack's progress.
func (m ScoreboardModel) summary() string {
	solves, bonuses := 0, 0
	for _, p := range m.progress {
		solves += p.Solves
		if p.Bonus {
			bonuses++
		}
	}
	return fmt.Sprintf("Levels solved: %d   Within par: %d   Solves: %d", len(m.progress), bonuses, solves)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the results screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
