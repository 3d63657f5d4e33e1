package hexes

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-hexes/internal/core"
	"github.com/vovakirdan/tui-hexes/internal/hex"
)

const (
	hudHeight    = 2 // Title and counters
	footerHeight = 1 // Status line
	cellStride   = 2 // Screen columns per hex column
)

// boardSize returns the width and height of a board of radius n in screen cells.
// Every hex takes three columns: the glyph and a marker on each side.
func boardSize(n int) (w, h int) {
	return 4*n*cellStride + 3, 2*n + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		g.renderError(dst)
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	n := g.session.Radius()
	w, h := boardSize(n)
	frame := core.Rect{X: (g.screenW - w - 4) / 2, Y: hudHeight, W: w + 4, H: h + 2}

	g.renderHUD(dst)
	dst.DrawBox(frame, g.frameCol)
	g.renderBoard(dst, frame.X+2, frame.Y+1, n)
	g.renderFooter(dst, frame.Bottom())
	g.renderOverlays(dst, frame)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderError(dst *core.Screen) {
	msg := "No level to play"
	if g.err != nil {
		msg = g.err.Error()
	}
	y := g.screenH / 2
	dst.DrawTextCenteredColored(y-1, g.Title(), core.ColorBrightWhite)
	dst.DrawTextCenteredColored(y, msg, core.ColorRed)
	dst.DrawTextCentered(y+1, "Esc: Back")
}

// renderHUD draws the pack, level and move counters.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCenteredColored(0, fmt.Sprintf("%s · %s", g.Title(), g.level.Name), core.ColorBrightWhite)

	pos, total := 0, 0
	for i, l := range g.deps.Levels.ForPack(g.pack) {
		if l.ID == g.level.ID {
			pos = i + 1
		}
		total++
	}
	info := fmt.Sprintf("Level %d/%d   Moves: %d   Par: %d", pos, total, g.session.MoveCount(), g.session.Par())
	if g.preview {
		info += "   [preview]"
	}
	dst.DrawTextCentered(1, info)
}

// renderBoard draws every cell at its screen position, with its markers.
func (g *Game) renderBoard(dst *core.Screen, originX, originY, n int) {
	cells := g.session.Cells()
	if g.preview {
		cells = g.session.Preview()
	}
	cursor, _ := g.session.IndexAt(g.cursor)
	marking := !g.preview && !g.solved

	for i, c := range cells {
		x, y := cellPosition(c.Coord, originX, originY, n)

		glyph := '●'
		if !g.preview && g.session.Grouped(i) {
			glyph = '◉'
		}
		dst.SetCell(x, y, core.Cell{Rune: glyph, Color: g.colour(c.Colour), Bold: g.fading[i] > 0})

		if !marking {
			if c.Coord == g.cursor {
				g.drawMarker(dst, x, y, '[', ']', g.cursorCol)
			}
			continue
		}

		selected := i == g.first || i == g.second
		switch {
		case i == cursor && selected:
			g.drawMarker(dst, x, y, '[', ']', g.selectCol)
		case i == cursor:
			g.drawMarker(dst, x, y, '[', ']', g.cursorCol)
		case selected:
			g.drawMarker(dst, x, y, '(', ')', g.selectCol)
		case g.highlighted(i):
			g.drawMarker(dst, x, y, '·', '·', g.lightCol)
		}
	}
}

// cellPosition maps a coordinate to the screen position of its glyph.
func cellPosition(c hex.Coord, originX, originY, n int) (x, y int) {
	return originX + (hex.Column(c)+2*n)*cellStride + 1, originY + c.Y + n
}

func (g *Game) drawMarker(dst *core.Screen, x, y int, left, right rune, c core.Color) {
	dst.SetCell(x-1, y, core.Cell{Rune: left, Color: c, Bold: true})
	dst.SetCell(x+1, y, core.Cell{Rune: right, Color: c, Bold: true})
}

// colour maps a level colour index to the theme palette.
func (g *Game) colour(i int) core.Color {
	if len(g.palette) == 0 {
		return core.ColorDefault
	}
	return g.palette[core.Wrap(i, len(g.palette))]
}

// renderFooter draws the status line.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	if g.status != "" {
		dst.DrawTextCenteredColored(y, g.status, core.ColorYellow)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, frame core.Rect) {
	centerX, centerY := frame.Center()

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.done:
		g.drawOverlay(dst, centerX, centerY, g.Title()+" complete!", "Esc: Back to menu")
	case g.solved:
		moves, par := g.session.MoveCount(), g.session.Par()
		verdict := fmt.Sprintf("%d over par", moves-par)
		if moves <= par {
			verdict = "Within par!"
		}
		next := "]: Next level | R: Replay"
		if _, ok := g.deps.Levels.Next(g.level.ID, g.pack); !ok {
			next = "]: Finish | R: Replay"
		}
		g.drawOverlay(dst, centerX, centerY, "SOLVED", fmt.Sprintf("Moves: %d  Par: %d", moves, par), verdict, next)
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, utf8.RuneCountInString(line))
	}

	box := core.Rect{W: maxLen + 4, H: len(lines) + 2}
	box.X = centerX - box.W/2
	box.Y = centerY - box.H/2

	// Clear area behind overlay
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, g.frameCol)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawTextColored(x, box.Y+1+i, line, core.ColorBrightWhite)
	}
}
