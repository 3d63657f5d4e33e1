package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hexes/internal/core"
)

// ansiColors maps core.Color to terminal colour codes.
var ansiColors = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

type styleKey struct {
	color core.Color
	bold  bool
}

// cellStyles holds a plain and a bold style per colour.
var cellStyles = func() map[styleKey]lipgloss.Style {
	styles := map[styleKey]lipgloss.Style{
		{core.ColorDefault, false}: lipgloss.NewStyle(),
		{core.ColorDefault, true}:  lipgloss.NewStyle().Bold(true),
	}
	for c, code := range ansiColors {
		base := lipgloss.NewStyle().Foreground(lipgloss.Color(code))
		styles[styleKey{c, false}] = base
		styles[styleKey{c, true}] = base.Bold(true)
	}
	return styles
}()

// styleFor returns the style of a cell colour, bold when asked.
func styleFor(c core.Color, bold bool) lipgloss.Style {
	if style, ok := cellStyles[styleKey{c, bold}]; ok {
		return style
	}
	return cellStyles[styleKey{core.ColorDefault, bold}]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same style for efficiency
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Bold != start.Bold {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start.Color, start.Bold).Render(run.String()))
		}
	}
	return sb.String()
}
