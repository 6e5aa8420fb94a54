package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// palette maps core.Color to terminal colors. ColorDefault is absent and
// leaves the terminal default in place.
var palette = map[core.Color]lipgloss.TerminalColor{
	core.ColorRed:         lipgloss.Color("1"),
	core.ColorYellow:      lipgloss.Color("3"),
	core.ColorWhite:       lipgloss.Color("7"),
	core.ColorBrightWhite: lipgloss.Color("15"),
	core.ColorGray:        lipgloss.Color("245"),
	core.ColorBoardLight:  lipgloss.AdaptiveColor{Light: "#C9CBE8", Dark: "#414368"},
	core.ColorBoardDark:   lipgloss.AdaptiveColor{Light: "#B7BAD9", Dark: "#373A59"},
	core.ColorSnake:       lipgloss.Color("#97F06C"),
	core.ColorSnakeHead:   lipgloss.Color("#C3FF9E"),
	core.ColorFood:        lipgloss.Color("#FF4D4D"),
}

// cellStyle is the color pair of a run of cells.
type cellStyle struct {
	fg, bg core.Color
}

// styleCache holds one lipgloss style per color pair seen so far.
type styleCache map[cellStyle]lipgloss.Style

func (c styleCache) get(k cellStyle) lipgloss.Style {
	if s, ok := c[k]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if fg, ok := palette[k.fg]; ok {
		s = s.Foreground(fg)
	}
	if bg, ok := palette[k.bg]; ok {
		s = s.Background(bg)
	}
	c[k] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := styleCache{}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.Fg, bg: cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.Fg, bg: cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (cellStyle{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.get(start).Render(run.String()))
		}
	}
	return sb.String()
}
