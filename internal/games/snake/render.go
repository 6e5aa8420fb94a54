package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Screen layout constants.
const (
	hudHeight  = 2 // Status line + separator
	cellWidth  = 2 // Terminal columns per board cell
	padWidth   = 17
	padGap     = 3
	buttonSize = 5
)

// Instructions shown under the board when there is room.
const hintText = "Use arrow keys or WASD to move the snake · Space: stop · Q: quit"

// padButton is one clickable on-screen control.
type padButton struct {
	rect   core.Rect
	label  string
	action core.Action
}

// layout is where each part of the game lands on a screen of a given size.
type layout struct {
	tooSmall bool
	board    core.Rect // Board interior in screen cells
	pad      []padButton
	hintY    int // -1 when the hint does not fit
}

// RequiredSize returns the smallest screen that can show grid.
func RequiredSize(grid Grid) (w, h int) {
	return grid.Columns*cellWidth + 2, hudHeight + grid.Rows + 2
}

// Fits reports whether grid can be shown on a w x h screen.
func Fits(grid Grid, w, h int) bool {
	rw, rh := RequiredSize(grid)
	return w >= rw && h >= rh
}

// computeLayout places the board, the direction pad and the hint line.
func computeLayout(grid Grid, w, h int) layout {
	if !Fits(grid, w, h) {
		return layout{tooSmall: true, hintY: -1}
	}

	frameW := grid.Columns*cellWidth + 2
	total := frameW
	withPad := w >= frameW+padGap+padWidth && grid.Rows >= 3
	if withPad {
		total += padGap + padWidth
	}

	x0 := (w - total) / 2
	l := layout{
		board: core.NewRect(x0+1, hudHeight+1, grid.Columns*cellWidth, grid.Rows),
		hintY: -1,
	}

	if withPad {
		px := x0 + frameW + padGap
		py := l.board.Y + grid.Rows/2 - 1
		l.pad = []padButton{
			{rect: core.NewRect(px+6, py, buttonSize, 1), label: "[ ↑ ]", action: core.ActionUp},
			{rect: core.NewRect(px, py+1, buttonSize, 1), label: "[ ← ]", action: core.ActionLeft},
			{rect: core.NewRect(px+6, py+1, buttonSize, 1), label: "[ ■ ]", action: core.ActionStop},
			{rect: core.NewRect(px+12, py+1, buttonSize, 1), label: "[ → ]", action: core.ActionRight},
			{rect: core.NewRect(px+6, py+2, buttonSize, 1), label: "[ ↓ ]", action: core.ActionDown},
		}
	}

	if y := l.board.Bottom() + 1; y < h {
		l.hintY = y
	}
	return l
}

// renderBoard draws a snapshot. It only reads its arguments, so it can run
// on any schedule independent of the tick loop.
func renderBoard(dst *core.Screen, l layout, grid Grid, snap TickResult, hud string) {
	renderHUD(dst, hud)

	if l.tooSmall {
		rw, rh := RequiredSize(grid)
		screen := core.NewRect(0, 0, dst.Width(), dst.Height())
		renderOverlay(dst, screen, "Window too small", fmt.Sprintf("Need %dx%d", rw, rh))
		return
	}

	dst.DrawBox(core.NewRect(l.board.X-1, l.board.Y-1, l.board.W+2, l.board.H+2))

	// Checkerboard background
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Columns; col++ {
			bg := core.ColorBoardLight
			if (col+row)%2 != 0 {
				bg = core.ColorBoardDark
			}
			fillCell(dst, l, col, row, core.Cell{Rune: ' ', Bg: bg})
		}
	}

	for _, seg := range snap.Tail {
		drawPiece(dst, l, grid, seg, '█', core.ColorSnake)
	}
	drawPiece(dst, l, grid, snap.Head, '█', core.ColorSnakeHead)

	// Food that spawned under the snake is shaded so it stays visible.
	if snap.Food != NoFood {
		r := '█'
		if snap.Occupies(snap.Food) {
			r = '▒'
		}
		drawPiece(dst, l, grid, snap.Food, r, core.ColorFood)
	}

	renderPad(dst, l, snap.Direction)

	if l.hintY >= 0 {
		dst.DrawTextCentered(l.hintY, hintText)
	}

	if snap.Over() {
		renderOverlay(dst, l.board, "Game Over", fmt.Sprintf("Score : %d", snap.Score), "Press R to restart")
	}
}

// fillCell paints every terminal column of board cell (col, row).
func fillCell(dst *core.Screen, l layout, col, row int, c core.Cell) {
	x := l.board.X + col*cellWidth
	y := l.board.Y + row
	for i := 0; i < cellWidth; i++ {
		dst.SetCell(x+i, y, c)
	}
}

// drawPiece fills board cell p with r on top of the board background.
func drawPiece(dst *core.Screen, l layout, grid Grid, p Position, r rune, fg core.Color) {
	if !grid.Contains(p) {
		return
	}
	col, row := grid.Cell(p)
	x := l.board.X + col*cellWidth
	y := l.board.Y + row
	for i := 0; i < cellWidth; i++ {
		c := dst.GetCell(x+i, y)
		c.Rune = r
		c.Fg = fg
		dst.SetCell(x+i, y, c)
	}
}

// renderHUD draws the top status bar.
func renderHUD(dst *core.Screen, hud string) {
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderPad draws the on-screen direction buttons, highlighting the active one.
func renderPad(dst *core.Screen, l layout, dir Direction) {
	active := map[Direction]core.Action{
		DirUp:      core.ActionUp,
		DirDown:    core.ActionDown,
		DirLeft:    core.ActionLeft,
		DirRight:   core.ActionRight,
		DirStopped: core.ActionStop,
	}[dir]

	for _, b := range l.pad {
		fg := core.ColorGray
		if b.action == active {
			fg = core.ColorYellow
		}
		dst.DrawTextColor(b.rect.X, b.rect.Y, b.label, fg)
	}
}

// renderOverlay draws a box centered on area, kept on screen, with one line
// of text per argument.
func renderOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines)*2 + 1
	cx, cy := area.Center()
	boxX := core.Clamp(cx-boxW/2, 0, max(0, dst.Width()-boxW))
	boxY := core.Clamp(cy-boxH/2, 0, max(0, dst.Height()-boxH))

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box)

	for i, line := range lines {
		fg := core.ColorWhite
		if i == 0 {
			fg = core.ColorRed
		}
		x := boxX + (boxW-len([]rune(line)))/2
		dst.DrawTextColor(x, boxY+1+i*2, line, fg)
	}
}
