package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.DrawText(0, 0, "hi")

	if got := RenderScreen(s); got != "hi \n   " {
		t.Errorf("Unexpected plain render %q", got)
	}
}

func TestRenderScreenColored(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.FillRect(core.NewRect(0, 0, 4, 1), core.Cell{Rune: ' ', Bg: core.ColorBoardLight})
	s.SetCell(1, 0, core.Cell{Rune: '█', Fg: core.ColorSnakeHead, Bg: core.ColorBoardLight})

	got := RenderScreen(s)
	if !strings.Contains(got, "█") {
		t.Errorf("Colored cell should be rendered, got %q", got)
	}
	if strings.Count(got, "\n") != 0 {
		t.Errorf("Single row should have no newline, got %q", got)
	}
}

func TestStyleCacheReuses(t *testing.T) {
	c := styleCache{}
	k := cellStyle{fg: core.ColorFood, bg: core.ColorBoardDark}

	c.get(k)
	c.get(k)
	c.get(cellStyle{fg: core.ColorSnake})

	if len(c) != 2 {
		t.Errorf("Expected 2 cached styles, got %d", len(c))
	}
}
