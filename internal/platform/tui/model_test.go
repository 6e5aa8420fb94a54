package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func newTestModel(t *testing.T) (Model, *snake.Game) {
	t.Helper()
	game := snake.New("classic", snake.Settings{
		Grid:  snake.Grid{CellSize: 25, Columns: 20, Rows: 20},
		Speed: snake.DefaultSpeed(),
		Food:  snake.FoodFree,
	})
	// One extra row for the help bar leaves an 80x30 game screen.
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 31, Seed: 1}, nil)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should start the tick loop")
	}
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, cmd := update(t, m, TickMsg{Loop: m.loop})
	if cmd == nil {
		t.Fatal("every tick should schedule the next one")
	}
	return m
}

func TestKeyChangesDirection(t *testing.T) {
	m, game := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = tick(t, m)

	if d := game.Snapshot().Direction; d != snake.DirRight {
		t.Errorf("Expected right, got %v", d)
	}
}

func TestStaleTickIgnored(t *testing.T) {
	m, game := newTestModel(t)

	_, cmd := update(t, m, TickMsg{Loop: m.loop + 1})
	if cmd != nil {
		t.Error("A tick from another loop should not be rescheduled")
	}
	if tick := game.Snapshot().Tick; tick != 0 {
		t.Errorf("A tick from another loop should not advance the game, got tick %d", tick)
	}
}

func TestMouseClickOnPad(t *testing.T) {
	m, game := newTestModel(t)

	// The up button sits at (60, 12) on an 80x30 game screen.
	m, _ = update(t, m, tea.MouseMsg{
		X:      61,
		Y:      12,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	m = tick(t, m)
	if d := game.Snapshot().Direction; d != snake.DirUp {
		t.Errorf("Expected up after pad click, got %v", d)
	}

	// Releases and other buttons are ignored
	m, _ = update(t, m, tea.MouseMsg{
		X:      55,
		Y:      13,
		Action: tea.MouseActionRelease,
		Button: tea.MouseButtonLeft,
	})
	m = tick(t, m)
	if d := game.Snapshot().Direction; d != snake.DirUp {
		t.Errorf("Release should not steer, got %v", d)
	}
}

func TestResizeKeepsSession(t *testing.T) {
	m, game := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = tick(t, m)
	before := game.Snapshot()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	after := game.Snapshot()

	if before.Head != after.Head || before.Tick != after.Tick {
		t.Errorf("Resize should not reset the session: %+v vs %+v", before, after)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("Screen should be 100x39, got %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	m, game := newTestModel(t)

	// Restart is ignored while running
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = tick(t, m)
	m, _ = update(t, m, runeKey('r'))
	if tick := game.Snapshot().Tick; tick != 1 {
		t.Fatalf("Restart while running should be ignored, got tick %d", tick)
	}

	for i := 0; i < 30 && !m.State().GameOver; i++ {
		m = tick(t, m)
	}
	if !m.State().GameOver {
		t.Fatal("snake should have hit the top wall")
	}

	m, _ = update(t, m, runeKey('r'))
	if m.State().GameOver {
		t.Error("Game should be running after restart")
	}
	if snap := game.Snapshot(); snap.Score != 0 || snap.Tick != 0 {
		t.Errorf("Restart should start a fresh session, got %+v", snap)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("q should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestBackToMenu(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("esc should do nothing without a menu")
	}

	m = m.WithBack()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc should go back to the menu once enabled")
	}
}

func TestViewShowsBoardAndHelp(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	for _, want := range []string{"Score: 0", "Board: classic", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View should contain %q", want)
		}
	}
}
