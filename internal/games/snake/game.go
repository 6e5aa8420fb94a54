package snake

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game adapts the Engine to the platform: it maps semantic actions onto
// direction changes, tracks the screen layout and renders snapshots.
type Game struct {
	board    string // Board preset name, shown in the HUD
	settings Settings
	engine   *Engine
	best     int

	screenW int
	screenH int
	layout  layout
}

// New creates a game for the named board with the given settings.
// The engine is created on the first Reset.
func New(board string, s Settings) *Game {
	return &Game{
		board:    board,
		settings: s,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Board returns the board preset name.
func (g *Game) Board() string {
	return g.board
}

// Reset starts a brand new session seeded from cfg and fitted to its screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	s := g.settings
	s.Seed = cfg.Seed
	if g.engine == nil {
		g.engine = NewEngine(s)
	} else {
		g.engine.Initialize(s)
	}
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize refits the layout to a new screen size without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout = computeLayout(g.settings.Grid, w, h)
}

// HandleAction applies a player action between ticks.
// Direction actions go straight to the engine; Restart only works once the
// session is over.
func (g *Game) HandleAction(a core.Action) {
	if g.engine == nil {
		return
	}
	switch a {
	case core.ActionUp:
		g.engine.SetDirection(DirUp)
	case core.ActionDown:
		g.engine.SetDirection(DirDown)
	case core.ActionLeft:
		g.engine.SetDirection(DirLeft)
	case core.ActionRight:
		g.engine.SetDirection(DirRight)
	case core.ActionStop:
		g.engine.SetDirection(DirStopped)
	case core.ActionRestart:
		if g.engine.Status() == StatusOver {
			g.engine.Restart()
		}
	}
}

// Step advances the engine by one tick. Ticks are held while the window is
// too small to show the board.
func (g *Game) Step() core.StepResult {
	if g.engine != nil && !g.layout.tooSmall {
		res := g.engine.Tick()
		g.best = max(g.best, res.Score)
	}
	return core.StepResult{State: g.State()}
}

// TickInterval returns how long the platform should wait before the next Step.
func (g *Game) TickInterval() time.Duration {
	if g.engine == nil {
		return g.settings.Speed.Initial
	}
	return g.engine.TickSpeed()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{Best: g.best}
	}
	snap := g.engine.Snapshot()
	return core.GameState{
		Score:    snap.Score,
		Best:     g.best,
		GameOver: snap.Over(),
	}
}

// Snapshot returns the latest engine snapshot.
func (g *Game) Snapshot() TickResult {
	if g.engine == nil {
		return TickResult{}
	}
	return g.engine.Snapshot()
}

// ActionAt returns the on-screen pad action under screen cell (x, y),
// or ActionNone when no button is there.
func (g *Game) ActionAt(x, y int) core.Action {
	for _, b := range g.layout.pad {
		if b.rect.Contains(x, y) {
			return b.action
		}
	}
	return core.ActionNone
}

// Render draws the current snapshot to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}
	renderBoard(dst, g.layout, g.engine.Grid(), g.engine.Snapshot(), g.hud())
}

// hud returns the status line text.
func (g *Game) hud() string {
	snap := g.engine.Snapshot()
	line := fmt.Sprintf(" Snake · Score: %d  Best: %d  Speed: %dms  Board: %s",
		snap.Score, g.best, snap.TickSpeed.Milliseconds(), g.board)
	if snap.Direction == DirStopped && !snap.Over() {
		line += "  [stopped]"
	}
	return line
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	if g.engine == nil {
		return "not started\n"
	}
	snap := g.engine.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Status: %s\n", snap.Tick, snap.Score, snap.Status)
	fmt.Fprintf(&b, "Tail len: %d, Direction: %s, Speed: %s\n", snap.Length(), snap.Direction, snap.TickSpeed)
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", snap.Head.X, snap.Head.Y, snap.Food.X, snap.Food.Y)
	return b.String()
}
