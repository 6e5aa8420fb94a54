package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/logging"
)

// helpHeight is the number of rows reserved under the game for the help bar.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a snake session.
type Model struct {
	game       *snake.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	gameState  core.GameState
	loop       uint64 // Tick loop owned by this model
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards everything.
func NewModel(game *snake.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = logging.Discard().Logger
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		config:    cfg,
		keyMapper: NewKeyMapper(DefaultGameKeyMap()),
		help:      help.New(),
		logger:    logger,
		loop:      nextLoop(),
	}
}

// WithBack enables the back-to-menu key, for sessions that have a menu.
func (m Model) WithBack() Model {
	keys := m.keyMapper.Keys()
	keys.Back.SetEnabled(true)
	m.keyMapper = NewKeyMapper(keys)
	return m
}

// gameHeight is the screen height left for the game after the help bar.
func gameHeight(h int) int {
	return max(0, h-helpHeight)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenH = gameHeight(cfg.ScreenH)
	m.game.Reset(cfg)

	m.logger.Info("game started",
		"board", m.game.Board(),
		"seed", cfg.Seed,
		"interval", m.game.TickInterval(),
	)

	// Start the tick loop
	return tickCmd(m.loop, m.game.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Direction changes reach the engine
// immediately and take effect on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keyMapper.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.backToMenu = true
		return m, nil

	case core.ActionRestart:
		if m.gameState.GameOver {
			m.game.HandleAction(core.ActionRestart)
			m.gameState = m.game.State()
			m.logger.Info("game restarted", "board", m.game.Board())
		}
		return m, nil
	}

	if action.IsMove() {
		m.game.HandleAction(action)
	}
	return m, nil
}

// handleMouse turns left clicks on the on-screen pad into actions.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if action := m.game.ActionAt(msg.X, msg.Y); action.IsMove() {
		m.game.HandleAction(action)
	}
	return m, nil
}

// handleResize refits the screen and layout. The session itself continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	h := gameHeight(msg.Height)
	m.screen.Resize(msg.Width, h)
	m.game.Resize(msg.Width, h)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick advances the engine once and schedules the next tick at the
// engine's current speed.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step()
	m.gameState = result.State

	if m.gameState.GameOver && !wasOver {
		snap := m.game.Snapshot()
		m.logger.Info("game over",
			"board", m.game.Board(),
			"score", snap.Score,
			"ticks", snap.Tick,
		)
		m.logger.Debug("final state\n" + m.game.DebugState())
	}

	return m, tickCmd(m.loop, m.game.TickInterval())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	// Best-effort save, game continues regardless
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
// It only reads the latest snapshot, so redraws never advance the session.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game *snake.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks on the direction pad
	)

	_, err := p.Run()
	return err
}
