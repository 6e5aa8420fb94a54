package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagBoard      string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing snake.

Controls:
  Arrows/WASD  - Steer
  Space/X      - Stop
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit
  Mouse        - Click the on-screen direction pad

Boards:
  classic - 20x20 cells
  compact - 18x18 cells
  auto    - classic if the terminal fits it, otherwise compact

Difficulty options:
  easy   - Slower start, gentle speed-up
  normal - Configured speed curve
  hard   - Fast start, steep speed-up
  fixed  - Constant speed, no progression

Examples:
  snake play
  snake play --board compact
  snake play --difficulty hard
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBoard, "board", "", "Board preset: classic, compact, auto (default from config)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// terminalSize returns the size of stdout, or the default screen size when
// it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	def := core.DefaultConfig()
	return def.ScreenW, def.ScreenH
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplySnakePreset(&cfg, preset)

	width, height := terminalSize()
	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	fits := func(g snake.Grid) bool {
		// One row is kept for the help bar
		return snake.Fits(g, width, height-1)
	}
	board, _, err := cfg.ResolveBoard(flagBoard, fits)
	if err != nil {
		return err
	}
	settings, err := cfg.Settings(board, flagSeed)
	if err != nil {
		return err
	}

	logger, err := newLogger("snake", false)
	if err != nil {
		return err
	}
	defer logger.Close()
	logger.Debug("config loaded", "board", board, "difficulty", preset, "food", settings.Food)

	return tui.Run(snake.New(board, settings), rc, logger.Logger)
}
