package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board and difficulty, then play",
	Long: `Start an interactive picker listing every board preset with the
terminal size it needs, and a difficulty selector.

Menu controls:
  Up/Down     - Choose a board
  Left/Right  - Change difficulty
  Enter       - Play
  Q/Esc       - Quit

In game, Esc or B returns to the menu.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger("snake", false)
	if err != nil {
		return err
	}
	defer logger.Close()

	width, height := terminalSize()
	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}
	return tui.RunSession(cfg, rc, logger.Logger)
}
