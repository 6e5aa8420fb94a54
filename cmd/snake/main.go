// snake is the classic snake game for the terminal.
//
// Usage:
//
//	snake play               - Play a game
//	snake menu               - Pick a board and difficulty interactively
//	snake boards             - List board presets
//	snake config             - Print the effective configuration
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Load a custom YAML configuration
//	--log-file <path>    - Write logs to a rotating file
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/logging"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic grid game for the terminal: steer the snake,
eat the food, grow longer and speed up until you hit a wall or yourself.

Available commands:
  play     - Play a game
  menu     - Interactive board and difficulty picker
  boards   - Show all board presets
  config   - Print the effective configuration
  serve    - Start SSH server for remote play

Examples:
  snake play
  snake play --board compact --difficulty hard
  snake boards
  snake serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (rotated)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(boardsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads .env, the YAML configuration and SNAKE_* overrides.
func loadConfig() (config.SnakeConfig, error) {
	if err := config.LoadEnvFile(".env"); err != nil {
		return config.SnakeConfig{}, err
	}
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return config.SnakeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.SnakeConfig{}, err
	}
	return cfg, nil
}

// newLogger builds the command logger. Interactive commands keep the
// terminal clean and only log to --log-file.
func newLogger(prefix string, console bool) (*logging.Logger, error) {
	return logging.New(logging.Options{
		Prefix:  prefix,
		Level:   flagLogLevel,
		File:    flagLogFile,
		Console: console,
	})
}
