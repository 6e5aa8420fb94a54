// Package config provides YAML-based game configuration loading, board
// presets and difficulty management for the snake game.
package config

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// BoardAuto selects the largest board preset that fits the terminal.
const BoardAuto = "auto"

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board  string                 `yaml:"board"` // Default preset name or "auto"
	Boards map[string]BoardConfig `yaml:"boards"`
	Speed  SpeedConfig            `yaml:"speed"`
	Food   FoodConfig             `yaml:"food"`
}

// BoardConfig defines the geometry of one board preset.
type BoardConfig struct {
	Columns  int `yaml:"columns"`
	Rows     int `yaml:"rows"`
	CellSize int `yaml:"cell_size"`
}

// SpeedConfig defines the tick interval progression in milliseconds.
type SpeedConfig struct {
	InitialMS int `yaml:"initial_ms"`
	StepMS    int `yaml:"step_ms"`
	FloorMS   int `yaml:"floor_ms"`
}

// FoodConfig defines how food is placed.
type FoodConfig struct {
	Policy string `yaml:"policy"` // "free" or "anywhere"
}

// Grid converts the preset to engine geometry.
func (b BoardConfig) Grid() snake.Grid {
	return snake.Grid{
		CellSize: b.CellSize,
		Columns:  b.Columns,
		Rows:     b.Rows,
	}
}

// Speed converts the progression to engine durations.
func (s SpeedConfig) Speed() snake.Speed {
	return snake.Speed{
		Initial: time.Duration(s.InitialMS) * time.Millisecond,
		Step:    time.Duration(s.StepMS) * time.Millisecond,
		Floor:   time.Duration(s.FloorMS) * time.Millisecond,
	}
}

// BoardNames returns the preset names ordered from the largest board to the
// smallest, ties broken by name.
func (c SnakeConfig) BoardNames() []string {
	names := slices.Sorted(maps.Keys(c.Boards))
	slices.SortStableFunc(names, func(a, b string) int {
		return c.Boards[b].Columns*c.Boards[b].Rows - c.Boards[a].Columns*c.Boards[a].Rows
	})
	return names
}

// ResolveBoard turns a requested board name into a concrete preset.
// An empty name falls back to the configured default. "auto" picks the first
// preset, largest first, for which fits returns true, or the smallest one
// when none fit.
func (c SnakeConfig) ResolveBoard(name string, fits func(snake.Grid) bool) (string, BoardConfig, error) {
	if name == "" {
		name = c.Board
	}
	if name == "" || name == BoardAuto {
		names := c.BoardNames()
		if len(names) == 0 {
			return "", BoardConfig{}, fmt.Errorf("config: no board presets defined")
		}
		for _, n := range names {
			if fits == nil || fits(c.Boards[n].Grid()) {
				return n, c.Boards[n], nil
			}
		}
		last := names[len(names)-1]
		return last, c.Boards[last], nil
	}

	b, ok := c.Boards[name]
	if !ok {
		return "", BoardConfig{}, fmt.Errorf("config: unknown board %q (available: %v)", name, c.BoardNames())
	}
	return name, b, nil
}

// Settings builds engine settings for the named board.
func (c SnakeConfig) Settings(board string, seed int64) (snake.Settings, error) {
	b, ok := c.Boards[board]
	if !ok {
		return snake.Settings{}, fmt.Errorf("config: unknown board %q", board)
	}
	return snake.Settings{
		Grid:  b.Grid(),
		Speed: c.Speed.Speed(),
		Food:  snake.FoodPolicy(c.Food.Policy),
		Seed:  seed,
	}, nil
}

// Validate reports the first setting the engine cannot run with.
func (c SnakeConfig) Validate() error {
	if len(c.Boards) == 0 {
		return fmt.Errorf("config: no board presets defined")
	}
	if c.Board != "" && c.Board != BoardAuto {
		if _, ok := c.Boards[c.Board]; !ok {
			return fmt.Errorf("config: default board %q is not defined", c.Board)
		}
	}
	for name, b := range c.Boards {
		if name == BoardAuto {
			return fmt.Errorf("config: board name %q is reserved", BoardAuto)
		}
		if b.Columns <= 0 || b.Rows <= 0 || b.CellSize <= 0 {
			return fmt.Errorf("config: board %q: columns, rows and cell_size must be positive", name)
		}
	}

	s := c.Speed
	if s.InitialMS <= 0 || s.FloorMS <= 0 {
		return fmt.Errorf("config: speed: initial_ms and floor_ms must be positive")
	}
	if s.StepMS < 0 {
		return fmt.Errorf("config: speed: step_ms must not be negative")
	}
	if s.FloorMS > s.InitialMS {
		return fmt.Errorf("config: speed: floor_ms %d exceeds initial_ms %d", s.FloorMS, s.InitialMS)
	}

	switch snake.FoodPolicy(c.Food.Policy) {
	case snake.FoodFree, snake.FoodAnywhere:
	default:
		return fmt.Errorf("config: food: unknown policy %q", c.Food.Policy)
	}
	return nil
}
