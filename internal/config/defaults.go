package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardAuto,
		Boards: map[string]BoardConfig{
			"classic": {Columns: 20, Rows: 20, CellSize: 25},
			"compact": {Columns: 18, Rows: 18, CellSize: 20},
		},
		Speed: SpeedConfig{
			InitialMS: 100,
			StepMS:    2,
			FloorMS:   50,
		},
		Food: FoodConfig{
			Policy: "free",
		},
	}
}
