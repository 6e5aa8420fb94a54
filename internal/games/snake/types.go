package snake

import "time"

// Grid is the immutable board geometry for a session.
// Positions are expressed in pixel units: multiples of CellSize.
type Grid struct {
	CellSize int // Pixels per cell
	Columns  int // Board width in cells
	Rows     int // Board height in cells
}

// Width returns the board width in pixel units.
func (g Grid) Width() int {
	return g.Columns * g.CellSize
}

// Height returns the board height in pixel units.
func (g Grid) Height() int {
	return g.Rows * g.CellSize
}

// Contains reports whether p lies inside [0, Width) x [0, Height).
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.Width() && p.Y >= 0 && p.Y < g.Height()
}

// Cells returns the number of cells on the board.
func (g Grid) Cells() int {
	return g.Columns * g.Rows
}

// At returns the position of the cell at column col and row row.
func (g Grid) At(col, row int) Position {
	return Position{X: col * g.CellSize, Y: row * g.CellSize}
}

// Center returns the starting head position.
func (g Grid) Center() Position {
	return g.At(g.Columns/2, g.Rows/2)
}

// Cell converts a position back to column and row.
func (g Grid) Cell(p Position) (col, row int) {
	return p.X / g.CellSize, p.Y / g.CellSize
}

// Position is a cell-aligned coordinate pair.
type Position struct {
	X, Y int
}

// NoFood marks the food slot as empty. Only used when the board is full.
var NoFood = Position{X: -1, Y: -1}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirStopped Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Valid reports whether d is one of the defined directions.
func (d Direction) Valid() bool {
	return d >= DirStopped && d <= DirRight
}

// Opposite returns the reverse heading. DirStopped has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirStopped
	}
}

// delta returns the unit step for d on each axis.
func (d Direction) delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirStopped:
		return "stopped"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Status is the session state. StatusOver is terminal.
type Status int

const (
	StatusRunning Status = iota
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// Speed describes the tick interval progression.
// Each food eaten shortens the interval by Step, never below Floor.
type Speed struct {
	Initial time.Duration
	Step    time.Duration
	Floor   time.Duration
}

// DefaultSpeed returns the classic 100ms start, 2ms step, 50ms floor curve.
func DefaultSpeed() Speed {
	return Speed{
		Initial: 100 * time.Millisecond,
		Step:    2 * time.Millisecond,
		Floor:   50 * time.Millisecond,
	}
}

// next returns the interval after one more food.
func (s Speed) next(cur time.Duration) time.Duration {
	return max(s.Floor, cur-s.Step)
}

// FoodPolicy controls which cells are eligible when food respawns.
type FoodPolicy string

const (
	// FoodFree only spawns food on cells the snake does not occupy.
	FoodFree FoodPolicy = "free"
	// FoodAnywhere spawns food on any board cell, including the snake's body.
	FoodAnywhere FoodPolicy = "anywhere"
)

// Settings is the full configuration for one session.
type Settings struct {
	Grid  Grid
	Speed Speed
	Food  FoodPolicy
	Seed  int64
}
