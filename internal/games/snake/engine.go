package snake

import (
	"math/rand"
	"slices"
	"time"
)

// Engine owns all mutable state of a session and advances it one step per Tick.
// It is not safe for concurrent use: a single driver must serialize Tick and
// SetDirection calls.
type Engine struct {
	settings Settings
	rng      *rand.Rand
	tick     uint64

	head Position
	tail []Position // tail[0] follows the head

	direction Direction // Applied on the last tick
	heading   Direction // Last applied direction other than DirStopped
	pending   Direction // Applied on the next tick

	food   Position
	score  int
	growth int // Segments eaten but not yet added to the tail
	speed  time.Duration
	status Status

	last TickResult
}

// NewEngine creates an engine and initializes it with the given settings.
func NewEngine(s Settings) *Engine {
	e := &Engine{}
	e.Initialize(s)
	return e
}

// Initialize resets every piece of state to the session start defaults:
// head at the board center, stopped, random food, zero score, running.
func (e *Engine) Initialize(s Settings) TickResult {
	e.settings = s
	e.rng = rand.New(rand.NewSource(s.Seed))
	e.tick = 0

	e.head = s.Grid.Center()
	e.tail = nil

	e.direction = DirStopped
	e.heading = DirStopped
	e.pending = DirStopped

	e.score = 0
	e.growth = 0
	e.speed = s.Speed.Initial
	e.status = StatusRunning

	// The first food always avoids the starting cell, whatever the policy.
	e.food = e.freeCell([]Position{e.head})

	e.last = e.snapshot()
	return e.last
}

// Restart begins a fresh session with the same settings and a new seed.
func (e *Engine) Restart() TickResult {
	s := e.settings
	s.Seed = e.rng.Int63()
	return e.Initialize(s)
}

// SetDirection queues d for the next tick. Requests are ignored once the
// session is over, for unknown values, and when d would reverse the snake
// into its own neck. DirStopped is always accepted.
func (e *Engine) SetDirection(d Direction) {
	if e.status == StatusOver || !d.Valid() {
		return
	}
	if d != DirStopped && d == e.heading.Opposite() {
		return
	}
	e.pending = d
}

// Tick advances the session by one step and returns the new snapshot.
// After the session is over it returns the frozen final snapshot.
func (e *Engine) Tick() TickResult {
	if e.status == StatusOver {
		return e.last
	}

	e.tick++
	e.direction = e.pending

	// A stopped snake holds its whole body in place.
	if e.direction == DirStopped {
		e.last = e.snapshot()
		return e.last
	}
	e.heading = e.direction

	grid := e.settings.Grid

	// Tail follows the head from where it was before this move.
	tail, vacated := shiftTail(e.tail, e.head)

	dx, dy := e.direction.delta()
	head := Position{
		X: e.head.X + dx*grid.CellSize,
		Y: e.head.Y + dy*grid.CellSize,
	}

	if !grid.Contains(head) {
		e.status = StatusOver
		e.last = e.snapshot()
		return e.last
	}

	if head == e.food {
		e.growth++
		e.score++
		e.speed = e.settings.Speed.next(e.speed)
		e.food = e.respawnFood(head, tail, vacated)
	}

	if slices.Contains(tail, head) {
		e.status = StatusOver
	}

	// A new segment takes the cell the tail tip just left. When the head has
	// moved into that cell the segment waits for the next shift.
	if e.growth > 0 && vacated != head {
		tail = append(tail, vacated)
		e.growth--
	}
	e.head = head
	e.tail = tail

	e.last = e.snapshot()
	return e.last
}

// shiftTail moves every segment into the slot of the one ahead of it, with
// lead taking slot 0. It returns the shifted tail and the cell left behind.
func shiftTail(tail []Position, lead Position) ([]Position, Position) {
	if len(tail) == 0 {
		return nil, lead
	}
	shifted := make([]Position, len(tail), len(tail)+1)
	shifted[0] = lead
	copy(shifted[1:], tail[:len(tail)-1])
	return shifted, tail[len(tail)-1]
}

// Snapshot returns the latest snapshot without advancing the session.
func (e *Engine) Snapshot() TickResult {
	return e.last
}

// TickSpeed returns the interval the tick source should wait before the next tick.
func (e *Engine) TickSpeed() time.Duration {
	return e.speed
}

// Grid returns the board geometry of the current session.
func (e *Engine) Grid() Grid {
	return e.settings.Grid
}

// Settings returns the configuration of the current session.
func (e *Engine) Settings() Settings {
	return e.settings
}

// Direction returns the direction applied on the last tick.
func (e *Engine) Direction() Direction {
	return e.direction
}

// Status returns the session status.
func (e *Engine) Status() Status {
	return e.status
}
