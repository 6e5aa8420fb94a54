package snake

import (
	"slices"
	"time"
)

// TickResult is the render-ready snapshot emitted after every tick.
// It carries everything a renderer needs without knowing any game rules.
type TickResult struct {
	Tick      uint64
	Head      Position
	Tail      []Position // Ordered from neck to tip
	Food      Position
	Score     int
	Status    Status
	Direction Direction
	TickSpeed time.Duration
}

// Length returns the number of tail segments.
func (r TickResult) Length() int {
	return len(r.Tail)
}

// Over reports whether the session has ended.
func (r TickResult) Over() bool {
	return r.Status == StatusOver
}

// Occupies reports whether the head or any tail segment sits on p.
func (r TickResult) Occupies(p Position) bool {
	return r.Head == p || slices.Contains(r.Tail, p)
}

// snapshot copies the engine state so callers cannot alias the tail slice.
func (e *Engine) snapshot() TickResult {
	return TickResult{
		Tick:      e.tick,
		Head:      e.head,
		Tail:      slices.Clone(e.tail),
		Food:      e.food,
		Score:     e.score,
		Status:    e.status,
		Direction: e.direction,
		TickSpeed: e.speed,
	}
}
