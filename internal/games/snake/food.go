package snake

// respawnFood picks the next food cell after head eats the current one.
// tail is the shifted tail and grown the cell the new segment will occupy.
func (e *Engine) respawnFood(head Position, tail []Position, grown Position) Position {
	if e.settings.Food == FoodAnywhere {
		return e.anyCell()
	}
	occupied := make([]Position, 0, len(tail)+2)
	occupied = append(occupied, head, grown)
	occupied = append(occupied, tail...)
	return e.freeCell(occupied)
}

// anyCell returns a uniformly random cell of the board.
func (e *Engine) anyCell() Position {
	g := e.settings.Grid
	return g.At(e.rng.Intn(g.Columns), e.rng.Intn(g.Rows))
}

// freeCell returns a uniformly random cell not listed in occupied,
// or NoFood when every cell is taken.
func (e *Engine) freeCell(occupied []Position) Position {
	g := e.settings.Grid

	taken := make(map[Position]bool, len(occupied))
	for _, p := range occupied {
		if g.Contains(p) {
			taken[p] = true
		}
	}

	free := g.Cells() - len(taken)
	if free <= 0 {
		return NoFood
	}

	n := e.rng.Intn(free)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			p := g.At(col, row)
			if taken[p] {
				continue
			}
			if n == 0 {
				return p
			}
			n--
		}
	}
	return NoFood
}
