package model

// Grid is the square topology of a board. It holds no mutable state.
type Grid struct {
	Size int
}

func (g Grid) Contains(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Size && c.Row >= 0 && c.Row < g.Size
}

// Neighbor returns the cell next to c in direction d. There is no wraparound:
// ok is false exactly when c lies on the board edge in that direction.
func (g Grid) Neighbor(c Cell, d Direction) (Cell, bool) {
	switch d {
	case Up:
		if c.Row == g.Size-1 {
			return Cell{}, false
		}
		return Cell{Col: c.Col, Row: c.Row + 1}, true
	case Down:
		if c.Row == 0 {
			return Cell{}, false
		}
		return Cell{Col: c.Col, Row: c.Row - 1}, true
	case Left:
		if c.Col == 0 {
			return Cell{}, false
		}
		return Cell{Col: c.Col - 1, Row: c.Row}, true
	case Right:
		if c.Col == g.Size-1 {
			return Cell{}, false
		}
		return Cell{Col: c.Col + 1, Row: c.Row}, true
	}
	return Cell{}, false
}

// SurroundingCells lists the in-bounds neighbours of c in Directions order.
func (g Grid) SurroundingCells(c Cell) []Step {
	steps := make([]Step, 0, len(Directions))
	for _, d := range Directions {
		if n, ok := g.Neighbor(c, d); ok {
			steps = append(steps, Step{Cell: n, Direction: d})
		}
	}
	return steps
}

// DirectionTo returns the single-step direction leading from a to b.
func (g Grid) DirectionTo(a, b Cell) (Direction, bool) {
	for _, s := range g.SurroundingCells(a) {
		if s.Cell == b {
			return s.Direction, true
		}
	}
	return Up, false
}

// ValidEdge reports whether e addresses a segment slot that exists on the board.
func (g Grid) ValidEdge(e Edge) bool {
	if e.Col < 0 || e.Row < 0 {
		return false
	}
	if e.Orientation == Horizontal {
		return e.Col < g.Size && e.Row < g.Size-1
	}
	return e.Col < g.Size-1 && e.Row < g.Size
}

// ValidCrossing reports whether c is the lower-left cell of a crossing point.
func (g Grid) ValidCrossing(c Cell) bool {
	return c.Col >= 0 && c.Row >= 0 && c.Col < g.Size-1 && c.Row < g.Size-1
}

// edgeToward maps a move out of c in direction d to the segment it crosses.
// The move must stay on the board.
func edgeToward(c Cell, d Direction) Edge {
	switch d {
	case Up:
		return Edge{Cell: c, Orientation: Horizontal}
	case Down:
		return Edge{Cell: Cell{Col: c.Col, Row: c.Row - 1}, Orientation: Horizontal}
	case Left:
		return Edge{Cell: Cell{Col: c.Col - 1, Row: c.Row}, Orientation: Vertical}
	default:
		return Edge{Cell: c, Orientation: Vertical}
	}
}

// goalRow is the baseline a player has to reach.
func (g Grid) goalRow(p PlayerID) int {
	if p == White {
		return 0
	}
	return g.Size - 1
}

func (g Grid) IsGoal(c Cell, p PlayerID) bool {
	return c.Row == g.goalRow(p)
}

// startCell is the midpoint of the baseline opposite the goal.
func (g Grid) startCell(p PlayerID) Cell {
	if p == White {
		return Cell{Col: g.Size / 2, Row: g.Size - 1}
	}
	return Cell{Col: g.Size / 2, Row: 0}
}
