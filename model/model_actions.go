package model

import "fmt"

// Board owns the wall and crossing storage and both players. It is not safe
// for concurrent use; embedders serialize all access to one board.
type Board struct {
	Grid
	walls     wallStorage
	crossings crossingStorage
	units     []Wall
	players   [2]*Player
}

func NewBoard(size, walls int) (*Board, error) {
	if size < 2 {
		return nil, fmt.Errorf("board size %d: need at least 2", size)
	}
	if walls < 0 {
		return nil, fmt.Errorf("wall budget %d: must not be negative", walls)
	}
	b := &Board{
		Grid:      Grid{Size: size},
		walls:     newWallStorage(size),
		crossings: newCrossingStorage(size),
	}
	for _, id := range Players {
		b.players[id] = &Player{ID: id, Cell: b.startCell(id), Walls: walls}
	}
	for _, id := range Players {
		b.players[id].paths = b.computePaths(id)
	}
	return b, nil
}

func (b *Board) Player(p PlayerID) Player {
	pl := *b.players[p]
	pl.paths = clonePaths(pl.paths)
	return pl
}

func (b *Board) Position(p PlayerID) Cell {
	return b.players[p].Cell
}

func (b *Board) WallsLeft(p PlayerID) int {
	return b.players[p].Walls
}

// ShortestPaths returns a copy of the paths cached at the last committed
// move or wall placement.
func (b *Board) ShortestPaths(p PlayerID) []Path {
	return clonePaths(b.players[p].paths)
}

// HasArrived reports whether the player stands on its goal row.
func (b *Board) HasArrived(p PlayerID) bool {
	return b.IsGoal(b.players[p].Cell, p)
}

func (b *Board) HasWall(e Edge) bool {
	if !b.ValidEdge(e) {
		return false
	}
	return b.walls.has(e)
}

func (b *Board) HasCrossing(c Cell) bool {
	if !b.ValidCrossing(c) {
		return false
	}
	return b.crossings.has(c)
}

// Walls lists the placed wall units in placement order.
func (b *Board) Walls() []Wall {
	return append([]Wall(nil), b.units...)
}

// ReachableNeighbors lists the neighbours of c not cut off by a wall.
func (b *Board) ReachableNeighbors(c Cell) []Step {
	steps := b.SurroundingCells(c)
	open := steps[:0]
	for _, s := range steps {
		if !b.walls.has(edgeToward(c, s.Direction)) {
			open = append(open, s)
		}
	}
	return open
}

func (b *Board) computePaths(p PlayerID) []Path {
	return ShortestPaths(b, b.players[p].Cell, p)
}

// MovePlayer moves the token one cell. Only the mover's paths are refreshed:
// tokens are not obstacles, so the opponent's graph is unchanged.
func (b *Board) MovePlayer(p PlayerID, d Direction) error {
	pl := b.players[p]
	next, ok := b.Neighbor(pl.Cell, d)
	if !ok {
		return ErrMoveBoardBoundary
	}
	if b.walls.has(edgeToward(pl.Cell, d)) {
		return ErrWall
	}
	pl.Cell = next
	pl.paths = b.computePaths(p)
	return nil
}

// MoveTo moves the token onto target, which has to be a direct neighbour.
func (b *Board) MoveTo(p PlayerID, target Cell) error {
	if !b.Contains(target) {
		return ErrMoveBoardBoundary
	}
	d, ok := b.DirectionTo(b.players[p].Cell, target)
	if !ok {
		return ErrFieldsNotAdjacent
	}
	return b.MovePlayer(p, d)
}

// PlaceWall places a two-segment wall for player p. The unit covers the edge
// crossed when leaving anchor in direction d plus the neighbouring edge
// toward side s.
func (b *Board) PlaceWall(p PlayerID, anchor Cell, d Direction, s Side) error {
	if b.players[p].Walls == 0 {
		return ErrNoMoreWalls
	}
	w, ok := b.ResolveWall(anchor, d, s)
	if !ok {
		return ErrWallBoardBoundary
	}
	return b.placeUnit(p, w)
}

// PlaceWallBetween places the unit made of two picked segments. The segments
// must share an orientation and lie next to each other on one line.
func (b *Board) PlaceWallBetween(p PlayerID, first, second Edge) error {
	if first.Orientation != second.Orientation {
		return ErrNotConnected
	}
	if !b.ValidEdge(first) || !b.ValidEdge(second) {
		return ErrWallBoardBoundary
	}
	low, high := first.Cell, second.Cell
	if high.Col < low.Col || high.Row < low.Row {
		low, high = high, low
	}
	switch {
	case first.Orientation == Vertical && low.Col == high.Col && low.Row+1 == high.Row:
		return b.PlaceWall(p, low, Right, LeftSide)
	case first.Orientation == Horizontal && low.Row == high.Row && low.Col+1 == high.Col:
		return b.PlaceWall(p, low, Up, RightSide)
	default:
		return ErrNotConnected
	}
}

// placeUnit applies the unit, verifies that both players still reach their
// goal and then either commits or reverts.
func (b *Board) placeUnit(p PlayerID, w Wall) error {
	segments := w.Segments()
	for _, e := range segments {
		if b.walls.has(e) {
			return ErrWallAlreadyPlaced
		}
	}
	if b.crossings.has(w.Anchor) {
		return ErrWallsAlreadyCrossing
	}

	b.apply(w, true)

	var paths [2][]Path
	for _, id := range Players {
		paths[id] = b.computePaths(id)
		if len(paths[id]) == 0 {
			b.apply(w, false)
			return ErrPlayerBlocked
		}
	}

	for _, id := range Players {
		b.players[id].paths = paths[id]
	}
	b.players[p].Walls--
	b.units = append(b.units, w)
	return nil
}

func (b *Board) apply(w Wall, placed bool) {
	for _, e := range w.Segments() {
		b.walls.set(e, placed)
	}
	b.crossings.set(w.Anchor, placed)
}
