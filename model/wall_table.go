package model

// wallRule resolves one (direction, side) pair. A wall unit is two segments
// long: the first covers the edge crossed when leaving the anchor cell in
// direction, the second lies next to it toward side. Walking from the anchor
// to the neighbour in direction (second) and then one more step in turn
// (final) visits the corner cells; the canonical lower-left cell is picked
// from those.
type wallRule struct {
	turn        Direction
	lowerLeft   func(first, second, final Cell) Cell
	orientation Orientation
}

type wallKey struct {
	direction Direction
	side      Side
}

var wallTable = map[wallKey]wallRule{
	{Left, LeftSide}: {turn: Down, orientation: Vertical,
		lowerLeft: func(first, second, final Cell) Cell { return final }},
	{Left, RightSide}: {turn: Up, orientation: Vertical,
		lowerLeft: func(first, second, final Cell) Cell { return second }},
	{Right, LeftSide}: {turn: Up, orientation: Vertical,
		lowerLeft: func(first, second, final Cell) Cell { return first }},
	{Right, RightSide}: {turn: Down, orientation: Vertical,
		lowerLeft: func(first, second, final Cell) Cell { return Cell{Col: first.Col, Row: final.Row} }},
	{Up, LeftSide}: {turn: Left, orientation: Horizontal,
		lowerLeft: func(first, second, final Cell) Cell { return Cell{Col: final.Col, Row: first.Row} }},
	{Up, RightSide}: {turn: Right, orientation: Horizontal,
		lowerLeft: func(first, second, final Cell) Cell { return first }},
	{Down, LeftSide}: {turn: Right, orientation: Horizontal,
		lowerLeft: func(first, second, final Cell) Cell { return second }},
	{Down, RightSide}: {turn: Left, orientation: Horizontal,
		lowerLeft: func(first, second, final Cell) Cell { return final }},
}

// ResolveWall turns an anchor cell, the direction of the edge being blocked
// and the side the unit extends to into the canonical wall unit. ok is false
// when any corner of the unit falls off the board.
func (g Grid) ResolveWall(anchor Cell, d Direction, s Side) (Wall, bool) {
	rule, found := wallTable[wallKey{direction: d, side: s}]
	if !found || !g.Contains(anchor) {
		return Wall{}, false
	}
	second, ok := g.Neighbor(anchor, d)
	if !ok {
		return Wall{}, false
	}
	final, ok := g.Neighbor(second, rule.turn)
	if !ok {
		return Wall{}, false
	}
	return Wall{Anchor: rule.lowerLeft(anchor, second, final), Orientation: rule.orientation}, true
}
