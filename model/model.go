package model

import "fmt"

// DefaultWalls is the wall budget each player starts with.
const DefaultWalls = 5

// Cell is one board position. Col grows to the Right, Row grows Up.
type Cell struct {
	Col, Row int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in the order neighbours are enumerated.
var Directions = [4]Direction{Up, Down, Left, Right}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("n/a:%d", int(d))
	}
}

// Side picks which half of the approached edge a wall unit extends to,
// seen by someone walking in the given Direction.
type Side int

const (
	LeftSide Side = iota
	RightSide
)

func (s Side) String() string {
	if s == LeftSide {
		return "Left"
	}
	return "Right"
}

type Orientation int

const (
	// Horizontal segments lie between (c,r) and (c,r+1) and block Up/Down.
	Horizontal Orientation = iota
	// Vertical segments lie between (c,r) and (c+1,r) and block Left/Right.
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// Edge is a single wall segment slot addressed by its lower-left cell.
type Edge struct {
	Cell
	Orientation
}

func (e Edge) String() string {
	return fmt.Sprintf("%v%v", e.Orientation, e.Cell)
}

// Wall is a placed two-segment unit. Both segments meet at the crossing
// whose lower-left cell is Anchor.
type Wall struct {
	Anchor      Cell
	Orientation Orientation
}

func (w Wall) Segments() [2]Edge {
	second := Cell{Col: w.Anchor.Col, Row: w.Anchor.Row + 1}
	if w.Orientation == Horizontal {
		second = Cell{Col: w.Anchor.Col + 1, Row: w.Anchor.Row}
	}
	return [2]Edge{
		{Cell: w.Anchor, Orientation: w.Orientation},
		{Cell: second, Orientation: w.Orientation},
	}
}

func (w Wall) String() string {
	return fmt.Sprintf("%v wall at %v", w.Orientation, w.Anchor)
}

type PlayerID int

const (
	White PlayerID = iota
	Black
)

var Players = [2]PlayerID{White, Black}

func (p PlayerID) Next() PlayerID {
	if p == White {
		return Black
	}
	return White
}

func (p PlayerID) String() string {
	switch p {
	case White:
		return "WHITE"
	case Black:
		return "BLACK"
	default:
		return fmt.Sprintf("n/a:%d", int(p))
	}
}

func (p PlayerID) Color() string {
	if p == White {
		return "White"
	}
	return "Black"
}

// Step is one move of a path: the cell entered and the direction taken.
type Step struct {
	Cell
	Direction Direction
}

type Path []Step

// Target is the last cell of the path or from when the path is empty.
func (p Path) Target(from Cell) Cell {
	if len(p) == 0 {
		return from
	}
	return p[len(p)-1].Cell
}

type Player struct {
	ID    PlayerID
	Cell  Cell
	Walls int
	paths []Path
}

func clonePaths(paths []Path) []Path {
	out := make([]Path, len(paths))
	for i, p := range paths {
		out[i] = append(Path(nil), p...)
		if out[i] == nil {
			out[i] = Path{}
		}
	}
	return out
}
