package model

import "fmt"

// MoveError is returned when a token cannot move. The values are comparable
// and work with errors.Is.
type MoveError int

const (
	ErrMoveBoardBoundary MoveError = iota + 1
	ErrWall
	ErrFieldsNotAdjacent
)

func (e MoveError) Error() string {
	switch e {
	case ErrMoveBoardBoundary:
		return "outer boundary of board reached"
	case ErrWall:
		return "way blocked by wall"
	case ErrFieldsNotAdjacent:
		return "fields not adjacent"
	default:
		return fmt.Sprintf("move error %d", int(e))
	}
}

// Name is the stable identity of the error case.
func (e MoveError) Name() string {
	switch e {
	case ErrMoveBoardBoundary:
		return "BoardBoundary"
	case ErrWall:
		return "Wall"
	case ErrFieldsNotAdjacent:
		return "FieldsNotAdjacent"
	default:
		return fmt.Sprintf("n/a:%d", int(e))
	}
}

// WallError is returned when a wall unit cannot be placed. A board that
// returned a WallError is unchanged by the call.
type WallError int

const (
	ErrWallBoardBoundary WallError = iota + 1
	ErrWallAlreadyPlaced
	ErrWallsAlreadyCrossing
	ErrNoMoreWalls
	ErrPlayerBlocked
	ErrNotConnected
)

func (e WallError) Error() string {
	switch e {
	case ErrWallBoardBoundary:
		return "wall would leave the board"
	case ErrWallAlreadyPlaced:
		return "wall already placed"
	case ErrWallsAlreadyCrossing:
		return "walls would cross"
	case ErrNoMoreWalls:
		return "no walls left"
	case ErrPlayerBlocked:
		return "wall would block a player"
	case ErrNotConnected:
		return "picked segments are not connected"
	default:
		return fmt.Sprintf("wall error %d", int(e))
	}
}

func (e WallError) Name() string {
	switch e {
	case ErrWallBoardBoundary:
		return "BoardBoundary"
	case ErrWallAlreadyPlaced:
		return "WallAlreadyPlaced"
	case ErrWallsAlreadyCrossing:
		return "WallsAlreadyCrossing"
	case ErrNoMoreWalls:
		return "NoMoreWalls"
	case ErrPlayerBlocked:
		return "PlayerBlocked"
	case ErrNotConnected:
		return "NotConnected"
	default:
		return fmt.Sprintf("n/a:%d", int(e))
	}
}
