package session

import (
	"errors"

	"github.com/zucenko/varidor/model"
)

var (
	ErrGameOver     = errors.New("game is over")
	ErrUnknownEvent = errors.New("unknown event")
)

type GameSessionState int

const (
	GS_PLAY GameSessionState = iota + 1
	GS_OVER
)

// GameSession is one game. All access to Board goes through Loop, which is
// the only goroutine touching it; Turn may be called directly when the
// caller provides that exclusion itself.
type GameSession struct {
	State   GameSessionState
	Board   *model.Board
	Current model.PlayerID
	Winner  model.PlayerID
	Logbook []string
	Events  chan PlayerEvent

	// first half of a two-pick wall selection
	pick *model.Edge
}

type EventKind int

const (
	EV_MOVE EventKind = iota + 1
	EV_MOVE_TO
	EV_WALL
	EV_PICK
	EV_VIEW
)

// GameEvent is one request of the current player. Which fields matter
// depends on Kind: EV_MOVE uses Direction, EV_MOVE_TO uses Cell, EV_WALL uses
// Cell, Direction and Side, EV_PICK uses Edge.
type GameEvent struct {
	Kind      EventKind
	Direction model.Direction
	Side      model.Side
	Cell      model.Cell
	Edge      model.Edge
}

type PlayerEvent struct {
	GameEvent GameEvent
	Reply     chan Outcome
}

// Outcome reports what a GameEvent did. Err is nil on success and Player is
// the player the event acted for.
type Outcome struct {
	Player model.PlayerID
	Err    error
	View   View
}
