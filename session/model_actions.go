package session

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/varidor/model"
)

func NewGameSession(cfg Config) (*GameSession, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	board, err := model.NewBoard(cfg.Size, cfg.Walls)
	if err != nil {
		return nil, err
	}
	log.Infof("NewGameSession size:%d walls:%d", cfg.Size, cfg.Walls)
	return &GameSession{
		State:   GS_PLAY,
		Board:   board,
		Current: model.White,
		Logbook: []string{"Game started"},
		Events:  make(chan PlayerEvent),
	}, nil
}

// Loop serves Events until ctx is done. It is the only goroutine that
// touches the board.
func (gs *GameSession) Loop(ctx context.Context) error {
	log.Info("GameSession.Loop start")
	for {
		select {
		case <-ctx.Done():
			log.Info("GameSession.Loop ended")
			return ctx.Err()
		case pe := <-gs.Events:
			out := gs.Turn(pe.GameEvent)
			// Reply is buffered by Do, a vanished caller never stalls the loop
			select {
			case pe.Reply <- out:
			default:
				log.Warnf("GameSession.Loop dropping outcome of %v", pe.GameEvent)
			}
		}
	}
}

// Do hands ev to Loop and waits for its outcome.
func (gs *GameSession) Do(ctx context.Context, ev GameEvent) (Outcome, error) {
	reply := make(chan Outcome, 1)
	select {
	case gs.Events <- PlayerEvent{GameEvent: ev, Reply: reply}:
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}
	select {
	case out := <-reply:
		return out, nil
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}
}

// Turn applies one event for the current player. The turn passes to the
// opponent only when the event changed the board.
func (gs *GameSession) Turn(ev GameEvent) Outcome {
	player := gs.Current
	log.Debugf("GameSession.Turn %v %v", player, ev)

	var err error
	var acted bool
	switch {
	case ev.Kind == EV_VIEW:
	case gs.State == GS_OVER:
		err = ErrGameOver
	default:
		acted, err = gs.act(player, ev)
	}

	if err != nil && err != ErrGameOver {
		gs.appendLog(fmt.Sprintf("%s: %v", player, err))
		log.Infof("GameSession.Turn %v %v rejected: %v", player, ev, err)
	}
	if acted {
		if gs.Board.HasArrived(player) {
			gs.State = GS_OVER
			gs.Winner = player
			gs.appendLog(fmt.Sprintf("%s wins", player))
			log.Infof("GameSession.Turn %v wins", player)
		} else {
			gs.Current = player.Next()
		}
	}
	return Outcome{Player: player, Err: err, View: gs.makeView()}
}

// act runs a mutating event. acted is true when the board changed.
func (gs *GameSession) act(player model.PlayerID, ev GameEvent) (acted bool, err error) {
	switch ev.Kind {
	case EV_MOVE:
		gs.pick = nil
		if err = gs.Board.MovePlayer(player, ev.Direction); err == nil {
			gs.appendLog(fmt.Sprintf("%s moves %v to %v", player, ev.Direction, gs.Board.Position(player)))
		}
	case EV_MOVE_TO:
		gs.pick = nil
		if err = gs.Board.MoveTo(player, ev.Cell); err == nil {
			gs.appendLog(fmt.Sprintf("%s moves to %v", player, ev.Cell))
		}
	case EV_WALL:
		gs.pick = nil
		err = gs.placed(player, gs.Board.PlaceWall(player, ev.Cell, ev.Direction, ev.Side))
	case EV_PICK:
		if gs.pick == nil {
			pick := ev.Edge
			gs.pick = &pick
			log.Debugf("GameSession %v picked %v", player, pick)
			return false, nil
		}
		first := *gs.pick
		gs.pick = nil
		err = gs.placed(player, gs.Board.PlaceWallBetween(player, first, ev.Edge))
	default:
		return false, ErrUnknownEvent
	}
	return err == nil, err
}

func (gs *GameSession) placed(player model.PlayerID, err error) error {
	if err == nil {
		walls := gs.Board.Walls()
		gs.appendLog(fmt.Sprintf("%s places %v", player, walls[len(walls)-1]))
	}
	return err
}

func (gs *GameSession) appendLog(line string) {
	gs.Logbook = append(gs.Logbook, line)
}
