package session

import "github.com/zucenko/varidor/model"

// View is a copy of everything a front end draws. It shares no memory with
// the session.
type View struct {
	Size    int
	State   GameSessionState
	Current model.PlayerID
	Winner  model.PlayerID
	Players [2]PlayerView
	Walls   []model.Wall
	Pick    *model.Edge
	Log     []string
}

type PlayerView struct {
	ID    model.PlayerID
	Cell  model.Cell
	Walls int
	Paths []model.Path
}

// HasWall reports whether the segment slot e is covered by a placed unit.
func (v View) HasWall(e model.Edge) bool {
	for _, w := range v.Walls {
		for _, s := range w.Segments() {
			if s == e {
				return true
			}
		}
	}
	return false
}

// HasCrossing reports whether a placed unit occupies the crossing at c.
func (v View) HasCrossing(c model.Cell) bool {
	for _, w := range v.Walls {
		if w.Anchor == c {
			return true
		}
	}
	return false
}

// OnPath reports which players have c on one of their shortest paths.
func (v View) OnPath(c model.Cell) (white, black bool) {
	for _, p := range v.Players {
		for _, path := range p.Paths {
			for _, s := range path {
				if s.Cell == c {
					if p.ID == model.White {
						white = true
					} else {
						black = true
					}
				}
			}
		}
	}
	return
}

func (gs *GameSession) makeView() View {
	v := View{
		Size:    gs.Board.Size,
		State:   gs.State,
		Current: gs.Current,
		Winner:  gs.Winner,
		Walls:   gs.Board.Walls(),
		Log:     append([]string(nil), gs.Logbook...),
	}
	for _, id := range model.Players {
		pl := gs.Board.Player(id)
		v.Players[id] = PlayerView{
			ID:    id,
			Cell:  pl.Cell,
			Walls: pl.Walls,
			Paths: gs.Board.ShortestPaths(id),
		}
	}
	if gs.pick != nil {
		pick := *gs.pick
		v.Pick = &pick
	}
	return v
}
