package session

import "fmt"

func (gss GameSessionState) Name() string {
	switch gss {
	case GS_PLAY:
		return "GS_PLAY"
	case GS_OVER:
		return "GS_OVER"
	default:
		return fmt.Sprintf("n/a:%d", gss)
	}
}

func (k EventKind) Name() string {
	switch k {
	case EV_MOVE:
		return "MOVE"
	case EV_MOVE_TO:
		return "MOVE_TO"
	case EV_WALL:
		return "WALL"
	case EV_PICK:
		return "PICK"
	case EV_VIEW:
		return "VIEW"
	default:
		return "N/A"
	}
}

func (e GameEvent) String() string {
	switch e.Kind {
	case EV_MOVE:
		return fmt.Sprintf("%s %v", e.Kind.Name(), e.Direction)
	case EV_MOVE_TO:
		return fmt.Sprintf("%s %v", e.Kind.Name(), e.Cell)
	case EV_WALL:
		return fmt.Sprintf("%s %v %v/%v", e.Kind.Name(), e.Cell, e.Direction, e.Side)
	case EV_PICK:
		return fmt.Sprintf("%s %v", e.Kind.Name(), e.Edge)
	default:
		return e.Kind.Name()
	}
}
