package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/zucenko/varidor/model"
	"github.com/zucenko/varidor/session"
)

var keyRoutes = map[tcell.Key]model.Direction{
	tcell.KeyUp:    model.Up,
	tcell.KeyDown:  model.Down,
	tcell.KeyLeft:  model.Left,
	tcell.KeyRight: model.Right,
}

var runeRoutes = map[rune]model.Direction{
	'k': model.Up,
	'j': model.Down,
	'h': model.Left,
	'l': model.Right,
}

// routeKey turns a key press into a game event. quit is set for the keys
// that leave the game.
func routeKey(key tcell.Key, r rune) (ev session.GameEvent, ok, quit bool) {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return ev, false, true
	}
	if d, found := keyRoutes[key]; found {
		return session.GameEvent{Kind: session.EV_MOVE, Direction: d}, true, false
	}
	if key != tcell.KeyRune {
		return ev, false, false
	}
	if r == 'q' {
		return ev, false, true
	}
	if d, found := runeRoutes[r]; found {
		return session.GameEvent{Kind: session.EV_MOVE, Direction: d}, true, false
	}
	return ev, false, false
}

// routeClick turns a primary button press at (x, y) into a game event.
func routeClick(l Layout, x, y int) (session.GameEvent, bool) {
	kind, cell, edge := l.Hit(x, y)
	switch kind {
	case HIT_CELL:
		return session.GameEvent{Kind: session.EV_MOVE_TO, Cell: cell}, true
	case HIT_EDGE:
		return session.GameEvent{Kind: session.EV_PICK, Edge: edge}, true
	}
	return session.GameEvent{}, false
}
