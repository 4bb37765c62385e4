package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/zucenko/varidor/model"
	"github.com/zucenko/varidor/session"
)

func TestRouteKey(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want session.GameEvent
		ok   bool
		quit bool
	}{
		{"up arrow", tcell.KeyUp, 0, session.GameEvent{Kind: session.EV_MOVE, Direction: model.Up}, true, false},
		{"left arrow", tcell.KeyLeft, 0, session.GameEvent{Kind: session.EV_MOVE, Direction: model.Left}, true, false},
		{"vi down", tcell.KeyRune, 'j', session.GameEvent{Kind: session.EV_MOVE, Direction: model.Down}, true, false},
		{"vi right", tcell.KeyRune, 'l', session.GameEvent{Kind: session.EV_MOVE, Direction: model.Right}, true, false},
		{"quit rune", tcell.KeyRune, 'q', session.GameEvent{}, false, true},
		{"escape", tcell.KeyEscape, 0, session.GameEvent{}, false, true},
		{"ctrl-c", tcell.KeyCtrlC, 0, session.GameEvent{}, false, true},
		{"other rune", tcell.KeyRune, 'x', session.GameEvent{}, false, false},
		{"other key", tcell.KeyTab, 0, session.GameEvent{}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok, quit := routeKey(tt.key, tt.r)
			assert.Equal(t, tt.want, ev)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.quit, quit)
		})
	}
}

func TestRouteClick(t *testing.T) {
	l := Layout{Size: 5}

	x, y := l.center(model.Cell{Col: 1, Row: 3})
	ev, ok := routeClick(l, x, y)
	assert.True(t, ok)
	assert.Equal(t, session.GameEvent{Kind: session.EV_MOVE_TO, Cell: model.Cell{Col: 1, Row: 3}}, ev)

	x, y = l.verticalSlot(model.Cell{Col: 1, Row: 3})
	ev, ok = routeClick(l, x, y)
	assert.True(t, ok)
	assert.Equal(t, session.GameEvent{
		Kind: session.EV_PICK,
		Edge: model.Edge{Cell: model.Cell{Col: 1, Row: 3}, Orientation: model.Vertical},
	}, ev)

	_, ok = routeClick(l, 0, 0)
	assert.False(t, ok)
}
