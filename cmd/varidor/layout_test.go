package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zucenko/varidor/model"
)

func TestLayoutHitRoundTrip(t *testing.T) {
	l := Layout{Size: 5}
	g := model.Grid{Size: 5}

	for c := 0; c < 5; c++ {
		for r := 0; r < 5; r++ {
			cell := model.Cell{Col: c, Row: r}

			x, y := l.center(cell)
			kind, got, _ := l.Hit(x, y)
			assert.Equal(t, HIT_CELL, kind)
			assert.Equal(t, cell, got)

			v := model.Edge{Cell: cell, Orientation: model.Vertical}
			if g.ValidEdge(v) {
				x, y = l.verticalSlot(cell)
				kind, _, e := l.Hit(x, y)
				assert.Equal(t, HIT_EDGE, kind)
				assert.Equal(t, v, e)
			}

			h := model.Edge{Cell: cell, Orientation: model.Horizontal}
			if g.ValidEdge(h) {
				x, y = l.horizontalSlot(cell)
				kind, _, e := l.Hit(x+1, y)
				assert.Equal(t, HIT_EDGE, kind)
				assert.Equal(t, h, e)
			}

			if g.ValidCrossing(cell) {
				x, y = l.crossing(cell)
				kind, _, _ := l.Hit(x, y)
				assert.Equal(t, HIT_NONE, kind)
			}
		}
	}
}

func TestLayoutHitOutside(t *testing.T) {
	l := Layout{Size: 3}

	kind, _, _ := l.Hit(0, 0)
	assert.Equal(t, HIT_NONE, kind)
	kind, _, _ = l.Hit(l.Width()+4, originY)
	assert.Equal(t, HIT_NONE, kind)
	kind, _, _ = l.Hit(originX, l.Height()+2)
	assert.Equal(t, HIT_NONE, kind)
	// right of the last column there is no wall slot
	x, y := l.verticalSlot(model.Cell{Col: 2, Row: 0})
	kind, _, _ = l.Hit(x, y)
	assert.Equal(t, HIT_NONE, kind)
}

func TestLayoutTopRowFirst(t *testing.T) {
	l := Layout{Size: 5}

	_, top := l.center(model.Cell{Col: 0, Row: 4})
	_, bottom := l.center(model.Cell{Col: 0, Row: 0})
	assert.Equal(t, originY, top)
	assert.Less(t, top, bottom)
}
