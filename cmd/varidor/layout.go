package main

import "github.com/zucenko/varidor/model"

const (
	originX = 2
	originY = 1
	cellW   = 3
	strideX = cellW + 1
	strideY = 2
)

type hitKind int

const (
	HIT_NONE hitKind = iota
	HIT_CELL
	HIT_EDGE
)

// Layout maps board coordinates to terminal cells. Row size-1 is drawn on
// top; every cell is cellW characters wide with one column or one line of
// wall slot between neighbours.
type Layout struct {
	Size int
}

func (l Layout) cellOrigin(c model.Cell) (x, y int) {
	return originX + strideX*c.Col, originY + strideY*(l.Size-1-c.Row)
}

// center is where a token on c is drawn.
func (l Layout) center(c model.Cell) (x, y int) {
	x, y = l.cellOrigin(c)
	return x + cellW/2, y
}

// verticalSlot is the column between c and its right neighbour.
func (l Layout) verticalSlot(c model.Cell) (x, y int) {
	x, y = l.cellOrigin(c)
	return x + cellW, y
}

// horizontalSlot is the line between c and its upper neighbour.
func (l Layout) horizontalSlot(c model.Cell) (x, y int) {
	x, y = l.cellOrigin(c)
	return x, y - 1
}

func (l Layout) crossing(c model.Cell) (x, y int) {
	x, y = l.cellOrigin(c)
	return x + cellW, y - 1
}

func (l Layout) Width() int {
	return originX + strideX*l.Size
}

func (l Layout) Height() int {
	return originY + strideY*l.Size
}

// Hit resolves a click on the terminal to a cell or a wall slot.
func (l Layout) Hit(x, y int) (hitKind, model.Cell, model.Edge) {
	dx, dy := x-originX, y-originY
	if dx < 0 || dy < 0 {
		return HIT_NONE, model.Cell{}, model.Edge{}
	}
	col := dx / strideX
	inCell := dx%strideX < cellW
	line := dy / strideY
	onCellLine := dy%strideY == 0
	row := l.Size - 1 - line
	g := model.Grid{Size: l.Size}

	switch {
	case onCellLine && inCell:
		c := model.Cell{Col: col, Row: row}
		if g.Contains(c) {
			return HIT_CELL, c, model.Edge{}
		}
	case onCellLine:
		e := model.Edge{Cell: model.Cell{Col: col, Row: row}, Orientation: model.Vertical}
		if g.ValidEdge(e) {
			return HIT_EDGE, model.Cell{}, e
		}
	case inCell:
		e := model.Edge{Cell: model.Cell{Col: col, Row: row - 1}, Orientation: model.Horizontal}
		if g.ValidEdge(e) {
			return HIT_EDGE, model.Cell{}, e
		}
	}
	return HIT_NONE, model.Cell{}, model.Edge{}
}
