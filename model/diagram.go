package model

import "strings"

// String draws the board top row first: cells at even columns of a line,
// '|' for a vertical segment, '-' for a horizontal one and '+' for an
// occupied crossing. Tokens are 'W' and 'B', '*' marks both on one cell.
func (b *Board) String() string {
	var sb strings.Builder
	for r := b.Size - 1; r >= 0; r-- {
		for c := 0; c < b.Size; c++ {
			sb.WriteRune(b.cellGlyph(Cell{Col: c, Row: r}))
			if c < b.Size-1 {
				if b.walls.has(Edge{Cell: Cell{Col: c, Row: r}, Orientation: Vertical}) {
					sb.WriteByte('|')
				} else {
					sb.WriteByte(' ')
				}
			}
		}
		sb.WriteByte('\n')
		if r == 0 {
			break
		}
		for c := 0; c < b.Size; c++ {
			if b.walls.has(Edge{Cell: Cell{Col: c, Row: r - 1}, Orientation: Horizontal}) {
				sb.WriteByte('-')
			} else {
				sb.WriteByte(' ')
			}
			if c < b.Size-1 {
				if b.crossings.has(Cell{Col: c, Row: r - 1}) {
					sb.WriteByte('+')
				} else {
					sb.WriteByte(' ')
				}
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) cellGlyph(c Cell) rune {
	white := b.players[White].Cell == c
	black := b.players[Black].Cell == c
	switch {
	case white && black:
		return '*'
	case white:
		return 'W'
	case black:
		return 'B'
	default:
		return '.'
	}
}
