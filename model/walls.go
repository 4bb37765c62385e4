package model

// wallStorage holds one flag per segment slot. Horizontal slots come first,
// indexed col + size*row; Vertical slots follow at offset size*(size-1),
// indexed row + size*col. Callers only pass edges that exist.
type wallStorage struct {
	size   int
	placed []bool
}

func newWallStorage(size int) wallStorage {
	return wallStorage{size: size, placed: make([]bool, 2*size*(size-1))}
}

func (w wallStorage) index(e Edge) int {
	if e.Orientation == Horizontal {
		return e.Col + w.size*e.Row
	}
	return w.size*(w.size-1) + e.Row + w.size*e.Col
}

func (w wallStorage) has(e Edge) bool {
	return w.placed[w.index(e)]
}

func (w wallStorage) set(e Edge, v bool) {
	w.placed[w.index(e)] = v
}

// crossingStorage holds one flag per interior grid point, indexed
// col + (size-1)*row by the point's lower-left cell.
type crossingStorage struct {
	size     int
	occupied []bool
}

func newCrossingStorage(size int) crossingStorage {
	return crossingStorage{size: size, occupied: make([]bool, (size-1)*(size-1))}
}

func (c crossingStorage) index(cell Cell) int {
	return cell.Col + (c.size-1)*cell.Row
}

func (c crossingStorage) has(cell Cell) bool {
	return c.occupied[c.index(cell)]
}

func (c crossingStorage) set(cell Cell, v bool) {
	c.occupied[c.index(cell)] = v
}
