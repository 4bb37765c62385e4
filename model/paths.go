package model

import (
	"github.com/zyedidia/generic/mapset"
)

// Graph is what the path engine needs from a board: which neighbours a cell
// can step to and where a player's goal is.
type Graph interface {
	ReachableNeighbors(c Cell) []Step
	IsGoal(c Cell, p PlayerID) bool
}

type frontier struct {
	path Path
	end  Cell
}

// ShortestPaths returns every minimal path from the cell from to any goal
// cell of player p. The search runs level by level and stops on the first
// level that touches a goal. Cells reached on a level join the visited set
// only once the level is done, so every parent on that level contributes its
// own paths. An empty result means no goal is reachable. A player already on
// a goal cell gets a single empty path.
func ShortestPaths(g Graph, from Cell, p PlayerID) []Path {
	if g.IsGoal(from, p) {
		return []Path{{}}
	}
	visited := mapset.New[Cell]()
	visited.Put(from)

	var found []Path
	current := []frontier{{path: Path{}, end: from}}
	for len(found) == 0 && len(current) > 0 {
		next := make([]frontier, 0, len(current)*len(Directions))
		reached := mapset.New[Cell]()
		for _, f := range current {
			for _, s := range g.ReachableNeighbors(f.end) {
				if visited.Has(s.Cell) {
					continue
				}
				path := make(Path, len(f.path), len(f.path)+1)
				copy(path, f.path)
				path = append(path, s)
				if g.IsGoal(s.Cell, p) {
					found = append(found, path)
				} else {
					next = append(next, frontier{path: path, end: s.Cell})
				}
				reached.Put(s.Cell)
			}
		}
		reached.Each(visited.Put)
		current = next
	}
	return found
}

// Reachable reports whether player p can reach a goal cell from the cell from.
func Reachable(g Graph, from Cell, p PlayerID) bool {
	if g.IsGoal(from, p) {
		return true
	}
	visited := mapset.New[Cell]()
	visited.Put(from)
	queue := []Cell{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, s := range g.ReachableNeighbors(current) {
			if visited.Has(s.Cell) {
				continue
			}
			if g.IsGoal(s.Cell, p) {
				return true
			}
			visited.Put(s.Cell)
			queue = append(queue, s.Cell)
		}
	}
	return false
}
