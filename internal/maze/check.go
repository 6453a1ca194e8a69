package maze

import (
	"github.com/janpfeifer/hexmaze/internal/generics"
	. "github.com/janpfeifer/hexmaze/internal/state"
	"github.com/pkg/errors"
)

// Check validates that the walls of the field form a perfect maze from start:
//
//   - Walls are consistent: every pair of neighbor cells is either open or walled on both sides.
//   - Every cell connected to start on the (unwalled) grid is reachable through open passages.
//   - There are no loops: the number of open passages is the number of reachable cells minus one.
//
// It returns nil if the maze is valid, or an error describing the first problem found.
func Check(field *Field, start Pos) error {
	if !field.Contains(start) {
		return errors.Errorf("start position %s is off the %dx%d field", start, field.Width(), field.Height())
	}
	for y := range field.Height() {
		for x := range field.Width() {
			pos := Pos{X: x, Y: y}
			walls := field.WallsAt(pos)
			for _, d := range Directions {
				neighbor, ok := field.Neighbor(pos, d)
				if !ok {
					continue
				}
				if walls.Has(d) != field.WallsAt(neighbor).Has(d.Reverse()) {
					return errors.Errorf("inconsistent wall between %s (%s: %v) and %s (%s: %v)",
						pos, d, walls.Has(d), neighbor, d.Reverse(), field.WallsAt(neighbor).Has(d.Reverse()))
				}
			}
		}
	}

	component := reachable(field, start, func(Pos, Direction) bool { return true })
	open := reachable(field, start, func(pos Pos, d Direction) bool { return !field.WallsAt(pos).Has(d) })
	if missing := component.Sub(open); len(missing) > 0 {
		return errors.Errorf("%d cells not reachable from %s (out of %d)", len(missing), start, len(component))
	}

	var passages int
	for pos := range open {
		passages += AllWalls.Count() - field.ClosedWallsAt(pos).Count()
	}
	// Each passage was counted from both sides.
	passages /= 2
	if passages != len(open)-1 {
		return errors.Errorf("maze has loops: %d open passages for %d reachable cells", passages, len(open))
	}
	return nil
}

// reachable returns the set of positions reachable from start with steps for which canPass returns true.
func reachable(field *Field, start Pos, canPass func(pos Pos, d Direction) bool) generics.Set[Pos] {
	visited := generics.SetWith(start)
	toVisit := []Pos{start}
	for len(toVisit) > 0 {
		pos := toVisit[len(toVisit)-1]
		toVisit = toVisit[:len(toVisit)-1]
		for _, d := range Directions {
			neighbor, ok := field.Neighbor(pos, d)
			if !ok || visited.Has(neighbor) || !canPass(pos, d) {
				continue
			}
			visited.Insert(neighbor)
			toVisit = append(toVisit, neighbor)
		}
	}
	return visited
}
