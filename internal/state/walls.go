package state

import (
	"iter"
	"math/bits"
	"strings"
)

// Walls is a set of directions, one bit per Direction (bit i is Direction(i)).
//
// Stored per cell, it records which of the six edges of the cell are blocked.
type Walls uint8

const (
	// NoWalls is the empty set.
	NoWalls Walls = 0

	// AllWalls has all six direction bits set: a fully walled cell.
	AllWalls Walls = 1<<NumDirections - 1

	// UpDirections holds UpLeft, Up and UpRight.
	UpDirections = Walls(1)<<UpLeft | Walls(1)<<Up | Walls(1)<<UpRight

	// DownDirections holds DownLeft, Down and DownRight.
	DownDirections = Walls(1)<<DownLeft | Walls(1)<<Down | Walls(1)<<DownRight
)

// WallsOf returns the set with the given directions.
func WallsOf(directions ...Direction) (w Walls) {
	for _, d := range directions {
		w |= d.Mask()
	}
	return
}

// Has returns whether direction d is in the set.
func (w Walls) Has(d Direction) bool {
	return w&d.Mask() != 0
}

// With returns the set with d added.
func (w Walls) With(d Direction) Walls {
	return w | d.Mask()
}

// Without returns the set with d removed.
func (w Walls) Without(d Direction) Walls {
	return w &^ d.Mask()
}

// Count returns the number of directions in the set.
func (w Walls) Count() int {
	return bits.OnesCount8(uint8(w & AllWalls))
}

// Directions iterates over the directions in the set, in clockwise order starting at UpLeft.
func (w Walls) Directions() iter.Seq[Direction] {
	return func(yield func(Direction) bool) {
		for _, d := range Directions {
			if w.Has(d) && !yield(d) {
				return
			}
		}
	}
}

// String lists the directions in the set, e.g. "{Up|DownLeft}".
func (w Walls) String() string {
	var parts []string
	for d := range w.Directions() {
		parts = append(parts, d.String())
	}
	return "{" + strings.Join(parts, "|") + "}"
}
