package state

import (
	"fmt"
	"github.com/gomlx/exceptions"
)

// Pos packages the x (column), y (row) position of a cell.
//
// Coordinates are signed so positions just off the field (e.g. x=-1) are
// representable: the field accessors check ranges explicitly.
type Pos struct {
	X, Y int
}

// String returns a text representation of Pos.
func (pos Pos) String() string {
	return fmt.Sprintf("(%d, %d)", pos.X, pos.Y)
}

// Direction is one of the six directions a player can face on the hexagonal grid.
//
// Directions are listed clockwise, starting at UpLeft.
type Direction uint8

const (
	UpLeft Direction = iota
	Up
	UpRight
	DownRight
	Down
	DownLeft
)

//go:generate go tool enumer -type=Direction -values -text -json -yaml directions.go

// NumDirections on a hexagonal grid.
const NumDirections = 6

// Directions enumerates all directions in clockwise order.
var Directions = [NumDirections]Direction{UpLeft, Up, UpRight, DownRight, Down, DownLeft}

// checkValid panics if the direction is not one of the six enumerated values.
func (d Direction) checkValid() {
	if d >= NumDirections {
		exceptions.Panicf("invalid Direction(%d)", uint8(d))
	}
}

// Mask returns the Walls set with only this direction.
func (d Direction) Mask() Walls {
	d.checkValid()
	return Walls(1) << d
}

// Reverse returns the antipodal direction: Up<->Down, UpLeft<->DownRight
// and UpRight<->DownLeft.
func (d Direction) Reverse() Direction {
	d.checkValid()
	return (d + NumDirections/2) % NumDirections
}

// RotateRight returns the next direction clockwise:
// Up -> UpRight -> DownRight -> Down -> DownLeft -> UpLeft -> Up.
func (d Direction) RotateRight() Direction {
	d.checkValid()
	return (d + 1) % NumDirections
}

// RotateLeft returns the next direction counter-clockwise. It is the inverse of RotateRight.
func (d Direction) RotateLeft() Direction {
	d.checkValid()
	return (d + NumDirections - 1) % NumDirections
}

// IsUp returns whether the direction is one of UpLeft, Up or UpRight.
func (d Direction) IsUp() bool {
	return UpDirections.Has(d)
}

// Step returns the position one step away from pos in the given direction.
// It doesn't check any bounds: see Field.Neighbor for that.
//
// The grid is an offset encoding of a hexagonal tiling where rows interleave:
// row y+2 is directly above row y, and odd rows are shifted half a cell to the
// right. So:
//
//   - Up and Down move 2 rows and keep the column.
//   - Diagonals move 1 row. The left pair moves one column left only when
//     starting from an even row, the right pair moves one column right only when
//     starting from an odd row.
func (pos Pos) Step(d Direction) Pos {
	d.checkValid()
	next := pos
	oddRow := pos.Y&1 != 0
	switch d {
	case UpLeft, DownLeft:
		if !oddRow {
			next.X--
		}
	case UpRight, DownRight:
		if oddRow {
			next.X++
		}
	}
	switch d {
	case Up:
		next.Y += 2
	case Down:
		next.Y -= 2
	case UpLeft, UpRight:
		next.Y++
	case DownLeft, DownRight:
		next.Y--
	}
	return next
}

// Neighbors returns the 6 neighbor positions of pos, indexed by Direction.
// Some of them may be off any given field.
func (pos Pos) Neighbors() (neighbors [NumDirections]Pos) {
	for _, d := range Directions {
		neighbors[d] = pos.Step(d)
	}
	return
}
