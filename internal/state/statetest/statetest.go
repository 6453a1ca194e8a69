// Package statetest provides helper functions to create tests using hexmaze state.
package statetest

import (
	. "github.com/janpfeifer/hexmaze/internal/state"
	"iter"
)

// WallsOnField represents walls to be installed on a cell of the field.
type WallsOnField struct {
	Pos   Pos
	Walls Walls
}

// BuildGame creates a game of the given size, with the player at the origin facing Up,
// CellWall terrain at the obstacles positions and the given walls installed (on both
// sides, with Field.UpdateWalls).
func BuildGame(width, height int, obstacles []Pos, walls []WallsOnField) (g *Game) {
	g = NewGame(width, height)
	for _, pos := range obstacles {
		g.Field().SetCell(pos, CellWall)
	}
	for _, w := range walls {
		g.Field().UpdateWalls(w.Pos, w.Walls, true)
	}
	return
}

// AllPositions iterates over all positions of the field, in row-major order.
func AllPositions(f *Field) iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for y := range f.Height() {
			for x := range f.Width() {
				if !yield(Pos{X: x, Y: y}) {
					return
				}
			}
		}
	}
}
