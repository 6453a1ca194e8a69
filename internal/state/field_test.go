package state_test

import (
	. "github.com/janpfeifer/hexmaze/internal/state"
	. "github.com/janpfeifer/hexmaze/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestFieldOutOfRange(t *testing.T) {
	f := NewField(3, 7)
	for _, pos := range []Pos{{-1, 0}, {0, -1}, {3, 0}, {0, 7}, {-100, -100}} {
		assert.Equalf(t, CellFinish, f.CellAt(pos, CellFinish), "CellAt(%s)", pos)
		assert.Equalf(t, AllWalls, f.WallsAt(pos), "WallsAt(%s)", pos)
		f.SetCell(pos, CellWall)
		f.UpdateWalls(pos, AllWalls, true)
	}
	// Nothing changed.
	assert.True(t, NewField(3, 7).Equal(f))

	assert.Panics(t, func() { NewField(-1, 3) })
	sq := NewSquareField(10)
	assert.Equal(t, 10, sq.Width())
	assert.Equal(t, 21, sq.Height())
	assert.Equal(t, 210, sq.NumCells())
}

func TestFieldCells(t *testing.T) {
	f := NewField(4, 5)
	f.SetCell(Pos{3, 4}, CellWall)
	assert.Equal(t, CellWall, f.CellAt(Pos{3, 4}, CellEmpty))
	assert.Equal(t, 19, f.Index(Pos{3, 4}))
	assert.Equal(t, Pos{3, 4}, f.PosOf(19))

	f.FillCells(CellFinish)
	for pos := range AllPositions(f) {
		require.Equal(t, CellFinish, f.CellAt(pos, CellEmpty))
	}
	assert.Equal(t, '#', CellWall.Symbol())
	assert.Equal(t, "Player", CellPlayer.String())
}

// TestWallSymmetry installs and removes each single wall of every cell, and checks the
// neighbor always holds the reverse wall.
func TestWallSymmetry(t *testing.T) {
	f := NewField(4, 9)
	for pos := range AllPositions(f) {
		for _, d := range Directions {
			f.UpdateWall(pos, d, true)
			assert.True(t, f.WallsAt(pos).Has(d))
			neighbor, ok := f.Neighbor(pos, d)
			if ok {
				assert.Truef(t, f.WallsAt(neighbor).Has(d.Reverse()), "wall %s of %s not on %s", d, pos, neighbor)
			}

			f.UpdateWall(pos, d, false)
			assert.Equal(t, NoWalls, f.WallsAt(pos))
			if ok {
				assert.Equal(t, NoWalls, f.WallsAt(neighbor))
			}
		}
	}

	// Multiple walls at once.
	center := Pos{1, 4}
	f.UpdateWalls(center, AllWalls, true)
	assert.Equal(t, AllWalls, f.WallsAt(center))
	for _, d := range Directions {
		neighbor, ok := f.Neighbor(center, d)
		require.True(t, ok)
		assert.Equal(t, d.Reverse().Mask(), f.WallsAt(neighbor))
	}
	f.UpdateWalls(center, UpDirections, false)
	assert.Equal(t, DownDirections, f.WallsAt(center))
	for _, d := range Directions {
		neighbor, _ := f.Neighbor(center, d)
		assert.Equal(t, !d.IsUp(), f.WallsAt(neighbor).Has(d.Reverse()))
	}

	// Boundary walls have only one side.
	f.FillWalls(NoWalls)
	f.UpdateWalls(Pos{0, 0}, WallsOf(DownLeft, Up), true)
	assert.Equal(t, WallsOf(DownLeft, Up), f.WallsAt(Pos{0, 0}))
	assert.Equal(t, WallsOf(Down), f.WallsAt(Pos{0, 2}))
}

func TestBoundaryWalls(t *testing.T) {
	f := NewField(3, 7)
	assert.Equal(t, WallsOf(UpLeft, DownRight, Down, DownLeft), f.BoundaryWalls(Pos{0, 0}))
	assert.Equal(t, WallsOf(UpRight, DownRight, Down), f.BoundaryWalls(Pos{2, 1}))
	assert.Equal(t, NoWalls, f.BoundaryWalls(Pos{1, 3}))
	assert.Equal(t, UpDirections, f.BoundaryWalls(Pos{1, 6}))
	assert.Equal(t, WallsOf(UpLeft, DownLeft), f.BoundaryWalls(Pos{0, 2}))
	assert.Equal(t, AllWalls, f.BoundaryWalls(Pos{3, 0}))

	// Overlay is not stored.
	assert.Equal(t, NoWalls, f.WallsAt(Pos{0, 0}))
	f.UpdateWall(Pos{0, 0}, Up, true)
	assert.Equal(t, WallsOf(UpLeft, Up, DownRight, Down, DownLeft), f.ClosedWallsAt(Pos{0, 0}))

	// Every boundary direction is exactly a direction without neighbor.
	for pos := range AllPositions(f) {
		boundary := f.BoundaryWalls(pos)
		for _, d := range Directions {
			_, ok := f.Neighbor(pos, d)
			assert.Equal(t, !ok, boundary.Has(d))
		}
	}
}
