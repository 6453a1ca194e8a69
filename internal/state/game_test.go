package state_test

import (
	. "github.com/janpfeifer/hexmaze/internal/state"
	. "github.com/janpfeifer/hexmaze/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// countCells returns how many cells of the field have the given terrain.
func countCells(f *Field, value Cell) (count int) {
	for pos := range AllPositions(f) {
		if f.CellAt(pos, CellEmpty) == value {
			count++
		}
	}
	return
}

func TestReset(t *testing.T) {
	g := NewSquareGame(3)
	assert.Equal(t, 3, g.Field().Width())
	assert.Equal(t, 7, g.Field().Height())
	assert.Equal(t, Pos{0, 0}, g.PlayerPos())
	assert.Equal(t, Up, g.PlayerDir())
	assert.Equal(t, CellPlayer, g.Field().CellAt(Pos{0, 0}, CellEmpty))

	g.Field().FillWalls(AllWalls)
	g.SetFinish(Pos{2, 6})
	g.SetPlayerPos(Pos{1, 1})
	g.RotateLeft()
	g.Reset()
	assert.Equal(t, Pos{0, 0}, g.PlayerPos())
	assert.Equal(t, Up, g.PlayerDir())
	_, hasFinish := g.FinishPos()
	assert.False(t, hasFinish)
	assert.Equal(t, 1, countCells(g.Field(), CellPlayer))
	assert.Equal(t, g.Field().NumCells()-1, countCells(g.Field(), CellEmpty))
	for pos := range AllPositions(g.Field()) {
		require.Equal(t, NoWalls, g.Field().WallsAt(pos))
	}

	// Empty fields are valid, there is just nowhere to go.
	g = NewGame(0, 0)
	assert.False(t, g.StepForward())
}

// TestStepForwardUp walks up the first column of a square game of side 3 (3x7).
func TestStepForwardUp(t *testing.T) {
	g := NewSquareGame(3)
	for _, wantY := range []int{2, 4, 6} {
		require.True(t, g.StepForward())
		assert.Equal(t, Pos{0, wantY}, g.PlayerPos())
	}
	// y=8 is out of the field.
	assert.False(t, g.StepForward())
	assert.Equal(t, Pos{0, 6}, g.PlayerPos())
	assert.Equal(t, CellPlayer, g.Field().CellAt(Pos{0, 6}, CellEmpty))
	assert.Equal(t, 1, countCells(g.Field(), CellPlayer))
	assert.Equal(t, CellEmpty, g.Field().CellAt(Pos{0, 0}, CellWall))
}

func TestStepForwardBlocked(t *testing.T) {
	g := BuildGame(3, 7, []Pos{{1, 1}}, []WallsOnField{{Pos: Pos{0, 0}, Walls: WallsOf(Up)}})

	// Edge of the field.
	g.SetPlayerDir(DownLeft)
	assert.False(t, g.StepForward())

	// Wall between (0,0) and (0,2).
	g.SetPlayerDir(Up)
	assert.False(t, g.StepForward())

	// Obstacle at (1,1): from (1,0), an even row, UpRight goes to (1,1).
	g.SetPlayerPos(Pos{1, 0})
	before := g.Field().Clone()
	g.SetPlayerDir(UpRight)
	assert.False(t, g.StepForward())
	assert.Equal(t, Pos{1, 0}, g.PlayerPos())
	assert.True(t, before.Equal(g.Field()), "field changed after a failed step")

	// UpLeft from (1,0) goes to (0,1), which is free.
	g.SetPlayerDir(UpLeft)
	require.True(t, g.StepForward())
	assert.Equal(t, Pos{0, 1}, g.PlayerPos())
	assert.Equal(t, CellEmpty, g.Field().CellAt(Pos{1, 0}, CellWall))
	assert.Equal(t, CellPlayer, g.Field().CellAt(Pos{0, 1}, CellEmpty))

	// The wall at (0,0) is also visible from (0,2), coming Down.
	g.SetPlayerPos(Pos{0, 2})
	g.SetPlayerDir(Down)
	assert.False(t, g.StepForward())
}

func TestSetPlayerPos(t *testing.T) {
	g := NewGame(3, 7)
	g.SetPlayerPos(Pos{5, 5})
	assert.Equal(t, Pos{0, 0}, g.PlayerPos())
	assert.Equal(t, CellPlayer, g.Field().CellAt(Pos{0, 0}, CellEmpty))

	// Walls are ignored when teleporting.
	g.Field().FillWalls(AllWalls)
	g.SetPlayerPos(Pos{2, 3})
	assert.Equal(t, Pos{2, 3}, g.PlayerPos())
	assert.Equal(t, 1, countCells(g.Field(), CellPlayer))
}

func TestSetFinish(t *testing.T) {
	g := NewGame(3, 7)
	g.SetFinish(Pos{1, 1})
	g.SetFinish(Pos{2, 5})
	g.SetFinish(Pos{9, 9})
	pos, ok := g.FinishPos()
	assert.True(t, ok)
	assert.Equal(t, Pos{2, 5}, pos)
	assert.Equal(t, 1, countCells(g.Field(), CellFinish))
	assert.Equal(t, CellFinish, g.Field().CellAt(Pos{2, 5}, CellEmpty))

	assert.False(t, g.Finished())
	g.SetPlayerPos(Pos{2, 5})
	assert.True(t, g.Finished())
}

func TestRotatePlayer(t *testing.T) {
	g := NewGame(3, 7)
	g.RotateRight()
	assert.Equal(t, UpRight, g.PlayerDir())
	g.RotateLeft()
	g.RotateLeft()
	assert.Equal(t, UpLeft, g.PlayerDir())
}

func TestSonar(t *testing.T) {
	g := NewGame(3, 7)
	g.SetPlayerPos(Pos{1, 3})

	// Everything open: all but the bit 5 (behind) are set.
	assert.Equal(t, uint8(0b011111), g.Sonar())

	// Wall straight ahead clears bit 2.
	g.Field().UpdateWall(Pos{1, 3}, Up, true)
	assert.Equal(t, uint8(0b011011), g.Sonar())

	// Turning right, the wall is now 60 degrees to the left (bit 1).
	g.RotateRight()
	assert.Equal(t, uint8(0b011101), g.Sonar())

	// Walls behind are never reported.
	g.Field().UpdateWall(Pos{1, 3}, DownLeft, true)
	assert.Equal(t, uint8(0b011101), g.Sonar())

	// At the origin, boundaries count as walls: only Up and UpRight are open.
	g = NewGame(3, 7)
	assert.Equal(t, uint8(0b001100), g.Sonar())
}
