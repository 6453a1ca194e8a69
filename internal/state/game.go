// Package state holds the state of a hexmaze game: the hexagonal coordinates and
// directions, the Field with its terrain and walls, and the Game, with the player
// and the goal on the field.
package state

import (
	"k8s.io/klog/v2"
)

// Game is the player and finish (goal) positions on a Field it exclusively owns.
//
// Every operation either fully succeeds or leaves the Game unchanged.
type Game struct {
	playerPos Pos
	playerDir Direction
	finishPos Pos
	hasFinish bool
	field     *Field
}

// NewGame creates a Game on a new field of the given size, already Reset.
func NewGame(width, height int) *Game {
	g := &Game{field: NewField(width, height)}
	g.Reset()
	return g
}

// NewSquareGame creates a Game on a NewSquareField of the given side, already Reset.
func NewSquareGame(side int) *Game {
	g := &Game{field: NewSquareField(side)}
	g.Reset()
	return g
}

// Field returns the field of the game. Display backends should treat it as read-only.
func (g *Game) Field() *Field { return g.field }

// PlayerPos returns the current position of the player.
func (g *Game) PlayerPos() Pos { return g.playerPos }

// PlayerDir returns the direction the player is facing.
func (g *Game) PlayerDir() Direction { return g.playerDir }

// FinishPos returns the goal position, and whether one was set.
func (g *Game) FinishPos() (Pos, bool) { return g.finishPos, g.hasFinish }

// Finished returns whether the player reached the finish.
func (g *Game) Finished() bool {
	return g.hasFinish && g.playerPos == g.finishPos
}

// Reset clears terrain and walls, forgets the finish, and puts the player at the
// origin facing Up.
func (g *Game) Reset() {
	g.field.FillCells(CellEmpty)
	g.field.FillWalls(NoWalls)
	g.hasFinish = false
	g.finishPos = Pos{}
	g.playerPos = Pos{}
	g.playerDir = Up
	g.field.SetCell(g.playerPos, CellPlayer)
}

// SetPlayerPos moves the player to pos, without checking walls: the old cell is
// set to CellEmpty and the new one to CellPlayer.
// It's a no-op if pos is off the field.
func (g *Game) SetPlayerPos(pos Pos) {
	if !g.field.Contains(pos) {
		return
	}
	g.field.SetCell(g.playerPos, CellEmpty)
	g.playerPos = pos
	g.field.SetCell(pos, CellPlayer)
}

// SetPlayerDir turns the player to face d.
func (g *Game) SetPlayerDir(d Direction) {
	d.checkValid()
	g.playerDir = d
}

// RotateLeft turns the player counter-clockwise.
func (g *Game) RotateLeft() {
	g.playerDir = g.playerDir.RotateLeft()
}

// RotateRight turns the player clockwise.
func (g *Game) RotateRight() {
	g.playerDir = g.playerDir.RotateRight()
}

// CanStepForward returns the position the player would move to with StepForward,
// and whether the step is allowed.
func (g *Game) CanStepForward() (Pos, bool) {
	next, ok := g.field.Neighbor(g.playerPos, g.playerDir)
	if !ok {
		return g.playerPos, false
	}
	if g.field.CellAt(next, CellWall).IsObstacle() {
		return g.playerPos, false
	}
	if g.field.WallsAt(g.playerPos).Has(g.playerDir) {
		return g.playerPos, false
	}
	return next, true
}

// StepForward moves the player one cell in the direction it is facing.
// It returns false, and leaves the game unchanged, if the step would leave the
// field, enter a CellWall or cross a wall.
func (g *Game) StepForward() bool {
	next, ok := g.CanStepForward()
	if !ok {
		if klog.V(2).Enabled() {
			klog.Infof("StepForward blocked: %s facing %s", g.playerPos, g.playerDir)
		}
		return false
	}
	g.SetPlayerPos(next)
	return true
}

// SetFinish marks pos as the goal. A previously set finish cell still marked as
// CellFinish is cleared, so there is at most one finish.
// It's a no-op if pos is off the field.
func (g *Game) SetFinish(pos Pos) {
	if !g.field.Contains(pos) {
		return
	}
	if g.hasFinish && g.field.CellAt(g.finishPos, CellEmpty) == CellFinish {
		g.field.SetCell(g.finishPos, CellEmpty)
	}
	g.finishPos = pos
	g.hasFinish = true
	g.field.SetCell(pos, CellFinish)
}

// Sonar reports which directions are open around the player, relative to where
// it is facing.
//
// Bit i corresponds to the direction rotated (i-2)*60 degrees clockwise from the
// facing direction: bit 0 is 120 degrees to the left, bit 2 is straight ahead
// and bit 4 is 120 degrees to the right. The direction directly behind (bit 5)
// is never reported.
//
// Boundary walls count as closed.
func (g *Game) Sonar() uint8 {
	walls := g.field.ClosedWallsAt(g.playerPos)
	behind := g.playerDir.Reverse()
	offset := int(g.playerDir) + NumDirections - 2
	var result uint8
	for ii := range NumDirections {
		d := Direction((ii + offset) % NumDirections)
		if d == behind {
			continue
		}
		if !walls.Has(d) {
			result |= 1 << ii
		}
	}
	return result
}
