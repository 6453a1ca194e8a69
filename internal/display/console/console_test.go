package console_test

import (
	"bytes"
	"github.com/janpfeifer/hexmaze/internal/display"
	. "github.com/janpfeifer/hexmaze/internal/display/console"
	. "github.com/janpfeifer/hexmaze/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

// canvas splits a rendered frame into lines of runes, for glyph lookup.
type canvas [][]rune

func newCanvas(frame string) canvas {
	var c canvas
	for _, line := range strings.Split(frame, "\n") {
		c = append(c, []rune(line))
	}
	return c
}

// at returns the rune at the given line and column, or ' ' if it was trimmed.
func (c canvas) at(line, col int) rune {
	if line >= len(c) || col >= len(c[line]) {
		return ' '
	}
	return c[line][col]
}

func (c canvas) str(line, col, n int) string {
	runes := make([]rune, n)
	for ii := range n {
		runes[ii] = c.at(line, col+ii)
	}
	return string(runes)
}

func TestRender(t *testing.T) {
	ui := New(&bytes.Buffer{}, Options{})
	game := NewGame(2, 3)
	c := newCanvas(ui.Render(game))
	require.Len(t, c, 5)

	// Cell (0, 0): bottom-left, only the UpLeft and the bottom walls are on the boundary.
	line, col := CellOrigin(game.Field(), Pos{X: 0, Y: 0})
	assert.Equal(t, []int{2, 0}, []int{line, col})
	assert.Equal(t, '/', c.at(3, 0))
	assert.Equal(t, "^^", c.str(3, 1, 2)) // Player facing up.
	assert.Equal(t, ' ', c.at(3, 3))
	assert.Equal(t, "  ", c.str(2, 1, 2))
	assert.Equal(t, `\__/`, c.str(4, 0, 4))

	// Cell (1, 1): odd row, shifted to the right, on the right and top boundaries.
	line, col = CellOrigin(game.Field(), Pos{X: 1, Y: 1})
	assert.Equal(t, []int{1, 9}, []int{line, col})
	assert.Equal(t, "__", c.str(1, 10, 2))
	assert.Equal(t, '\\', c.at(2, 12))
	assert.Equal(t, "__", c.str(3, 10, 2))
	assert.Equal(t, '/', c.at(3, 12))
	assert.Equal(t, ' ', c.at(2, 9)) // UpLeft is open to (1, 2).
	assert.Equal(t, ' ', c.at(3, 9)) // DownLeft is open to (1, 0).

	// Walls, obstacles and player direction.
	game.Field().UpdateWall(Pos{X: 0, Y: 0}, UpRight, true)
	game.Field().SetCell(Pos{X: 1, Y: 0}, CellWall)
	game.SetPlayerDir(DownLeft)
	c = newCanvas(ui.Render(game))
	assert.Equal(t, '\\', c.at(3, 3))
	assert.Equal(t, "<v", c.str(3, 1, 2))
	assert.Equal(t, "##", c.str(3, 7, 2))

	// Finish.
	game.SetFinish(Pos{X: 1, Y: 2})
	line, col = CellOrigin(game.Field(), Pos{X: 1, Y: 2})
	c = newCanvas(ui.Render(game))
	assert.Equal(t, "**", c.str(line+1, col+1, 2))

	assert.Equal(t, "<empty field>", ui.Render(NewGame(0, 0)))
}

// TestRenderWallsShared checks that walls between neighbors are drawn in the same place
// from either side.
func TestRenderWallsShared(t *testing.T) {
	ui := New(&bytes.Buffer{}, Options{})
	for _, d := range Directions {
		game := NewGame(3, 5)
		center := Pos{X: 1, Y: 2}
		neighbor, ok := game.Field().Neighbor(center, d)
		require.True(t, ok)
		before := ui.Render(game)

		game.Field().UpdateWall(center, d, true)
		withWall := ui.Render(game)
		assert.NotEqual(t, before, withWall, "wall %s of %s not drawn", d, center)

		game.Field().UpdateWall(center, d, false)
		assert.Equal(t, before, ui.Render(game))
		game.Field().UpdateWall(neighbor, d.Reverse(), true)
		assert.Equal(t, withWall, ui.Render(game), "wall %s of %s drawn differently from %s", d, center, neighbor)
	}
}

func TestDisplay(t *testing.T) {
	var buf bytes.Buffer
	ui := New(&buf, Options{Center: true})
	game := NewSquareGame(2)
	require.NoError(t, ui.Setup(game))
	assert.Contains(t, buf.String(), "Hex maze 2x5")
	assert.Contains(t, buf.String(), "Player at (0, 0) facing Up")

	buf.Reset()
	game.SetFinish(Pos{X: 0, Y: 2})
	require.True(t, game.StepForward())
	ui.Update(game)
	assert.Contains(t, buf.String(), "finish reached")
	ui.Cleanup(game)
	assert.Contains(t, buf.String(), "Maze solved")
}

func TestRegistered(t *testing.T) {
	assert.Contains(t, display.Registered(), Name)
	h, err := display.Open("console:color=false,clear=false,center")
	require.NoError(t, err)
	assert.Equal(t, Name, h.Name())
	h.Close(NewGame(1, 1))

	_, err = display.Open("console:colour")
	assert.ErrorContains(t, err, "colour")
}
