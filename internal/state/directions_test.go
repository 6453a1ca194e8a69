package state_test

import (
	"fmt"
	. "github.com/janpfeifer/hexmaze/internal/state"
	. "github.com/janpfeifer/hexmaze/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

var _ = fmt.Printf

func TestStep(t *testing.T) {
	// From an even row.
	from := Pos{2, 2}
	want := map[Direction]Pos{
		UpLeft: {1, 3}, Up: {2, 4}, UpRight: {2, 3},
		DownRight: {2, 1}, Down: {2, 0}, DownLeft: {1, 1},
	}
	for d, wantPos := range want {
		assert.Equalf(t, wantPos, from.Step(d), "Step(%s) from %s", d, from)
	}

	// From an odd row.
	from = Pos{2, 3}
	want = map[Direction]Pos{
		UpLeft: {2, 4}, Up: {2, 5}, UpRight: {3, 4},
		DownRight: {3, 2}, Down: {2, 1}, DownLeft: {2, 2},
	}
	for d, wantPos := range want {
		assert.Equalf(t, wantPos, from.Step(d), "Step(%s) from %s", d, from)
	}
	neighbors := from.Neighbors()
	for d, wantPos := range want {
		assert.Equal(t, wantPos, neighbors[d])
	}
}

func TestNeighborBounds(t *testing.T) {
	f := NewField(3, 7)
	_, ok := f.Neighbor(Pos{0, 0}, UpLeft)
	assert.False(t, ok, "x would be -1")
	_, ok = f.Neighbor(Pos{0, 0}, Down)
	assert.False(t, ok, "y would be -2")
	_, ok = f.Neighbor(Pos{2, 1}, UpRight)
	assert.False(t, ok, "x would be 3")
	_, ok = f.Neighbor(Pos{1, 6}, Up)
	assert.False(t, ok, "y would be 8")
	pos, ok := f.Neighbor(Pos{0, 4}, Up)
	assert.True(t, ok)
	assert.Equal(t, Pos{0, 6}, pos)

	// Unchanged position when the move fails.
	pos, ok = f.Neighbor(Pos{0, 0}, DownLeft)
	assert.False(t, ok)
	assert.Equal(t, Pos{0, 0}, pos)
}

// TestAdjacencyRoundTrip checks that going back in the reverse direction always returns
// to the original position.
func TestAdjacencyRoundTrip(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {3, 7}, {4, 8}, {5, 11}} {
		f := NewField(size[0], size[1])
		for pos := range AllPositions(f) {
			for _, d := range Directions {
				next, ok := f.Neighbor(pos, d)
				if !ok {
					continue
				}
				back, ok := f.Neighbor(next, d.Reverse())
				require.Truef(t, ok, "%s -> %s (%s) has no way back", pos, next, d)
				require.Equalf(t, pos, back, "%s -> %s (%s) came back to %s", pos, next, d, back)
			}
		}
	}
}

func TestRotations(t *testing.T) {
	for _, d := range Directions {
		right, left := d, d
		for range NumDirections {
			right = right.RotateRight()
			left = left.RotateLeft()
		}
		assert.Equal(t, d, right)
		assert.Equal(t, d, left)
		assert.Equal(t, d, d.RotateRight().RotateLeft())
		assert.Equal(t, d, d.RotateLeft().RotateRight())
		assert.Equal(t, d, d.Reverse().Reverse())
	}

	// Clockwise order.
	got := []Direction{Up}
	for range NumDirections {
		got = append(got, got[len(got)-1].RotateRight())
	}
	assert.Equal(t, []Direction{Up, UpRight, DownRight, Down, DownLeft, UpLeft, Up}, got)

	assert.Equal(t, Down, Up.Reverse())
	assert.Equal(t, DownRight, UpLeft.Reverse())
	assert.Equal(t, DownLeft, UpRight.Reverse())
}

func TestDirectionStrings(t *testing.T) {
	assert.Equal(t, "DownRight", DownRight.String())
	d, err := DirectionString("upright")
	require.NoError(t, err)
	assert.Equal(t, UpRight, d)
	_, err = DirectionString("sideways")
	assert.Error(t, err)

	assert.Panics(t, func() { _ = Direction(6).Reverse() })
	assert.Panics(t, func() { _ = Direction(200).Mask() })
}

func TestWalls(t *testing.T) {
	w := WallsOf(Up, DownLeft)
	assert.Equal(t, "{Up|DownLeft}", w.String())
	assert.Equal(t, 2, w.Count())
	assert.True(t, w.Has(Up))
	assert.False(t, w.Has(Down))
	assert.Equal(t, WallsOf(Up), w.Without(DownLeft))
	assert.Equal(t, WallsOf(Up, Down, DownLeft), w.With(Down))

	assert.Equal(t, 6, AllWalls.Count())
	assert.Equal(t, AllWalls, UpDirections|DownDirections)
	assert.Equal(t, NoWalls, UpDirections&DownDirections)
	for _, d := range Directions {
		assert.Equalf(t, d.IsUp(), UpDirections.Has(d), "direction %s", d)
		assert.Equalf(t, !d.IsUp(), DownDirections.Has(d), "direction %s", d)
	}
}
