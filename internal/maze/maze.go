// Package maze generates mazes on the field of a game, with a randomized
// depth-first "backtracker", and validates them.
package maze

import (
	"fmt"
	. "github.com/janpfeifer/hexmaze/internal/state"
	"k8s.io/klog/v2"
	"math/rand/v2"
)

// Result of a maze generation.
type Result struct {
	// Start is the player position the maze was carved from.
	Start Pos

	// Finish is the cell on top of the stack when it was deepest: the end of the
	// longest carving path from Start.
	Finish Pos

	// Depth is the maximum stack depth reached.
	Depth int

	// Carved is the number of walls removed. For a fully connected field it is NumCells-1.
	Carved int
}

// String implements fmt.Stringer.
func (r Result) String() string {
	return fmt.Sprintf("maze from %s to %s (depth=%d, carved=%d)", r.Start, r.Finish, r.Depth, r.Carved)
}

// NewRandom returns a deterministic pseudo-random generator for the given seed.
// Two generations with generators of the same seed carve the same maze.
func NewRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

// Generate carves a new maze over the field of the game, starting from the player
// position, and moves the finish to the cell farthest along the carving path.
//
// All walls are first installed, and then it removes walls between the current
// cell and one unvisited neighbor at a time, using an explicit stack instead of
// recursion. Since each removed wall connects a newly visited cell, the open
// passages form a spanning tree of all cells reachable from the start.
//
// Terrain other than the finish marker is not changed.
func Generate(game *Game, rng *rand.Rand) (result Result) {
	field := game.Field()
	field.FillWalls(AllWalls)
	result.Start = game.PlayerPos()
	result.Finish = result.Start
	if !field.Contains(result.Start) {
		klog.Warningf("maze.Generate: player at %s is off the %dx%d field, nothing carved",
			result.Start, field.Width(), field.Height())
		return
	}

	visited := make([]bool, field.NumCells())
	stack := make([]Pos, 0, field.NumCells())
	visited[field.Index(result.Start)] = true
	stack = append(stack, result.Start)

	for len(stack) > 0 {
		if len(stack) > result.Depth {
			result.Depth = len(stack)
			result.Finish = stack[len(stack)-1]
		}
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Random first direction, so there is no directional bias.
		shift := rng.IntN(NumDirections)
		for ii := range NumDirections {
			d := Direction((shift + ii) % NumDirections)
			neighbor, ok := field.Neighbor(current, d)
			if !ok || visited[field.Index(neighbor)] {
				continue
			}
			field.UpdateWall(current, d, false)
			visited[field.Index(neighbor)] = true
			// Current goes back to the stack, to continue from it once the neighbor's branch is exhausted.
			stack = append(stack, current, neighbor)
			result.Carved++
			break
		}
	}

	game.SetFinish(result.Finish)
	klog.V(1).Infof("Generated %s on %dx%d field", result, field.Width(), field.Height())
	return
}
